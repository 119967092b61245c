package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/schulstick/portal/models"
)

func newTestClient(serverURL string) *Client {
	return NewClient(models.VisionConfig{
		BaseURL: serverURL,
		Timeout: "5s",
	}, "test-key")
}

func TestCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/session" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]string{"session_id": "abc123"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.CreateSession(context.Background()); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if client.SessionID() != "abc123" {
		t.Errorf("expected session id abc123, got %q", client.SessionID())
	}
}

func TestCreateSessionBadKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("invalid api key"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.CreateSession(context.Background())
	if err == nil {
		t.Fatal("expected error for unauthorized request")
	}
}

func TestAnalyze(t *testing.T) {
	screenshot := []byte("fake-png-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/session":
			json.NewEncoder(w).Encode(map[string]string{"session_id": "sess1"})
		case "/vision/sess1":
			var req struct {
				Screenshot string `json:"screenshot"`
				Question   string `json:"question"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode request: %v", err)
			}
			decoded, err := base64.StdEncoding.DecodeString(req.Screenshot)
			if err != nil {
				t.Errorf("screenshot not base64: %v", err)
			}
			if string(decoded) != string(screenshot) {
				t.Errorf("screenshot bytes mismatch")
			}
			if req.Question != "where is the save button?" {
				t.Errorf("unexpected question %q", req.Question)
			}
			json.NewEncoder(w).Encode(Hint{
				LookAtCoordinates: [2]int{120, 480},
				Instructions:      []string{"Look at the toolbar", "Click the disk icon"},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	hint, err := client.Analyze(context.Background(), screenshot, "where is the save button?")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if hint.LookAtCoordinates != [2]int{120, 480} {
		t.Errorf("unexpected coordinates %v", hint.LookAtCoordinates)
	}
	if len(hint.Instructions) != 2 {
		t.Errorf("expected 2 instructions, got %d", len(hint.Instructions))
	}
}

func TestEndSession(t *testing.T) {
	var deleted bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/session" && r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(map[string]string{"session_id": "sess2"})
		case r.URL.Path == "/session/sess2" && r.Method == http.MethodDelete:
			deleted = true
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.CreateSession(context.Background()); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := client.EndSession(context.Background()); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if !deleted {
		t.Error("expected DELETE request")
	}
	if client.SessionID() != "" {
		t.Errorf("expected session id cleared, got %q", client.SessionID())
	}
}

func TestEndSessionWithoutSession(t *testing.T) {
	client := newTestClient("http://localhost:1")
	if err := client.EndSession(context.Background()); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}
