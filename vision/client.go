package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/schulstick/portal/models"
)

// Client talks to the vision assistant service. A session is created
// once per tutor view and closed when the view goes away.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	sessionID string
}

// Hint is the assistant's answer to one question about the screen.
type Hint struct {
	LookAtCoordinates [2]int   `json:"look_at_coordinates"`
	Instructions      []string `json:"instructions"`
}

func NewClient(conf models.VisionConfig, apiKey string) *Client {
	timeout := 30 * time.Second
	if conf.Timeout != "" {
		if d, err := time.ParseDuration(conf.Timeout); err == nil {
			timeout = d
		}
	}
	return &Client{
		baseURL: conf.BaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) SessionID() string {
	return c.sessionID
}

// CreateSession opens a new assistant session. The API key is only
// sent here; later calls are authorized by the session id.
func (c *Client) CreateSession(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.apiKey)

	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.do(req, &resp); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if resp.SessionID == "" {
		return fmt.Errorf("create session: server returned empty session id")
	}
	c.sessionID = resp.SessionID
	return nil
}

// Analyze sends a screenshot and a question, returning where to look
// and what to do.
func (c *Client) Analyze(ctx context.Context, screenshot []byte, question string) (*Hint, error) {
	if c.sessionID == "" {
		if err := c.CreateSession(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(struct {
		Screenshot string `json:"screenshot"`
		Question   string `json:"question"`
	}{
		Screenshot: base64.StdEncoding.EncodeToString(screenshot),
		Question:   question,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/vision/"+c.sessionID, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var hint Hint
	if err := c.do(req, &hint); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return &hint, nil
}

// EndSession closes the current session. Calling it without an open
// session is a no-op.
func (c *Client) EndSession(ctx context.Context) error {
	if c.sessionID == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/session/"+c.sessionID, nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	c.sessionID = ""
	return nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(data)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, snippet)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
