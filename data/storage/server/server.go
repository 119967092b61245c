package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/models"
	http_request "github.com/xhd2015/go-http-request"
)

// ServerResponse wraps all server responses
type ServerResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	serverAddr      string
	serverAuthToken string
}

func NewClient(serverAddr string, serverAuthToken string) *Client {
	return &Client{
		serverAddr:      serverAddr,
		serverAuthToken: serverAuthToken,
	}
}

// makeRequest makes an HTTP request and unwraps the server response
func (c *Client) makeRequest(url string, reqData any, respData any) error {
	req := http_request.New()
	if c.serverAuthToken != "" {
		req = req.Header("Authorization", "Bearer "+c.serverAuthToken)
	}

	var serverResp ServerResponse
	err := req.PostJSON(context.Background(), c.serverAddr+url, reqData, &serverResp)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if serverResp.Code != 0 {
		return fmt.Errorf("server error (code %d): %s", serverResp.Code, serverResp.Msg)
	}

	if respData != nil && len(serverResp.Data) > 0 {
		err = json.Unmarshal(serverResp.Data, respData)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return nil
}

// LessonProgressServerService implements storage.LessonProgressService
// against a remote sync server.
type LessonProgressServerService struct {
	client *Client
}

func NewLessonProgressService(client *Client) storage.LessonProgressService {
	return &LessonProgressServerService{client: client}
}

func (s *LessonProgressServerService) List(options storage.LessonProgressListOptions) ([]models.LessonProgress, int64, error) {
	var response struct {
		Progress []models.LessonProgress `json:"progress"`
		Total    int64                   `json:"total"`
	}

	err := s.client.makeRequest("/progress/list", options, &response)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list progress: %w", err)
	}

	return response.Progress, response.Total, nil
}

func (s *LessonProgressServerService) Get(lessonPath string) (*models.LessonProgress, error) {
	var response struct {
		Progress *models.LessonProgress `json:"progress"`
	}

	params := struct {
		LessonPath string `json:"lesson_path"`
	}{LessonPath: lessonPath}

	err := s.client.makeRequest("/progress/get", params, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	return response.Progress, nil
}

func (s *LessonProgressServerService) Add(progress models.LessonProgress) (int64, error) {
	var response struct {
		ID int64 `json:"id"`
	}

	err := s.client.makeRequest("/progress/add", progress, &response)
	if err != nil {
		return 0, fmt.Errorf("failed to add progress: %w", err)
	}

	return response.ID, nil
}

func (s *LessonProgressServerService) Update(id int64, update models.LessonProgressOptional) error {
	params := struct {
		ID     int64                         `json:"id"`
		Update models.LessonProgressOptional `json:"update"`
	}{ID: id, Update: update}

	err := s.client.makeRequest("/progress/update", params, nil)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	return nil
}

func (s *LessonProgressServerService) Delete(id int64) error {
	params := struct {
		ID int64 `json:"id"`
	}{ID: id}

	err := s.client.makeRequest("/progress/delete", params, nil)
	if err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}

	return nil
}
