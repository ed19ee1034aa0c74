package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client is a small HTTP client for the task service API. It remembers the
// bearer token and user id after login and sends them on every call.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	userID  string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetAuth(token, userID string) {
	c.token = token
	c.userID = userID
}

func (c *Client) UserID() string {
	return c.userID
}

type RegisterResult struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type LoginResult struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expires_at"`
}

type Task struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Creator string `json:"creator"`
}

type TaskItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserItem struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Tasks []string `json:"tasks"`
}

type apiError struct {
	Message string `json:"message"`
}

func (c *Client) Register(email, password string) (*RegisterResult, error) {
	var out RegisterResult
	err := c.do(http.MethodPost, "/api/users/register", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(email, password string) (*LoginResult, error) {
	var out LoginResult
	err := c.do(http.MethodPost, "/api/users/login", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTask(name string) (*Task, error) {
	var out struct {
		Task Task `json:"task"`
	}
	err := c.do(http.MethodPost, "/api/tasks/create-task", map[string]string{
		"task_name": name, "creator": c.userID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Task, nil
}

// ListTasks returns the caller's tasks. The API reports 404 for an empty
// task list; the client flattens that to an empty slice.
func (c *Client) ListTasks() ([]TaskItem, error) {
	var out struct {
		Tasks []TaskItem `json:"tasks"`
	}
	err := c.do(http.MethodGet, "/api/tasks/list-tasks/"+c.userID, nil, &out)
	if err != nil {
		if se, ok := err.(*StatusError); ok && se.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) ListUsers() ([]UserItem, error) {
	var out struct {
		Users []UserItem `json:"users"`
	}
	if err := c.do(http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// StatusError carries the API's message and status for a failed call.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func (c *Client) do(method, path string, payload interface{}, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			return &StatusError{Status: resp.StatusCode, Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
		}
		return &StatusError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
