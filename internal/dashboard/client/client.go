// Package client is a thin HTTP wrapper over the EnrollDesk REST API. It
// translates dashboard intents into requests and decodes the success/failure
// envelopes; it holds no view state of its own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
)

// APIError carries a server-reported rejection. The message is surfaced to
// the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ListParams are the query parameters shared by list and search requests.
type ListParams struct {
	Page          int
	PerPage       int
	SortColumn    string
	SortDirection string
	Query         string
}

// Client calls the EnrollDesk API.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates a client for the API at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Login authenticates and stores the bearer token for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	body, err := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp dto.LoginResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return &resp, nil
}

// ListStudents fetches one page of records.
func (c *Client) ListStudents(ctx context.Context, p ListParams) (*dto.StudentListResponse, error) {
	return c.fetchStudents(ctx, "/api/students", p)
}

// SearchStudents fetches one page of records matching p.Query. The response
// carries the same pagination envelope as ListStudents.
func (c *Client) SearchStudents(ctx context.Context, p ListParams) (*dto.StudentListResponse, error) {
	return c.fetchStudents(ctx, "/api/students/search", p)
}

func (c *Client) fetchStudents(ctx context.Context, path string, p ListParams) (*dto.StudentListResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("per_page", strconv.Itoa(p.PerPage))
	if p.SortColumn != "" {
		q.Set("sort_column", p.SortColumn)
		q.Set("sort_direction", p.SortDirection)
	}
	if p.Query != "" {
		q.Set("query", p.Query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp dto.StudentListResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddStudent creates a new record and returns the server's confirmation
// message.
func (c *Client) AddStudent(ctx context.Context, student *models.Student) (string, error) {
	return c.mutate(ctx, http.MethodPost, "/api/students/add", student)
}

// UpdateStudent rewrites the record addressed by its business key.
func (c *Client) UpdateStudent(ctx context.Context, studentID string, student *models.Student) (string, error) {
	return c.mutate(ctx, http.MethodPut, "/api/students/update/"+url.PathEscape(studentID), student)
}

// DeleteStudent removes the record addressed by its business key.
func (c *Client) DeleteStudent(ctx context.Context, studentID string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "/api/students/delete/"+url.PathEscape(studentID), nil)
}

func (c *Client) mutate(ctx context.Context, method, path string, student *models.Student) (string, error) {
	var reader io.Reader
	if student != nil {
		body, err := json.Marshal(student)
		if err != nil {
			return "", err
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return "", err
	}
	if student != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var resp dto.MutationResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// do executes the request and decodes the envelope. Failures become an
// *APIError carrying the server's message; transport errors pass through.
func (c *Client) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Every endpoint reports success in the envelope, so decode even on
	// non-2xx to recover the server's message.
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &APIError{Status: resp.StatusCode, Message: ""}
	}

	if resp.StatusCode >= 400 || !envelope.Success {
		return &APIError{Status: resp.StatusCode, Message: envelope.Message}
	}

	return json.Unmarshal(body, out)
}
