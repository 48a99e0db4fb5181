package authsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client calls an external deployment of the authentication API over HTTP.
// The remote side speaks the same POST-shaped contract as the bundled
// implementations: /api/auth/login and /api/auth/signup.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service rooted at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login posts credentials to the remote login endpoint
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var response LoginResponse
	err := c.post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Signup posts a registration payload to the remote signup endpoint
func (c *Client) Signup(ctx context.Context, name, email, password string) (*SignupResponse, error) {
	var response SignupResponse
	err := c.post(ctx, "/api/auth/signup", signupRequest{Name: name, Email: email, Password: password}, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) post(ctx context.Context, path string, payload, response interface{}) error {
	requestData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(requestData))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	// Rejections come back as ordinary JSON bodies with Success=false, so
	// any decodable body settles the call regardless of status code.
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %v", resp.StatusCode, err)
	}
	return nil
}
