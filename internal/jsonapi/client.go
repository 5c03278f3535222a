package jsonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"profiledash/internal/models"
)

const defaultTimeout = 10 * time.Second

// Client reads users and posts from the remote JSON API. It never writes.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the API at baseURL. A zero timeout falls
// back to defaultTimeout; the default transport client has none.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchUser retrieves a single user record via GET /users/{id}.
// A non-2xx response is returned as *StatusError carrying the status code.
func (c *Client) FetchUser(ctx context.Context, id int) (models.User, error) {
	var u models.User
	endpoint := c.baseURL + "/users/" + strconv.Itoa(id)
	if err := c.getJSON(ctx, endpoint, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// FetchUserPosts retrieves all posts owned by userID via GET /posts?userId=.
func (c *Client) FetchUserPosts(ctx context.Context, userID int) ([]models.Post, error) {
	endpoint := c.baseURL + "/posts?userId=" + url.QueryEscape(strconv.Itoa(userID))
	var posts []models.Post
	if err := c.getJSON(ctx, endpoint, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// getJSON issues the GET, enforces the 2xx contract, and decodes the body
// into out. The body is always drained and closed so the underlying
// connection can be reused.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Endpoint: req.URL.Path, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}
