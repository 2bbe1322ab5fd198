// StockImages API implementation of [AuthAPI] and [GalleryAPI]
//
// All requests share one cookie jar so the backend's session cookie is
// attached automatically once login succeeds, and one rate limiter so bursts
// of gallery mutations stay within the configured request budget.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:3001/api"

// ClientOpts contains configuration options for creating a Client.
type ClientOpts struct {
	BaseURL    string
	HTTPClient *http.Client
	RateLimit  float64
	Timeout    time.Duration
}

// Client talks to the StockImages backend. Implements [AuthAPI] and [GalleryAPI].
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var (
	_ AuthAPI    = (*Client)(nil)
	_ GalleryAPI = (*Client)(nil)
)

// NewClient creates a new StockImages API client.
//
// When no http.Client is supplied one is constructed with a fresh cookie jar;
// a supplied client is used as-is so tests can inject transports.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	if opts.HTTPClient == nil {
		jar, _ := cookiejar.New(nil)
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		opts.HTTPClient = &http.Client{Jar: jar, Timeout: timeout}
	}

	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
	}
}

// apiError is the error body shape the backend uses for failed requests.
type apiError struct {
	Message string `json:"message"`
}

// do performs a rate-limited request and returns the response body on any 2xx
// status. Non-2xx statuses become errors carrying the server's message when
// the body provides one.
func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		if err := json.Unmarshal(body, &ae); err == nil && ae.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, ae.Message)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	return body, nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, payload, result any) error {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	body, err := c.do(ctx, req)
	if err != nil {
		return err
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// CheckAuth calls GET /check-auth and returns the session's user.
func (c *Client) CheckAuth(ctx context.Context) (*models.User, error) {
	var response struct {
		User models.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/check-auth", nil, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrNotAuthenticated, err)
	}
	return &response.User, nil
}

// Login posts form-encoded credentials to /login. The session cookie lands in
// the client's jar on success.
func (c *Client) Login(ctx context.Context, email, password string) error {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if _, err := c.do(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}
	return nil
}

// Signup posts a JSON account-creation request to /signup.
func (c *Client) Signup(ctx context.Context, signup models.SignupRequest) error {
	if err := signup.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	if err := c.doJSON(ctx, http.MethodPost, "/signup", signup, nil); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrSignupFailed, err)
	}
	return nil
}

// Logout posts to /logout.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/logout", nil, nil)
}

// ListImages calls GET /gallery.
func (c *Client) ListImages(ctx context.Context) ([]models.MediaItem, error) {
	var response struct {
		Images []models.MediaItem `json:"images"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/gallery", nil, &response); err != nil {
		return nil, err
	}
	return response.Images, nil
}

// UploadImages sends one multipart request with a repeated "images" file field
// and a parallel "titles[i]" field per file.
//
// Files and titles are written strictly in slice order; the backend relies on
// positional pairing between the two.
func (c *Client) UploadImages(ctx context.Context, files []UploadFile) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: no files", shared.ErrNothingToSubmit)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for i, file := range files {
		part, err := writer.CreateFormFile("images", file.Name)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("failed to write file content: %w", err)
		}
		if err := writer.WriteField(fmt.Sprintf("titles[%d]", i), file.Title); err != nil {
			return fmt.Errorf("failed to write title field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload-images", &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if _, err := c.do(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUploadFailed, err)
	}
	return nil
}

// ReorderImages posts the complete new ordering to /gallery/reorder.
func (c *Client) ReorderImages(ctx context.Context, orders []models.ImageOrder) error {
	payload := struct {
		ImageIDs []models.ImageOrder `json:"imageIds"`
	}{ImageIDs: orders}

	if err := c.doJSON(ctx, http.MethodPost, "/gallery/reorder", payload, nil); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrReorderFailed, err)
	}
	return nil
}

// UpdateImage puts a new title to /gallery/:id.
func (c *Client) UpdateImage(ctx context.Context, id, title string) error {
	payload := struct {
		Title string `json:"title"`
	}{Title: title}

	return c.doJSON(ctx, http.MethodPut, "/gallery/"+url.PathEscape(id), payload, nil)
}

// DeleteImage deletes /gallery/:id.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/gallery/"+url.PathEscape(id), nil, nil)
}
