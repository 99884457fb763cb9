package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries a fresh identifier for every request.
const RequestIDHeader = "X-Request-ID"

// Client wraps HTTP operations against one backend.
//
// Client provides:
//   - Endpoint paths resolved against a base URL
//   - Configured User-Agent header
//   - A unique X-Request-ID per request
//   - File upload with progress tracking
//
// Example usage:
//
//	client := NewClient("http://127.0.0.1:8000", 0)
//
//	resp, err := client.PostJSON(ctx, "/api/download", payload)
//	if err != nil {
//	    // network failure
//	}
//	if !resp.OK() {
//	    // backend rejected the request
//	}
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new HTTP client for the backend at baseURL.
//
// A zero timeout leaves requests unbounded; they resolve whenever the
// transport does.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "vidscribe",
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response is a fully read backend response.
type Response struct {
	StatusCode int
	Body       []byte

	// RequestID is the X-Request-ID value that was sent.
	RequestID string
}

// OK returns true for any 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ProgressReader wraps a reader to track upload progress.
//
// Example:
//
//	pr := &ProgressReader{
//	    Reader: file,
//	    Total:  size,
//	    OnUpdate: func(sent, total int64) {
//	        fmt.Printf("%d / %d bytes\n", sent, total)
//	    },
//	}
//	io.Copy(part, pr)
type ProgressReader struct {
	// Reader is the underlying reader to read data from.
	Reader io.Reader

	// Total is the expected total bytes, or -1 if unknown.
	Total int64

	// Sent is the current number of bytes read.
	Sent int64

	// OnUpdate is called after each Read with current progress.
	// Parameters are (bytesSent, totalExpected).
	OnUpdate func(sent, total int64)
}

// Read implements io.Reader, tracking progress and calling OnUpdate.
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.Reader.Read(p)
	pr.Sent += int64(n)
	if pr.OnUpdate != nil && n > 0 {
		pr.OnUpdate(pr.Sent, pr.Total)
	}
	return n, err
}

// PostJSON sends payload as a JSON body to the endpoint at path.
//
// Returns an error only if the payload cannot be encoded or the request
// fails at the transport level.
func (c *Client) PostJSON(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// PostFile uploads content as a multipart form with a single file field.
//
// The body is streamed; content is never fully buffered in memory.
// onProgress may be nil.
func (c *Client) PostFile(ctx context.Context, path, field, fileName string, content io.Reader, size int64, onProgress func(sent, total int64)) (*Response, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	var reader io.Reader = content
	if onProgress != nil {
		reader = &ProgressReader{
			Reader:   content,
			Total:    size,
			OnUpdate: onProgress,
		}
	}

	go func() {
		part, err := mw.CreateFormFile(field, fileName)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, reader); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), pr)
	if err != nil {
		pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

// Get performs a GET request and returns the response body as bytes.
//
// Used for thumbnails, so rawURL may point anywhere. Relative URLs are
// resolved against the base URL.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	target := rawURL
	if strings.HasPrefix(rawURL, "/") && !strings.HasPrefix(rawURL, "//") {
		target = c.endpoint(rawURL)
	} else if strings.HasPrefix(rawURL, "//") {
		target = "https:" + rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return resp.Body, nil
}

func (c *Client) do(req *http.Request) (*Response, error) {
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		RequestID:  requestID,
	}, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
