// Package http provides the HTTP client used to talk to the media backend.
//
// The Client in this package handles:
//   - Base URL resolution for backend endpoints
//   - JSON and multipart request encoding
//   - User-Agent and X-Request-ID headers
//   - Upload progress tracking
//   - Optional request timeout
//
// # Basic Usage
//
//	client := http.NewClient("http://127.0.0.1:8000", 0)
//
//	// POST a JSON body
//	resp, err := client.PostJSON(ctx, "/api/video-info", map[string]string{"url": u})
//
//	// Upload a file with progress callback
//	resp, err = client.PostFile(ctx, "/api/transcribe", "file", "talk.mp3", f, size, func(sent, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(sent)/float64(total)*100)
//	})
//
// Non-2xx responses are not errors at this level; callers inspect
// Response.StatusCode and decode Response.Body themselves.
package http
