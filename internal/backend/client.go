package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/handiism/vidscribe/internal/backend/dto"
	"github.com/handiism/vidscribe/internal/http"
	"github.com/handiism/vidscribe/internal/model"
)

// Endpoint paths.
const (
	PathDownload   = "/api/download"
	PathVideoInfo  = "/api/video-info"
	PathTranscribe = "/api/transcribe"
)

// Operation names used in TransportError.Op.
const (
	OpDownload   = "download"
	OpVideoInfo  = "video-info"
	OpTranscribe = "transcribe"
)

// Client issues backend operations over an http.Client.
type Client struct {
	http *http.Client
}

// New creates a backend Client.
func New(httpClient *http.Client) *Client {
	return &Client{http: httpClient}
}

// Download submits a download request and returns the raw success body.
func (c *Client) Download(ctx context.Context, req model.DownloadRequest) (json.RawMessage, error) {
	resp, err := c.http.PostJSON(ctx, PathDownload, dto.NewDownloadRequest(req))
	if err != nil {
		return nil, &model.TransportError{Op: OpDownload, Err: err}
	}
	return decode(OpDownload, resp)
}

// VideoInfo looks up the metadata for url.
func (c *Client) VideoInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	resp, err := c.http.PostJSON(ctx, PathVideoInfo, dto.JSONVideoInfoRequest{URL: url})
	if err != nil {
		return nil, &model.TransportError{Op: OpVideoInfo, Err: err}
	}

	body, err := decode(OpVideoInfo, resp)
	if err != nil {
		return nil, err
	}

	info, err := dto.DecodeVideoInfo(body)
	if err != nil {
		return nil, &model.TransportError{Op: OpVideoInfo, Err: err}
	}
	return info, nil
}

// Transcribe uploads a file for transcription and returns the raw success body.
// onProgress may be nil.
func (c *Client) Transcribe(ctx context.Context, upload *model.Upload, onProgress func(sent, total int64)) (json.RawMessage, error) {
	content, err := upload.Open()
	if err != nil {
		return nil, &model.TransportError{Op: OpTranscribe, Err: fmt.Errorf("open upload: %w", err)}
	}
	defer content.Close()

	resp, err := c.http.PostFile(ctx, PathTranscribe, "file", upload.FileName(), content, upload.Size, onProgress)
	if err != nil {
		return nil, &model.TransportError{Op: OpTranscribe, Err: err}
	}
	return decode(OpTranscribe, resp)
}

func decode(op string, resp *http.Response) (json.RawMessage, error) {
	body, err := dto.DecodeEnvelope(resp.StatusCode, resp.Body)
	if err != nil {
		if model.KindOf(err) == model.OutcomeBackend {
			return nil, err
		}
		return nil, &model.TransportError{Op: op, Err: err}
	}
	return body, nil
}
