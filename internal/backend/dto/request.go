package dto

import "github.com/handiism/vidscribe/internal/model"

// JSONDownloadOptions is the nested options object of a download request.
type JSONDownloadOptions struct {
	FormatID string `json:"format_id"`
	Subtitle bool   `json:"subtitle"`
}

// JSONDownloadRequest is the body of /api/download.
// Options is omitted for the legacy variant.
type JSONDownloadRequest struct {
	URL     string               `json:"url"`
	Options *JSONDownloadOptions `json:"options,omitempty"`
}

// JSONVideoInfoRequest is the body of /api/video-info.
type JSONVideoInfoRequest struct {
	URL string `json:"url"`
}

// NewDownloadRequest builds the wire body for a validated request.
func NewDownloadRequest(req model.DownloadRequest) JSONDownloadRequest {
	body := JSONDownloadRequest{URL: req.SourceURL}
	if req.Variant == model.VariantOptions {
		body.Options = &JSONDownloadOptions{
			FormatID: req.FormatID,
			Subtitle: req.IncludeSubtitle,
		}
	}
	return body
}
