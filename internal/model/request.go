package model

import (
	"bytes"
	"io"
	"strings"
)

// DownloadVariant selects which download contract is used.
type DownloadVariant int

const (
	// VariantOptions requires a format or subtitle selection and sends
	// nested options.
	VariantOptions DownloadVariant = iota

	// VariantLegacy sends the bare URL and clears the URL field on success.
	VariantLegacy
)

// String returns the config name of the variant.
func (v DownloadVariant) String() string {
	switch v {
	case VariantLegacy:
		return "legacy"
	default:
		return "options"
	}
}

// ParseDownloadVariant maps a config name to a variant.
// Unknown names fall back to VariantOptions.
func ParseDownloadVariant(name string) DownloadVariant {
	if strings.EqualFold(strings.TrimSpace(name), "legacy") {
		return VariantLegacy
	}
	return VariantOptions
}

// DownloadRequest holds the form state for one download submission.
type DownloadRequest struct {
	// SourceURL is the video URL. Must be non-empty after trimming.
	SourceURL string

	// FormatID is the selected format, empty when none was chosen.
	FormatID string

	// IncludeSubtitle requests subtitles alongside (or instead of) the video.
	IncludeSubtitle bool

	// Variant picks the validation rules and payload shape.
	Variant DownloadVariant
}

// Validate checks the request against the rules of its variant.
func (r DownloadRequest) Validate() error {
	if strings.TrimSpace(r.SourceURL) == "" {
		return &ValidationError{Rule: RuleURLRequired}
	}
	if r.Variant == VariantOptions && r.FormatID == "" && !r.IncludeSubtitle {
		return &ValidationError{Rule: RuleSelectionRequired}
	}
	return nil
}

// Upload is a single file chosen for transcription.
//
// Open is called once per submission, so a failed upload can be sent again
// from the same Upload.
type Upload struct {
	// Name is the original file name. It is sanitized before sending.
	Name string

	// Size is the content length in bytes, or -1 if unknown.
	Size int64

	// Open returns a fresh reader over the file data.
	Open func() (io.ReadCloser, error)
}

// NewUpload creates an Upload over in-memory data.
func NewUpload(name string, data []byte) *Upload {
	return &Upload{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// FileName returns the sanitized name sent in the multipart part.
func (u *Upload) FileName() string {
	name := SanitizeFileName(u.Name)
	if name == "" {
		return "upload"
	}
	return name
}

// ValidateUpload checks that exactly one file was chosen.
func ValidateUpload(u *Upload) error {
	if u == nil || u.Open == nil {
		return &ValidationError{Rule: RuleFileRequired}
	}
	return nil
}
