// Package render projects video metadata onto a view.Page.
package render

import (
	"io"
	"log"

	"github.com/handiism/vidscribe/internal/model"
	"github.com/handiism/vidscribe/internal/view"
)

// Renderer fills the video info section of a page.
//
// Render is a pure projection: it makes no network calls and reports no
// user-facing errors. Rendering the same VideoInfo twice leaves the page in
// the same state as rendering it once.
type Renderer struct {
	placeholder string
	logger      *log.Logger
}

// NewRenderer creates a Renderer whose format list starts with an option
// labelled placeholder. A nil logger discards diagnostics.
func NewRenderer(placeholder string, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Renderer{
		placeholder: placeholder,
		logger:      logger,
	}
}

// Render writes info into page and reveals the info container.
//
// If any target element is missing the page is left untouched.
// A nil info is treated as a VideoInfo with no fields set.
func (r *Renderer) Render(page view.Page, info *model.VideoInfo) {
	if info == nil {
		info = &model.VideoInfo{}
	}
	r.logger.Printf("render video info: title=%q formats=%d", info.Title, len(info.Formats))

	container := page.InfoContainer()
	title := page.TitleText()
	thumbnail := page.Thumbnail()
	formats := page.FormatSelect()

	if container == nil || title == nil || thumbnail == nil || formats == nil {
		r.logger.Printf("render video info: required page elements are missing")
		return
	}

	title.SetText(info.Title)
	thumbnail.SetSource(info.ThumbnailURL)

	formats.Clear()
	for _, opt := range Options(r.placeholder, info.Formats) {
		formats.Append(opt)
	}

	container.SetVisible(true)
}

// Options returns the select options for formats: the placeholder with an
// empty value first, then one option per format in order.
func Options(placeholder string, formats []model.FormatOption) []view.Option {
	opts := make([]view.Option, 0, len(formats)+1)
	opts = append(opts, view.Option{Value: "", Label: placeholder})
	for _, f := range formats {
		opts = append(opts, view.Option{Value: f.FormatID, Label: f.Label()})
	}
	return opts
}
