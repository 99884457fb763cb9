package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/handiism/vidscribe/internal/backend"
	"github.com/handiism/vidscribe/internal/config"
	"github.com/handiism/vidscribe/internal/locale"
	"github.com/handiism/vidscribe/internal/model"
	"github.com/handiism/vidscribe/internal/render"
	"github.com/handiism/vidscribe/internal/view"
)

// Backend is the set of backend operations the Dispatcher needs.
type Backend interface {
	Download(ctx context.Context, req model.DownloadRequest) (json.RawMessage, error)
	VideoInfo(ctx context.Context, url string) (*model.VideoInfo, error)
	Transcribe(ctx context.Context, upload *model.Upload, onProgress func(sent, total int64)) (json.RawMessage, error)
}

var _ Backend = (*backend.Client)(nil)

// Dispatcher coordinates user actions against the backend.
type Dispatcher struct {
	api        Backend
	page       view.Page
	renderer   *render.Renderer
	catalog    locale.Catalog
	variant    model.DownloadVariant
	maxLookups int

	onNotice         func(Notice)
	onUploadProgress func(sent, total int64)
	logger           *log.Logger
}

// New creates a Dispatcher for page. onNotice may be nil.
func New(settings *config.Settings, api Backend, page view.Page, onNotice func(Notice)) *Dispatcher {
	catalog := settings.Catalog()
	logger := log.New(io.Discard, "", 0)

	return &Dispatcher{
		api:        api,
		page:       page,
		renderer:   render.NewRenderer(catalog.ResolutionPlaceholder, logger),
		catalog:    catalog,
		variant:    settings.Variant(),
		maxLookups: settings.MaxConcurrentLookups,
		onNotice:   onNotice,
		logger:     logger,
	}
}

// SetLogger sets the diagnostics logger. Nil discards diagnostics.
func (d *Dispatcher) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	d.logger = logger
	d.renderer = render.NewRenderer(d.catalog.ResolutionPlaceholder, logger)
}

// SetUploadProgress registers a callback for transcription upload progress.
func (d *Dispatcher) SetUploadProgress(fn func(sent, total int64)) {
	d.onUploadProgress = fn
}

// Variant returns the download variant in use.
func (d *Dispatcher) Variant() model.DownloadVariant {
	return d.variant
}

// SubmitDownload validates req and sends it to the download endpoint.
// No request is made when validation fails.
func (d *Dispatcher) SubmitDownload(ctx context.Context, req model.DownloadRequest) model.Outcome {
	if err := req.Validate(); err != nil {
		return d.failure(err, d.catalog.DownloadFailed)
	}

	d.notify(Notice{
		Message: fmt.Sprintf("Submitting download: url=%s format=%q subtitle=%v (%s)", req.SourceURL, req.FormatID, req.IncludeSubtitle, req.Variant),
		Level:   LevelVerbose,
	})

	data, err := d.api.Download(ctx, req)
	if err != nil {
		return d.failure(err, d.catalog.DownloadFailed)
	}
	return model.Outcome{Kind: model.OutcomeSuccess, Message: d.catalog.DownloadStarted, Data: data}
}

// SubmitTranscription uploads a single file for transcription.
// No request is made when upload is nil.
func (d *Dispatcher) SubmitTranscription(ctx context.Context, upload *model.Upload) model.Outcome {
	if err := model.ValidateUpload(upload); err != nil {
		return d.failure(err, d.catalog.TranscriptionFailed)
	}

	d.notify(Notice{Message: fmt.Sprintf("Uploading %s for transcription", upload.FileName()), Level: LevelVerbose})

	data, err := d.api.Transcribe(ctx, upload, d.onUploadProgress)
	if err != nil {
		return d.failure(err, d.catalog.TranscriptionFailed)
	}
	return model.Outcome{Kind: model.OutcomeSuccess, Message: d.catalog.TranscriptionQueued, Data: data}
}

// FetchVideoInfo looks up the metadata for url.
// The returned info is nil unless the outcome is a success.
func (d *Dispatcher) FetchVideoInfo(ctx context.Context, url string) (*model.VideoInfo, model.Outcome) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, d.failure(&model.ValidationError{Rule: model.RuleURLRequired}, d.catalog.VideoInfoFailed)
	}

	d.notify(Notice{Message: fmt.Sprintf("Fetching video info: %s", url), Level: LevelVerbose})

	info, err := d.api.VideoInfo(ctx, url)
	if err != nil {
		return nil, d.failure(err, d.catalog.VideoInfoFailed)
	}
	return info, model.Outcome{Kind: model.OutcomeSuccess}
}

// StartDownload submits the page's download form and alerts the outcome.
// With the legacy variant the URL field is cleared on success.
func (d *Dispatcher) StartDownload(ctx context.Context) model.Outcome {
	req := model.DownloadRequest{Variant: d.variant}
	if input := d.page.URLInput(); input != nil {
		req.SourceURL = strings.TrimSpace(input.Value())
	}
	if sel := d.page.FormatSelect(); sel != nil {
		req.FormatID = sel.Value()
	}
	if box := d.page.SubtitleCheckbox(); box != nil {
		req.IncludeSubtitle = box.Checked()
	}

	outcome := d.SubmitDownload(ctx, req)
	d.report(outcome)

	if outcome.OK() && d.variant == model.VariantLegacy {
		if input := d.page.URLInput(); input != nil {
			input.SetValue("")
		}
	}
	return outcome
}

// StartTranscription uploads the page's chosen file and alerts the outcome.
// The file picker is reset on success.
func (d *Dispatcher) StartTranscription(ctx context.Context) model.Outcome {
	var upload *model.Upload
	picker := d.page.FilePicker()
	if picker != nil {
		upload, _ = picker.File()
	}

	outcome := d.SubmitTranscription(ctx, upload)
	d.report(outcome)

	if outcome.OK() && picker != nil {
		picker.Reset()
	}
	return outcome
}

// GetVideoInfo looks up the page's URL and renders the result.
//
// The info button shows the loading label and is disabled while the
// request is in flight. Its previous state is restored even if the
// backend call panics.
func (d *Dispatcher) GetVideoInfo(ctx context.Context) (*model.VideoInfo, model.Outcome) {
	var url string
	if input := d.page.URLInput(); input != nil {
		url = strings.TrimSpace(input.Value())
	}

	if url == "" {
		outcome := d.failure(&model.ValidationError{Rule: model.RuleURLRequired}, d.catalog.VideoInfoFailed)
		d.report(outcome)
		return nil, outcome
	}

	release := d.acquireLoading()
	defer release()

	info, outcome := d.FetchVideoInfo(ctx, url)
	if !outcome.OK() {
		d.report(outcome)
		return nil, outcome
	}

	d.renderer.Render(d.page, info)
	d.notify(Notice{Message: fmt.Sprintf("Found %d format(s) for %s", len(info.Formats), info.Title), Level: LevelInfo})
	return info, outcome
}

// acquireLoading puts the info button into its loading state and returns
// the function that restores it.
func (d *Dispatcher) acquireLoading() func() {
	button := d.page.InfoButton()
	if button == nil {
		return func() {}
	}

	prevText, prevDisabled := button.Text(), button.Disabled()
	button.SetText(d.catalog.VideoInfoLoading)
	button.SetDisabled(true)

	return func() {
		button.SetText(prevText)
		button.SetDisabled(prevDisabled)
	}
}

// failure builds the outcome for err. generic is shown for transport errors.
func (d *Dispatcher) failure(err error, generic string) model.Outcome {
	kind := model.KindOf(err)
	outcome := model.Outcome{Kind: kind, Err: err}

	switch kind {
	case model.OutcomeValidation:
		var ve *model.ValidationError
		errors.As(err, &ve)
		outcome.Message = d.validationMessage(ve.Rule)
	case model.OutcomeBackend:
		var be *model.BackendError
		errors.As(err, &be)
		outcome.Message = d.catalog.BackendError(be.Message)
	default:
		d.logger.Printf("request failed: %v", err)
		outcome.Message = generic
	}

	return outcome
}

func (d *Dispatcher) validationMessage(rule model.ValidationRule) string {
	switch rule {
	case model.RuleSelectionRequired:
		return d.catalog.SelectionRequired
	case model.RuleFileRequired:
		return d.catalog.FileRequired
	default:
		return d.catalog.URLRequired
	}
}

// report alerts the outcome on the page and forwards it as a notice.
func (d *Dispatcher) report(outcome model.Outcome) {
	if outcome.Message == "" {
		return
	}
	d.page.Alert(outcome.Message)
	d.notify(Notice{Message: outcome.Message, Level: levelFor(outcome.Kind)})
}

func (d *Dispatcher) notify(n Notice) {
	if d.onNotice != nil {
		d.onNotice(n)
	}
}
