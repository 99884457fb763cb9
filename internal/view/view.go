// Package view abstracts the page the dispatcher and renderer work against.
//
// Each element kind has its own small interface. Page exposes one accessor
// per element; an accessor returns nil when the element is absent, which
// the renderer treats as a malformed page.
//
// Memory is the in-memory Page used by the terminal UI, the CLI and tests.
package view

import "github.com/handiism/vidscribe/internal/model"

// Element IDs, as used by Memory.Remove.
const (
	IDURL          = "url"
	IDFormatSelect = "format-select"
	IDSubtitle     = "download-subtitle"
	IDInfoButton   = "get-info"
	IDVideoInfo    = "video-info"
	IDVideoTitle   = "video-title"
	IDThumbnail    = "video-thumbnail"
	IDAudioFile    = "audioFile"
)

// Input is a single-line text field.
type Input interface {
	Value() string
	SetValue(v string)
}

// Checkbox is a boolean toggle.
type Checkbox interface {
	Checked() bool
	SetChecked(v bool)
}

// Option is one entry of a Select.
type Option struct {
	Value string
	Label string
}

// Select is an ordered option list with a single selection.
type Select interface {
	Clear()
	Append(opt Option)
	Options() []Option
	Value() string
	SetValue(v string)
}

// Button is a clickable control with a label and disabled flag.
type Button interface {
	Text() string
	SetText(s string)
	Disabled() bool
	SetDisabled(d bool)
}

// Text is a read-only text element.
type Text interface {
	Text() string
	SetText(s string)
}

// Image shows a picture from a URL.
type Image interface {
	Source() string
	SetSource(url string)
}

// Container is a block that can be shown or hidden.
type Container interface {
	Visible() bool
	SetVisible(v bool)
}

// FilePicker holds at most one chosen file.
type FilePicker interface {
	File() (*model.Upload, bool)
	Reset()
}

// Alerter shows a notification to the user.
type Alerter interface {
	Alert(message string)
}

// Page is the set of elements the dispatcher and renderer need.
type Page interface {
	Alerter

	URLInput() Input
	FormatSelect() Select
	SubtitleCheckbox() Checkbox
	InfoButton() Button
	InfoContainer() Container
	TitleText() Text
	Thumbnail() Image
	FilePicker() FilePicker
}
