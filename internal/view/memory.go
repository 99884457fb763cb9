package view

import (
	"sync"

	"github.com/handiism/vidscribe/internal/model"
)

// State is a copy of every element value of a Memory page.
type State struct {
	URL            string
	Options        []Option
	SelectedFormat string
	Subtitle       bool
	ButtonText     string
	ButtonDisabled bool
	InfoVisible    bool
	Title          string
	Thumbnail      string
	File           *model.Upload
	Alerts         []string
}

// Memory is a Page kept in memory.
//
// All elements share one mutex, so a Memory may be mutated from a
// command goroutine while another goroutine renders a Snapshot.
type Memory struct {
	mu      sync.Mutex
	absent  map[string]bool
	onAlert func(string)

	url        string
	options    []Option
	selected   int
	subtitle   bool
	buttonText string
	disabled   bool
	visible    bool
	title      string
	thumbnail  string
	file       *model.Upload
	alerts     []string
}

// NewMemory creates a page whose info button shows buttonText.
// onAlert is called for every alert and may be nil.
func NewMemory(buttonText string, onAlert func(string)) *Memory {
	return &Memory{
		absent:     make(map[string]bool),
		onAlert:    onAlert,
		selected:   -1,
		buttonText: buttonText,
	}
}

// Remove makes the element with the given ID absent.
func (m *Memory) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.absent[id] = true
}

// SetFile chooses the file held by the file picker. Nil clears it.
func (m *Memory) SetFile(u *model.Upload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.file = u
}

// Snapshot returns a copy of the current page state.
func (m *Memory) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return State{
		URL:            m.url,
		Options:        append([]Option(nil), m.options...),
		SelectedFormat: m.selectValueLocked(),
		Subtitle:       m.subtitle,
		ButtonText:     m.buttonText,
		ButtonDisabled: m.disabled,
		InfoVisible:    m.visible,
		Title:          m.title,
		Thumbnail:      m.thumbnail,
		File:           m.file,
		Alerts:         append([]string(nil), m.alerts...),
	}
}

// Alert records message and forwards it to the alert callback.
func (m *Memory) Alert(message string) {
	m.mu.Lock()
	m.alerts = append(m.alerts, message)
	cb := m.onAlert
	m.mu.Unlock()

	if cb != nil {
		cb(message)
	}
}

func (m *Memory) has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.absent[id]
}

func (m *Memory) URLInput() Input {
	if !m.has(IDURL) {
		return nil
	}
	return memInput{m}
}

func (m *Memory) FormatSelect() Select {
	if !m.has(IDFormatSelect) {
		return nil
	}
	return memSelect{m}
}

func (m *Memory) SubtitleCheckbox() Checkbox {
	if !m.has(IDSubtitle) {
		return nil
	}
	return memCheckbox{m}
}

func (m *Memory) InfoButton() Button {
	if !m.has(IDInfoButton) {
		return nil
	}
	return memButton{m}
}

func (m *Memory) InfoContainer() Container {
	if !m.has(IDVideoInfo) {
		return nil
	}
	return memContainer{m}
}

func (m *Memory) TitleText() Text {
	if !m.has(IDVideoTitle) {
		return nil
	}
	return memText{m}
}

func (m *Memory) Thumbnail() Image {
	if !m.has(IDThumbnail) {
		return nil
	}
	return memImage{m}
}

func (m *Memory) FilePicker() FilePicker {
	if !m.has(IDAudioFile) {
		return nil
	}
	return memFilePicker{m}
}

// selectValueLocked follows the HTML select rule: with no explicit
// selection the first option is selected.
func (m *Memory) selectValueLocked() string {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected].Value
	}
	if len(m.options) > 0 {
		return m.options[0].Value
	}
	return ""
}

type memInput struct{ m *Memory }

func (e memInput) Value() string {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.url
}

func (e memInput) SetValue(v string) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.url = v
}

type memSelect struct{ m *Memory }

func (e memSelect) Clear() {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.options = nil
	e.m.selected = -1
}

func (e memSelect) Append(opt Option) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.options = append(e.m.options, opt)
}

func (e memSelect) Options() []Option {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return append([]Option(nil), e.m.options...)
}

func (e memSelect) Value() string {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.selectValueLocked()
}

func (e memSelect) SetValue(v string) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.selected = -1
	for i, opt := range e.m.options {
		if opt.Value == v {
			e.m.selected = i
			return
		}
	}
}

type memCheckbox struct{ m *Memory }

func (e memCheckbox) Checked() bool {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.subtitle
}

func (e memCheckbox) SetChecked(v bool) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.subtitle = v
}

type memButton struct{ m *Memory }

func (e memButton) Text() string {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.buttonText
}

func (e memButton) SetText(s string) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.buttonText = s
}

func (e memButton) Disabled() bool {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.disabled
}

func (e memButton) SetDisabled(d bool) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.disabled = d
}

type memContainer struct{ m *Memory }

func (e memContainer) Visible() bool {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.visible
}

func (e memContainer) SetVisible(v bool) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.visible = v
}

type memText struct{ m *Memory }

func (e memText) Text() string {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.title
}

func (e memText) SetText(s string) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.title = s
}

type memImage struct{ m *Memory }

func (e memImage) Source() string {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.thumbnail
}

func (e memImage) SetSource(url string) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.thumbnail = url
}

type memFilePicker struct{ m *Memory }

func (e memFilePicker) File() (*model.Upload, bool) {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	return e.m.file, e.m.file != nil
}

func (e memFilePicker) Reset() {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()
	e.m.file = nil
}
