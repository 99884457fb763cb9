package render

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/handiism/vidscribe/internal/model"
	"github.com/handiism/vidscribe/internal/view"
)

const placeholder = "选择清晰度..."

func sampleInfo() *model.VideoInfo {
	size := 2.345
	return &model.VideoInfo{
		Title:        "Test Video",
		ThumbnailURL: "https://img.example/t.jpg",
		Formats: []model.FormatOption{
			{FormatID: "137", Resolution: "1920x1080", FormatNote: "1080p", FileSizeMB: &size},
			{FormatID: "18", Resolution: "640x360", FormatNote: "360p"},
			{FormatID: "140", Resolution: "audio only", FormatNote: "medium"},
		},
	}
}

func TestRenderer_Render(t *testing.T) {
	page := view.NewMemory("获取视频信息", nil)
	info := sampleInfo()

	NewRenderer(placeholder, nil).Render(page, info)

	s := page.Snapshot()
	if s.Title != "Test Video" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Thumbnail != "https://img.example/t.jpg" {
		t.Errorf("Thumbnail = %q", s.Thumbnail)
	}
	if !s.InfoVisible {
		t.Error("info container should be visible")
	}

	if len(s.Options) != len(info.Formats)+1 {
		t.Fatalf("options = %d, want %d", len(s.Options), len(info.Formats)+1)
	}
	if s.Options[0] != (view.Option{Value: "", Label: placeholder}) {
		t.Errorf("first option = %+v, want placeholder", s.Options[0])
	}
	for i, f := range info.Formats {
		if s.Options[i+1].Value != f.FormatID {
			t.Errorf("option %d value = %q, want %q", i+1, s.Options[i+1].Value, f.FormatID)
		}
	}
	if !strings.Contains(s.Options[1].Label, "(2.3MB)") {
		t.Errorf("label %q should contain (2.3MB)", s.Options[1].Label)
	}
	if s.SelectedFormat != "" {
		t.Errorf("SelectedFormat = %q, want placeholder selected", s.SelectedFormat)
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	r := NewRenderer(placeholder, nil)

	once := view.NewMemory("btn", nil)
	r.Render(once, sampleInfo())

	twice := view.NewMemory("btn", nil)
	r.Render(twice, sampleInfo())
	r.Render(twice, sampleInfo())

	if !reflect.DeepEqual(once.Snapshot(), twice.Snapshot()) {
		t.Errorf("rendering twice differs from once:\n%+v\n%+v", once.Snapshot(), twice.Snapshot())
	}
}

func TestRenderer_ReplacesPrevious(t *testing.T) {
	r := NewRenderer(placeholder, nil)
	page := view.NewMemory("btn", nil)

	r.Render(page, sampleInfo())
	r.Render(page, &model.VideoInfo{
		Title:   "Second",
		Formats: []model.FormatOption{{FormatID: "22", Resolution: "1280x720", FormatNote: "720p"}},
	})

	s := page.Snapshot()
	if s.Title != "Second" || s.Thumbnail != "" {
		t.Errorf("title/thumbnail not replaced: %q %q", s.Title, s.Thumbnail)
	}
	if len(s.Options) != 2 || s.Options[1].Value != "22" {
		t.Errorf("options = %+v", s.Options)
	}
}

func TestRenderer_EmptyFormats(t *testing.T) {
	tests := []struct {
		name string
		info *model.VideoInfo
	}{
		{"nil formats", &model.VideoInfo{Title: "x"}},
		{"empty formats", &model.VideoInfo{Title: "x", Formats: []model.FormatOption{}}},
		{"nil info", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := view.NewMemory("btn", nil)
			NewRenderer(placeholder, nil).Render(page, tt.info)

			s := page.Snapshot()
			if len(s.Options) != 1 || s.Options[0].Value != "" {
				t.Errorf("options = %+v, want placeholder only", s.Options)
			}
			if !s.InfoVisible {
				t.Error("info container should be visible")
			}
		})
	}
}

func TestRenderer_MissingElements(t *testing.T) {
	ids := []string{view.IDVideoInfo, view.IDVideoTitle, view.IDThumbnail, view.IDFormatSelect}

	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			var logs bytes.Buffer
			page := view.NewMemory("btn", nil)
			page.Remove(id)

			NewRenderer(placeholder, log.New(&logs, "", 0)).Render(page, sampleInfo())

			s := page.Snapshot()
			if s.Title != "" || s.Thumbnail != "" || len(s.Options) != 0 || s.InfoVisible {
				t.Errorf("page should be untouched, got %+v", s)
			}
			if len(s.Alerts) != 0 {
				t.Errorf("missing elements must not alert the user, got %v", s.Alerts)
			}
			if !strings.Contains(logs.String(), "missing") {
				t.Errorf("expected a diagnostic log line, got %q", logs.String())
			}
		})
	}
}
