package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	vhttp "github.com/handiism/vidscribe/internal/http"
	"github.com/handiism/vidscribe/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(vhttp.NewClient(srv.URL, 0))
}

func TestClient_VideoInfo(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathVideoInfo {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{
			"title": "Test Video",
			"thumbnail": "https://img.example/t.jpg",
			"formats": [
				{"format_id": "137", "resolution": "1920x1080", "format_note": "1080p", "filesize": 2.345},
				{"format_id": "18", "resolution": "640x360", "format_note": "360p"},
				{"format_id": "140", "resolution": "audio only", "format_note": "medium", "filesize": null}
			]
		}`))
	})

	info, err := client.VideoInfo(context.Background(), "https://v.example/1")
	if err != nil {
		t.Fatalf("VideoInfo failed: %v", err)
	}

	if gotBody["url"] != "https://v.example/1" {
		t.Errorf("request url = %v", gotBody["url"])
	}
	if info.Title != "Test Video" {
		t.Errorf("Title = %q", info.Title)
	}
	if info.ThumbnailURL != "https://img.example/t.jpg" {
		t.Errorf("ThumbnailURL = %q", info.ThumbnailURL)
	}
	if len(info.Formats) != 3 {
		t.Fatalf("Formats = %d, want 3", len(info.Formats))
	}

	wantIDs := []string{"137", "18", "140"}
	for i, id := range wantIDs {
		if info.Formats[i].FormatID != id {
			t.Errorf("Formats[%d].FormatID = %q, want %q", i, info.Formats[i].FormatID, id)
		}
	}
	if info.Formats[0].FileSizeMB == nil || *info.Formats[0].FileSizeMB != 2.345 {
		t.Errorf("Formats[0].FileSizeMB = %v", info.Formats[0].FileSizeMB)
	}
	if info.Formats[1].FileSizeMB != nil {
		t.Errorf("Formats[1].FileSizeMB should be nil")
	}
}

func TestClient_VideoInfo_FormatsShapes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantFormats int
		wantErr     bool
	}{
		{"missing formats", `{"title":"x","thumbnail":"t"}`, 0, false},
		{"null formats", `{"title":"x","thumbnail":"t","formats":null}`, 0, false},
		{"empty formats", `{"title":"x","thumbnail":"t","formats":[]}`, 0, false},
		{"object formats", `{"title":"x","thumbnail":"t","formats":{"a":1}}`, 0, false},
		{"numeric format id", `{"title":"x","formats":[{"format_id":18,"resolution":"640x360","format_note":"360p"}]}`, 1, false},
		{"falsy sizes", `{"title":"x","formats":[{"format_id":"a","filesize":null},{"format_id":"b","filesize":false},{"format_id":"c","filesize":""}]}`, 3, false},
		{"string size", `{"title":"x","formats":[{"format_id":"18","filesize":"3.1"}]}`, 0, true},
		{"entry not an object", `{"title":"x","formats":[{"format_id":"18"},"garbage"]}`, 0, true},
		{"nested field", `{"title":"x","formats":[{"format_id":{"id":18}}]}`, 0, true},
		{"null body", `null`, 0, true},
		{"array body", `[{"title":"x"}]`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			info, err := client.VideoInfo(context.Background(), "https://v.example/1")
			if tt.wantErr {
				var te *model.TransportError
				if !errors.As(err, &te) || !errors.Is(err, model.ErrMalformedResponse) {
					t.Fatalf("expected malformed TransportError, got %v", err)
				}
				if info != nil {
					t.Errorf("info = %+v, want nil", info)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(info.Formats) != tt.wantFormats {
				t.Errorf("Formats = %d, want %d", len(info.Formats), tt.wantFormats)
			}
			for i, f := range info.Formats {
				if f.HasFileSize() {
					t.Errorf("Formats[%d] should have no size", i)
				}
			}
		})
	}
}

func TestClient_VideoInfo_NumericFormatID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"x","formats":[{"format_id":18,"resolution":"640x360","format_note":"360p","filesize":1.25}]}`))
	})

	info, err := client.VideoInfo(context.Background(), "https://v.example/1")
	if err != nil {
		t.Fatalf("VideoInfo failed: %v", err)
	}
	if got := info.Formats[0].FormatID; got != "18" {
		t.Errorf("FormatID = %q, want 18", got)
	}
	if got := info.Formats[0].Label(); got != "640x360 - 360p (1.3MB)" {
		t.Errorf("Label() = %q", got)
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind model.OutcomeKind
		wantMsg  string
	}{
		{"backend error", http.StatusBadRequest, `{"error":"bad url"}`, model.OutcomeBackend, "bad url"},
		{"server error", http.StatusInternalServerError, `{"error":"下载失败"}`, model.OutcomeBackend, "下载失败"},
		{"html error page", http.StatusBadGateway, `<html>bad gateway</html>`, model.OutcomeTransport, ""},
		{"error without message", http.StatusBadRequest, `{"detail":"x"}`, model.OutcomeTransport, ""},
		{"non-string error", http.StatusBadRequest, `{"error":42}`, model.OutcomeTransport, ""},
		{"success that is not JSON", http.StatusOK, `done`, model.OutcomeTransport, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.Download(context.Background(), model.DownloadRequest{SourceURL: "https://v.example/1", FormatID: "18"})
			if kind := model.KindOf(err); kind != tt.wantKind {
				t.Fatalf("KindOf(%v) = %v, want %v", err, kind, tt.wantKind)
			}

			if tt.wantKind == model.OutcomeBackend {
				var be *model.BackendError
				if !errors.As(err, &be) {
					t.Fatalf("expected *model.BackendError, got %T", err)
				}
				if be.Message != tt.wantMsg || be.Status != tt.status {
					t.Errorf("BackendError = %+v", be)
				}
			}

			if tt.wantKind == model.OutcomeTransport && !errors.Is(err, model.ErrMalformedResponse) {
				t.Errorf("expected ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestClient_Download_Payload(t *testing.T) {
	tests := []struct {
		name string
		req  model.DownloadRequest
		want string
	}{
		{
			name: "options variant",
			req:  model.DownloadRequest{SourceURL: "https://v.example/1", FormatID: "137", IncludeSubtitle: true, Variant: model.VariantOptions},
			want: `{"url":"https://v.example/1","options":{"format_id":"137","subtitle":true}}`,
		},
		{
			name: "legacy variant",
			req:  model.DownloadRequest{SourceURL: "https://v.example/1", FormatID: "137", Variant: model.VariantLegacy},
			want: `{"url":"https://v.example/1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				data, _ := io.ReadAll(r.Body)
				got = string(data)
				w.Write([]byte(`{"message":"下载成功"}`))
			})

			data, err := client.Download(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Download failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("payload = %s, want %s", got, tt.want)
			}
			if !strings.Contains(string(data), "下载成功") {
				t.Errorf("data = %s", data)
			}
		})
	}
}

func TestClient_Transcribe(t *testing.T) {
	var gotName string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"没有上传文件"}`))
			return
		}
		gotName = header.Filename
		w.Write([]byte(`{"message":"任务已添加到队列"}`))
	})

	upload := model.NewUpload("lecture: 1.mp3", []byte("abc"))
	if _, err := client.Transcribe(context.Background(), upload, nil); err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if gotName != "lecture_ 1.mp3" {
		t.Errorf("filename = %q", gotName)
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	client := New(vhttp.NewClient(base, 0))
	_, err := client.VideoInfo(context.Background(), "https://v.example/1")

	var te *model.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *model.TransportError, got %v", err)
	}
	if te.Op != OpVideoInfo {
		t.Errorf("Op = %q", te.Op)
	}
}
