package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_PostJSON(t *testing.T) {
	var gotPath, gotType, gotAgent, gotID string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotAgent = r.Header.Get("User-Agent")
		gotID = r.Header.Get(RequestIDHeader)
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", 0)
	resp, err := client.PostJSON(context.Background(), "/api/video-info", map[string]string{"url": "https://v.example/1"})
	if err != nil {
		t.Fatalf("PostJSON failed: %v", err)
	}

	if gotPath != "/api/video-info" {
		t.Errorf("path = %q", gotPath)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if gotAgent != "vidscribe" {
		t.Errorf("User-Agent = %q", gotAgent)
	}
	if gotID == "" || gotID != resp.RequestID {
		t.Errorf("request id header %q does not match response %q", gotID, resp.RequestID)
	}
	if gotBody["url"] != "https://v.example/1" {
		t.Errorf("body url = %q", gotBody["url"])
	}
	if !resp.OK() || resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, OK() = %v", resp.StatusCode, resp.OK())
	}
	if string(resp.Body) != `{"message":"ok"}` {
		t.Errorf("body = %q", resp.Body)
	}
}

func TestClient_RequestIDUnique(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)
	first, err := client.PostJSON(context.Background(), "/api/download", struct{}{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := client.PostJSON(context.Background(), "/api/download", struct{}{})
	if err != nil {
		t.Fatal(err)
	}
	if first.RequestID == second.RequestID {
		t.Errorf("request ids should differ, both %q", first.RequestID)
	}
}

func TestClient_NonOKIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"bad url"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, 0).PostJSON(context.Background(), "/api/download", struct{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OK() {
		t.Error("400 should not be OK")
	}
}

func TestClient_PostFile(t *testing.T) {
	var gotName, gotContent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotName = header.Filename
		gotContent = string(data)
		w.Write([]byte(`{"message":"queued"}`))
	}))
	defer srv.Close()

	content := strings.Repeat("a", 4096)
	var lastSent, lastTotal int64

	resp, err := NewClient(srv.URL, 0).PostFile(context.Background(), "/api/transcribe", "file", "talk.mp3",
		strings.NewReader(content), int64(len(content)), func(sent, total int64) {
			lastSent, lastTotal = sent, total
		})
	if err != nil {
		t.Fatalf("PostFile failed: %v", err)
	}
	if !resp.OK() {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if gotName != "talk.mp3" {
		t.Errorf("filename = %q", gotName)
	}
	if gotContent != content {
		t.Errorf("content length = %d, want %d", len(gotContent), len(content))
	}
	if lastSent != int64(len(content)) || lastTotal != int64(len(content)) {
		t.Errorf("progress = %d/%d, want %d/%d", lastSent, lastTotal, len(content), len(content))
	}
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("jpegdata"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 0)

	data, err := client.Get(context.Background(), "/thumb.jpg")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != "jpegdata" {
		t.Errorf("data = %q", data)
	}

	if _, err := client.Get(context.Background(), srv.URL+"/missing.jpg"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewClient(url, 0).PostJSON(context.Background(), "/api/download", struct{}{}); err == nil {
		t.Error("expected error when backend is unreachable")
	}
}

func TestProgressReader(t *testing.T) {
	var updates int
	pr := &ProgressReader{
		Reader: strings.NewReader("hello world"),
		Total:  11,
		OnUpdate: func(sent, total int64) {
			updates++
		},
	}

	data, err := io.ReadAll(pr)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello world" {
		t.Errorf("data = %q", data)
	}
	if pr.Sent != 11 {
		t.Errorf("Sent = %d, want 11", pr.Sent)
	}
	if updates == 0 {
		t.Error("OnUpdate was never called")
	}
}

func TestClient_BaseURL(t *testing.T) {
	if got := NewClient("http://media.local:9000//", 0).BaseURL(); got != "http://media.local:9000" {
		t.Errorf("BaseURL() = %q", got)
	}
}
