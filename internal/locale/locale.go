// Package locale holds the user-facing strings shown by the dispatcher,
// the renderer and the terminal UI.
package locale

import "strings"

// Catalog is the set of user-visible messages for one language.
type Catalog struct {
	Lang string

	URLRequired       string
	SelectionRequired string
	FileRequired      string

	// ErrorPrefix is prepended to backend error strings, e.g. "错误: bad url".
	ErrorPrefix string

	DownloadStarted       string
	DownloadFailed        string
	TranscriptionQueued   string
	TranscriptionFailed   string
	VideoInfoFailed       string
	VideoInfoLoading      string
	VideoInfoButton       string
	ResolutionPlaceholder string
}

// Chinese matches the strings of the original web page.
var Chinese = Catalog{
	Lang:                  "zh",
	URLRequired:           "请输入视频URL",
	SelectionRequired:     "请选择下载内容（视频格式或字幕）",
	FileRequired:          "请选择要转写的音频或视频文件",
	ErrorPrefix:           "错误: ",
	DownloadStarted:       "开始下载，请等待完成",
	DownloadFailed:        "下载请求失败，请稍后重试",
	TranscriptionQueued:   "转写任务已添加到队列",
	TranscriptionFailed:   "转写请求失败，请稍后重试",
	VideoInfoFailed:       "获取视频信息失败，请稍后重试",
	VideoInfoLoading:      "正在获取信息...",
	VideoInfoButton:       "获取视频信息",
	ResolutionPlaceholder: "选择清晰度...",
}

// English is the fallback for non-Chinese locales.
var English = Catalog{
	Lang:                  "en",
	URLRequired:           "Please enter a video URL",
	SelectionRequired:     "Please choose what to download (a video format or subtitles)",
	FileRequired:          "Please choose an audio or video file to transcribe",
	ErrorPrefix:           "Error: ",
	DownloadStarted:       "Download started, please wait for it to finish",
	DownloadFailed:        "Download request failed, please try again later",
	TranscriptionQueued:   "Transcription task added to the queue",
	TranscriptionFailed:   "Transcription request failed, please try again later",
	VideoInfoFailed:       "Failed to fetch video info, please try again later",
	VideoInfoLoading:      "Fetching info...",
	VideoInfoButton:       "Get video info",
	ResolutionPlaceholder: "Choose resolution...",
}

// Lookup returns the catalog for a language tag such as "zh", "zh-CN" or "en_US".
// Anything unrecognised gets Chinese, the page's original language.
func Lookup(lang string) Catalog {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if strings.HasPrefix(lang, "en") {
		return English
	}
	return Chinese
}

// BackendError formats a backend error string for display.
func (c Catalog) BackendError(message string) string {
	return c.ErrorPrefix + message
}
