// Package model defines the core data structures used throughout
// the vidscribe application.
//
// # Video Info
//
// VideoInfo is the metadata the backend returns for a video URL:
//
//	info := &model.VideoInfo{Title: "Talk", ThumbnailURL: thumb, Formats: formats}
//	for _, f := range info.Formats {
//	    fmt.Println(f.FormatID, f.Label())
//	}
//
// # Requests
//
// DownloadRequest and Upload carry the form state for the download and
// transcription operations. Both validate themselves before any network
// call is made:
//
//	req := model.DownloadRequest{SourceURL: url, FormatID: "137", Variant: model.VariantOptions}
//	if err := req.Validate(); err != nil {
//	    // *model.ValidationError
//	}
//
// # Outcomes and Errors
//
// Every dispatcher operation resolves to an Outcome. Failures carry one of
// ValidationError, BackendError or TransportError.
package model
