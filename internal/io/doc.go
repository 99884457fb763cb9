// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Opening local files as transcription uploads
//   - File writing and directory creation
//   - Thumbnail scaling and format conversion
//
// # Uploads
//
//	upload, err := ioutils.OpenUpload("/path/to/lecture.mp3")
//	// upload.Open() may be called once per submission
//
// # Image Processing
//
// The ImageService handles thumbnail manipulation:
//
//	svc := ioutils.NewImageService()
//
//	// Scale to fit within 32x18 for a terminal preview
//	img, _ := svc.Fit(ctx, thumbData, 32, 18)
//
//	// Resize to fit within 640x360 and encode as JPEG
//	jpeg, _ := svc.ResizeImage(ctx, thumbData, 640, 360)
package ioutils
