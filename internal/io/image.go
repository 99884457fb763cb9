package ioutils

import (
	"bytes"
	"context"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ImageService provides image processing operations for thumbnails.
//
// ImageService is used to:
//   - Scale thumbnails down for the terminal preview
//   - Resize and convert thumbnails to JPEG before saving them
//
// Example usage:
//
//	svc := NewImageService()
//
//	resized, _ := svc.ResizeImage(ctx, thumbData, 640, 360)
//	err := WriteFile(ctx, "thumb.jpg", resized)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Fit decodes data and scales it to fit within maxWidth x maxHeight.
//
// The aspect ratio is preserved. Images already inside the bounds are
// returned at their original size. The Catmull-Rom algorithm is used for
// scaling.
func (s *ImageService) Fit(ctx context.Context, data []byte, maxWidth, maxHeight int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := fitDimensions(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst, nil
}

// ResizeImage resizes an image to fit within the specified maximum dimensions
// and returns it as JPEG-encoded bytes. An image that already fits is only
// converted.
//
// Example:
//
//	// A 1280x720 thumbnail becomes 640x360
//	resized, err := svc.ResizeImage(ctx, imageData, 640, 640)
func (s *ImageService) ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if cfg.Width <= maxWidth && cfg.Height <= maxHeight {
		return s.ConvertToJPEG(ctx, data)
	}

	img, err := s.Fit(ctx, data, maxWidth, maxHeight)
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img)
}

// ConvertToJPEG converts an image to JPEG format with 90% quality.
func (s *ImageService) ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fitDimensions scales width x height down to fit inside maxWidth x maxHeight.
func fitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 1, 1
	}
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}
