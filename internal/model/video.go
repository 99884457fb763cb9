package model

import (
	"fmt"
	"math"
	"math/big"
)

// VideoInfo represents the metadata of a single video as reported by the backend.
//
// VideoInfo is produced by the backend client and consumed read-only by the
// info renderer. Formats keeps the backend order.
type VideoInfo struct {
	// Title is the video title.
	Title string

	// ThumbnailURL is the URL of the video thumbnail image.
	ThumbnailURL string

	// Formats contains every selectable format in backend order.
	Formats []FormatOption
}

// HasThumbnail returns true if the backend reported a thumbnail URL.
func (v *VideoInfo) HasThumbnail() bool {
	return v.ThumbnailURL != ""
}

// FormatOption is one selectable video quality.
type FormatOption struct {
	// FormatID is sent back verbatim as options.format_id on download.
	FormatID string

	// Resolution is a display string such as "1920x1080" or "audio only".
	Resolution string

	// FormatNote is the backend note such as "1080p" or "medium".
	FormatNote string

	// FileSizeMB is the approximate size in megabytes.
	// Nil means the backend did not report a size.
	FileSizeMB *float64
}

// HasFileSize returns true if a non-zero size was reported.
func (f FormatOption) HasFileSize() bool {
	return f.FileSizeMB != nil && *f.FileSizeMB != 0
}

// SizeSuffix returns "(<size>MB)" with the size rounded to one decimal,
// or an empty string when no size is known.
//
// Example:
//
//	size := 2.345
//	FormatOption{FileSizeMB: &size}.SizeSuffix() // "(2.3MB)"
func (f FormatOption) SizeSuffix() string {
	if !f.HasFileSize() {
		return ""
	}
	return "(" + fixed1(*f.FileSizeMB) + "MB)"
}

// fixed1 formats v with one decimal. It works on the exact binary value of
// v and rounds halves away from zero, so 1.25 gives "1.3" while 2.345,
// stored as 2.34499..., gives "2.3".
func fixed1(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}

	tenths := new(big.Rat).SetFloat64(math.Abs(v))
	tenths.Mul(tenths, big.NewRat(10, 1))

	n := new(big.Int).Quo(tenths.Num(), tenths.Denom())
	rest := new(big.Rat).Sub(tenths, new(big.Rat).SetInt(n))
	if rest.Cmp(big.NewRat(1, 2)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	whole, frac := new(big.Int).QuoRem(n, big.NewInt(10), new(big.Int))
	out := whole.String() + "." + frac.String()
	if v < 0 {
		out = "-" + out
	}
	return out
}

// Label returns the selector label "<resolution> - <note> <sizeSuffix>".
func (f FormatOption) Label() string {
	return fmt.Sprintf("%s - %s %s", f.Resolution, f.FormatNote, f.SizeSuffix())
}
