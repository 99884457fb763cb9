package audio

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// Tags holds the ID3 fields shown next to an upload.
type Tags struct {
	Title  string
	Artist string
	Album  string
}

// Empty returns true if no field is set.
func (t Tags) Empty() bool {
	return t.Title == "" && t.Artist == "" && t.Album == ""
}

// ReadTags reads the ID3v2 tag of the file at path.
//
// Files without a tag yield empty Tags and no error.
func ReadTags(path string) (Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Tags{}, err
	}
	defer tag.Close()

	return Tags{
		Title:  strings.TrimSpace(tag.Title()),
		Artist: strings.TrimSpace(tag.Artist()),
		Album:  strings.TrimSpace(tag.Album()),
	}, nil
}

// Describe returns a display label for the file at path:
// "Artist - Title", "Title", or the file name when no tag is readable.
// A tagged album is appended in parentheses.
func Describe(path string) string {
	name := filepath.Base(path)

	tags, err := ReadTags(path)
	if err != nil || tags.Empty() {
		return name
	}

	var label string
	switch {
	case tags.Artist != "" && tags.Title != "":
		label = tags.Artist + " - " + tags.Title
	case tags.Title != "":
		label = tags.Title
	case tags.Artist != "":
		label = tags.Artist + " - " + name
	default:
		label = name
	}

	if tags.Album != "" {
		label += " (" + tags.Album + ")"
	}
	return label
}
