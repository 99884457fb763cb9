package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/handiism/vidscribe/internal/model"
)

// JSONVideoInfo is the success body of /api/video-info.
type JSONVideoInfo struct {
	Title     string          `json:"title"`
	Thumbnail string          `json:"thumbnail"`
	Formats   json.RawMessage `json:"formats"`
}

// JSONFormat is one entry of the formats array.
type JSONFormat struct {
	FormatID   looseString `json:"format_id"`
	Resolution looseString `json:"resolution"`
	FormatNote looseString `json:"format_note"`
	FileSize   looseSize   `json:"filesize"`
}

// DecodeVideoInfo parses a 2xx /api/video-info body.
//
// The body must be a JSON object. Any shape the page could not render is
// reported as model.ErrMalformedResponse.
func DecodeVideoInfo(body []byte) (*model.VideoInfo, error) {
	if !isObject(body) {
		return nil, fmt.Errorf("%w: video info is not an object", model.ErrMalformedResponse)
	}

	var jv JSONVideoInfo
	if err := json.Unmarshal(body, &jv); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}

	return jv.ToVideoInfo()
}

// ToVideoInfo converts JSONVideoInfo to a model.VideoInfo.
//
// A formats value that is absent, null or not an array yields no formats.
// Every array entry becomes exactly one FormatOption; an entry that is not
// an object, or whose fields cannot be shown, fails the whole conversion.
func (jv *JSONVideoInfo) ToVideoInfo() (*model.VideoInfo, error) {
	info := &model.VideoInfo{
		Title:        jv.Title,
		ThumbnailURL: jv.Thumbnail,
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(jv.Formats, &entries); err != nil {
		return info, nil
	}

	info.Formats = make([]model.FormatOption, 0, len(entries))
	for i, raw := range entries {
		if !isObject(raw) {
			return nil, fmt.Errorf("%w: format %d is not an object", model.ErrMalformedResponse, i)
		}

		var jf JSONFormat
		if err := json.Unmarshal(raw, &jf); err != nil {
			return nil, fmt.Errorf("%w: format %d: %v", model.ErrMalformedResponse, i, err)
		}
		info.Formats = append(info.Formats, jf.ToFormatOption())
	}

	return info, nil
}

// ToFormatOption converts JSONFormat to a model.FormatOption.
func (jf *JSONFormat) ToFormatOption() model.FormatOption {
	return model.FormatOption{
		FormatID:   string(jf.FormatID),
		Resolution: string(jf.Resolution),
		FormatNote: string(jf.FormatNote),
		FileSizeMB: jf.FileSize.MB,
	}
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// looseString accepts any JSON scalar and keeps its text.
// null yields an empty string.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = looseString(t)
	case json.Number:
		*s = looseString(t.String())
	case bool:
		*s = looseString(strconv.FormatBool(t))
	default:
		return fmt.Errorf("expected a scalar, got %s", data)
	}
	return nil
}

// looseSize holds filesize in megabytes.
//
// null, false and "" mean no size. Any other value that is not a number is
// rejected because it cannot be formatted as a size.
type looseSize struct {
	MB *float64
}

func (s *looseSize) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case float64:
		s.MB = &t
	case nil:
		s.MB = nil
	case bool:
		if t {
			return fmt.Errorf("filesize is not a number: %s", data)
		}
		s.MB = nil
	case string:
		if t != "" {
			return fmt.Errorf("filesize is not a number: %s", data)
		}
		s.MB = nil
	default:
		return fmt.Errorf("filesize is not a number: %s", data)
	}
	return nil
}
