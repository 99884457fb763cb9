package dispatch

import "github.com/handiism/vidscribe/internal/model"

// NoticeLevel indicates the severity/type of a notice.
type NoticeLevel int

const (
	LevelInfo NoticeLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Notice is a message for the user or the activity log.
type Notice struct {
	Message string
	Level   NoticeLevel
}

// levelFor maps an outcome kind to the level it is reported at.
func levelFor(kind model.OutcomeKind) NoticeLevel {
	switch kind {
	case model.OutcomeSuccess:
		return LevelSuccess
	case model.OutcomeValidation:
		return LevelWarning
	default:
		return LevelError
	}
}
