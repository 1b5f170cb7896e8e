package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// QuestionType represents the input widget a scenario question expects
type QuestionType string

const (
	QuestionSlider QuestionType = "slider"
	QuestionBinary QuestionType = "binary"
	QuestionPicker QuestionType = "picker"
)

// Validate checks if the QuestionType is valid
func (q QuestionType) Validate() error {
	switch q {
	case QuestionSlider, QuestionBinary, QuestionPicker:
		return nil
	}
	return goerr.New("unknown question type", goerr.V("type", q))
}

// RequiresOptions reports whether the question type needs a finite option set
func (q QuestionType) RequiresOptions() bool {
	return q == QuestionBinary || q == QuestionPicker
}

// String returns the string representation of QuestionType
func (q QuestionType) String() string {
	return string(q)
}
