package assessment

import (
	"errors"
	"fmt"
)

// ErrInvalidResponses is matched by every validation error.
var ErrInvalidResponses = errors.New("invalid assessment responses")

// IncompleteAssessmentError reports a response set that does not cover the catalog.
type IncompleteAssessmentError struct {
	Answered int
	Required int
	// Missing is set when the count is sufficient but a question was skipped.
	Missing string
}

func (e *IncompleteAssessmentError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("incomplete assessment: question %q was not answered", e.Missing)
	}
	return fmt.Sprintf("incomplete assessment: %d of %d questions answered", e.Answered, e.Required)
}

func (e *IncompleteAssessmentError) Unwrap() error { return ErrInvalidResponses }

// UnknownQuestionError reports a response for a question not in the catalog.
type UnknownQuestionError struct {
	QuestionID string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question %q", e.QuestionID)
}

func (e *UnknownQuestionError) Unwrap() error { return ErrInvalidResponses }

// OutOfRangeError reports a value that is not an integer in 1..5.
type OutOfRangeError struct {
	QuestionID string
	Value      Answer
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("question %q: value %q is not an integer between %d and %d",
		e.QuestionID, string(e.Value), minLikert, maxLikert)
}

func (e *OutOfRangeError) Unwrap() error { return ErrInvalidResponses }

// ErrorCode is a stable machine-readable name for a validation error, used by
// the transports. It returns "" for anything else.
func ErrorCode(err error) string {
	var (
		incomplete *IncompleteAssessmentError
		unknown    *UnknownQuestionError
		outOfRange *OutOfRangeError
	)
	switch {
	case errors.As(err, &incomplete):
		return "incomplete_assessment"
	case errors.As(err, &unknown):
		return "unknown_question"
	case errors.As(err, &outOfRange):
		return "out_of_range"
	default:
		return ""
	}
}
