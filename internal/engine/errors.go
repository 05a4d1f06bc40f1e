package engine

import "fmt"

// AnalysisErrorCode identifies a class of input validation failure.
type AnalysisErrorCode string

const (
	ErrInvalidInput    AnalysisErrorCode = "INVALID_INPUT"
	ErrInvalidDate     AnalysisErrorCode = "INVALID_DATE"
	ErrMalformedAmount AnalysisErrorCode = "MALFORMED_AMOUNT"
)

// AnalysisError is a structured error for rejected analysis input. The
// engine fails fast: the first bad record rejects the whole batch, so date
// handling stays consistent across every downstream aggregation.
type AnalysisError struct {
	Code    AnalysisErrorCode
	Index   int // index of the offending record, -1 for batch-level errors
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
