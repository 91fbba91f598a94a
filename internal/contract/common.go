package contract

type ErrorCode string

const (
	ErrValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrStorageFailure   ErrorCode = "STORAGE_FAILURE"
	ErrInternalError    ErrorCode = "INTERNAL_ERROR"
)

// ValidationIssue points at one rejected field of one submitted entry.
type ValidationIssue struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the wire error envelope. Details is only populated for
// validation failures, one issue per violation across the whole batch.
type Error struct {
	Code    ErrorCode         `json:"error"`
	Message string            `json:"message"`
	Details []ValidationIssue `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}
