package convert

import "errors"

// PipelineError represents a conversion failure with both a technical error
// and a user-facing message. All pipeline failures are recoverable; the UI
// returns to an actionable state and the user may retry.
type PipelineError struct {
	Err     error
	UserMsg string
}

func (e *PipelineError) Error() string {
	return e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Predefined pipeline errors
var (
	ErrTimeout = &PipelineError{
		Err:     errors.New("image load timed out"),
		UserMsg: "Image load timed out.",
	}

	ErrDecode = &PipelineError{
		Err:     errors.New("failed to decode image data"),
		UserMsg: "Failed to read image data.",
	}

	ErrInvalidImage = &PipelineError{
		Err:     errors.New("image has no usable dimensions"),
		UserMsg: "Invalid image for conversion.",
	}

	ErrEncode = &PipelineError{
		Err:     errors.New("png encoding produced no output"),
		UserMsg: "Conversion failed (no output).",
	}
)

// UserMessage extracts the user-facing message from an error
func UserMessage(err error) string {
	var pipeErr *PipelineError
	if errors.As(err, &pipeErr) {
		return pipeErr.UserMsg
	}
	// Default message for unexpected errors
	return "Conversion failed."
}
