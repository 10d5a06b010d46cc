package cli

// SilentError wraps an error that has already been reported to the user.
// Execute exits non-zero without printing it again.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string {
	return e.Err.Error()
}

func (e *SilentError) Unwrap() error {
	return e.Err
}

// NewSilentError marks err as already reported.
func NewSilentError(err error) *SilentError {
	return &SilentError{Err: err}
}
