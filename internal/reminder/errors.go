package reminder

import "errors"

var (
	ErrEmptyInput        = errors.New("reminder text is empty")
	ErrInputTooShort     = errors.New("reminder text is too short to preview")
	ErrTooManySegments   = errors.New("too many reminders in one request")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
