package format

import "errors"

var (
	// ErrTruncated indicates the buffer ended before a field was complete.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMalformedHeader indicates the magic marker was missing or a header field is out of range.
	ErrMalformedHeader = errors.New("format: malformed header")
	// ErrInvalidCharacterGrid indicates a solution or player grid was not 7-bit text.
	ErrInvalidCharacterGrid = errors.New("format: invalid character grid")
	// ErrUnencodable indicates a field cannot be written in the file's single-byte charset or size.
	ErrUnencodable = errors.New("format: field not encodable")
)
