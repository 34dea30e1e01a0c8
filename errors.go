package shape

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. Errors are either one of these values or wrap
// one of them, so callers should use [errors.Is] to tell them apart.
var (
	ErrInvalidAttribute       = errors.New("invalid attribute")
	ErrInvalidAngle           = errors.New("invalid angle")
	ErrInvalidTransform       = errors.New("invalid transform")
	ErrInvalidPathData        = errors.New("invalid path data")
	ErrSingularMatrix         = errors.New("singular matrix")
	ErrIncompatibleConversion = errors.New("incompatible conversion")
)

// SyntaxError describes malformed textual input, such as a path description or a
// transform list.
type SyntaxError struct {
	// Err is one of the package's error kinds.
	Err error
	// Input is the text that failed to parse.
	Input string
	// Offset is the byte offset into Input at which parsing failed, or -1 if the
	// error doesn't refer to a specific position.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %s in %q", e.Err, e.Msg, e.Input)
	}
	return fmt.Sprintf("%s: %s at offset %d in %q", e.Err, e.Msg, e.Offset, e.Input)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxError(kind error, input string, offset int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Err:    kind,
		Input:  input,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}
