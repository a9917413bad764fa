package terminfo

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindNotFound means the terminfo source could not be located. The
	// core parser never returns this itself; internal/locate reports a
	// missing description with its own *locate.NotFoundError instead.
	KindNotFound Kind = iota
	// KindInvalidMagicNum means the header's magic number matched
	// neither the legacy 16-bit nor the 32-bit encoding.
	KindInvalidMagicNum
	// KindIO means the underlying byte source failed or ended early.
	KindIO
	// KindNoNames means the header declared a zero-length names block.
	KindNoNames
	// KindNamesMissingNull means the names block was not terminated by a
	// NUL byte.
	KindNamesMissingNull
	// KindStringMissingNull means a string capability lacked a NUL
	// terminator where one was required.
	KindStringMissingNull
	// KindOutOfBoundString means a non-sentinel string offset fell
	// outside its table.
	KindOutOfBoundString
	// KindInvalidUTF8 means text that must decode as UTF-8 did not.
	KindInvalidUTF8
	// KindInvalidNames means the extended section's header fields were
	// structurally inconsistent.
	KindInvalidNames
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidMagicNum:
		return "invalid magic number"
	case KindIO:
		return "io error"
	case KindNoNames:
		return "no names"
	case KindNamesMissingNull:
		return "names missing null"
	case KindStringMissingNull:
		return "string missing null"
	case KindOutOfBoundString:
		return "out of bound string"
	case KindInvalidUTF8:
		return "invalid utf8"
	case KindInvalidNames:
		return "invalid names"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by this package. Callers that
// need to distinguish failure modes should inspect Kind or use
// errors.As/errors.Is against the sentinel values below.
type Error struct {
	Kind Kind

	// Magic is set for KindInvalidMagicNum.
	Magic int16
	// Off and TableSize are set for KindOutOfBoundString.
	Off, TableSize uint16

	// Err is the wrapped cause, if any (an I/O error, a UTF-8 decoding
	// error).
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidMagicNum:
		return fmt.Sprintf("terminfo: bad magic number %#x in header", uint16(e.Magic))
	case KindOutOfBoundString:
		return fmt.Sprintf("terminfo: string offset %d outside table (size %d)", e.Off, e.TableSize)
	case KindIO:
		return fmt.Sprintf("terminfo: reading failed: %v", e.Err)
	case KindInvalidUTF8:
		return fmt.Sprintf("terminfo: invalid ASCII/UTF-8: %v", e.Err)
	default:
		return "terminfo: " + e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind) *Error {
	return &Error{Kind: kind}
}

func wrapError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// ErrNotFound is the KindNotFound sentinel. Neither Parse nor
// internal/locate returns it. It satisfies errors.Is against any *Error
// with Kind == KindNotFound.
var ErrNotFound = newError(KindNotFound)

// Is implements errors.Is comparison by Kind alone, so callers can write
// errors.Is(err, terminfo.ErrNotFound) regardless of wrapped context.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// asIOError wraps an I/O failure (from internal/wire or a caller-supplied
// reader) as a KindIO *Error, unless it is already one of this package's
// own errors.
func asIOError(err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}
	return wrapError(KindIO, err)
}
