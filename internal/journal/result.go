package journal

import (
	"unicode"
	"unicode/utf8"
)

// Status classifies the outcome of a journal or goal operation.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusStorageError
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusStorageError:
		return "storage error"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is what every mutating call hands back to the presentation layer:
// a status, a message ready for display, and the underlying error if any.
type Result struct {
	Status  Status
	Message string
	Err     error

	// Key is the entry number or goal ID the operation addressed.
	Key int64
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

func (r Result) String() string {
	return r.Message
}

// Invalid wraps a boundary validation failure, such as an empty title,
// into a Result whose message reads like the others.
func Invalid(err error) Result {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r != utf8.RuneError {
		msg = string(unicode.ToUpper(r)) + msg[size:]
	}
	return Result{Status: StatusInvalid, Message: msg + ".", Err: err}
}
