package canonjson

import "errors"

// Canonicalization failure kinds. Every error returned by this package
// unwraps to exactly one of these sentinels, so callers can dispatch with
// errors.Is.
var (
	// ErrInvalidNumber is returned when a NaN or ±Infinity number is
	// encountered. The caller must sanitize such values before
	// canonicalizing; they are never silently coerced.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrDuplicateKey is returned when an object holds two members with
	// the same key. Duplicates are rejected rather than resolved, since
	// first- or last-wins would make canonical output ambiguous.
	ErrDuplicateKey = errors.New("duplicate object key")

	// ErrUnsupportedType is returned when a value outside the six defined
	// variants reaches the serializer, which indicates a construction bug
	// upstream.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrDepthExceeded is returned when nesting exceeds the configured
	// maximum depth.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

// Error reports a canonicalization failure together with the slash-joined
// path of the offending node ("" for the root, "/a/3" for index 3 under
// key "a").
type Error struct {
	Kind   error // one of the sentinel errors above
	Path   string
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Kind }

func errAt(kind error, path, detail string) *Error {
	return &Error{Kind: kind, Path: path, Detail: detail}
}
