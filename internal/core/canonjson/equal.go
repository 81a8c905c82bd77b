package canonjson

import "bytes"

// Equal reports whether a and b have byte-identical canonical forms, using
// the default depth limit. See Serializer.Equal.
func Equal(a, b Value) (bool, error) {
	return Serializer{}.Equal(a, b)
}

// Equal reports whether a and b have byte-identical canonical forms. This
// is stricter than structural equality in one direction and looser in
// another: {"a":1,"b":2} equals {"b":2,"a":1}, the numbers 1 and 1.0 are
// equal, but the string "1" never equals the number 1. A serialization
// error on either side propagates instead of defaulting to false.
func (s Serializer) Equal(a, b Value) (bool, error) {
	ca, err := s.Canonicalize(a)
	if err != nil {
		return false, err
	}
	cb, err := s.Canonicalize(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ca, cb), nil
}
