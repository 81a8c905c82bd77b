package canonjson

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf16"
)

// DefaultMaxDepth is the nesting limit used by the package-level functions.
const DefaultMaxDepth = 64

// Serializer canonicalizes value trees. The zero Serializer uses
// DefaultMaxDepth; set MaxDepth to bound nesting differently. Serializers
// hold no state across calls and are safe for concurrent use.
type Serializer struct {
	MaxDepth int
}

// Canonicalize serializes v into its unique RFC 8785 byte form using the
// default depth limit.
func Canonicalize(v Value) ([]byte, error) {
	return Serializer{}.Canonicalize(v)
}

// CanonicalizeRaw decodes raw JSON text and returns its canonical form.
func CanonicalizeRaw(raw []byte) ([]byte, error) {
	return Serializer{}.CanonicalizeRaw(raw)
}

// Canonicalize serializes v into its unique RFC 8785 byte form: no
// whitespace, object keys sorted by UTF-16 code units, shortest round-trip
// numbers, minimal string escaping, UTF-8 encoded. On error no partial
// output is returned.
func (s Serializer) Canonicalize(v Value) ([]byte, error) {
	out, err := s.appendValue(nil, v, "", 0)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CanonicalizeRaw decodes raw JSON text and canonicalizes the result.
func (s Serializer) CanonicalizeRaw(raw []byte) ([]byte, error) {
	v, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("canonjson: parse: %w", err)
	}
	return s.Canonicalize(v)
}

func (s Serializer) maxDepth() int {
	if s.MaxDepth > 0 {
		return s.MaxDepth
	}
	return DefaultMaxDepth
}

func (s Serializer) appendValue(dst []byte, v Value, path string, depth int) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindNumber:
		text, err := formatNumber(v.num)
		if err != nil {
			return nil, errAt(ErrInvalidNumber, path, strconv.FormatFloat(v.num, 'g', -1, 64))
		}
		return append(dst, text...), nil
	case KindString:
		return appendEscaped(dst, v.str), nil
	case KindArray:
		if depth >= s.maxDepth() {
			return nil, errAt(ErrDepthExceeded, path, "limit "+strconv.Itoa(s.maxDepth()))
		}
		dst = append(dst, '[')
		for i, elem := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = s.appendValue(dst, elem, path+"/"+strconv.Itoa(i), depth+1)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case KindObject:
		if depth >= s.maxDepth() {
			return nil, errAt(ErrDepthExceeded, path, "limit "+strconv.Itoa(s.maxDepth()))
		}
		members := sortedMembers(v.obj)
		dst = append(dst, '{')
		for i, m := range members {
			if i > 0 {
				if members[i-1].Key == m.Key {
					return nil, errAt(ErrDuplicateKey, path, strconv.Quote(m.Key))
				}
				dst = append(dst, ',')
			}
			dst = appendEscaped(dst, m.Key)
			dst = append(dst, ':')
			var err error
			dst, err = s.appendValue(dst, m.Value, path+"/"+m.Key, depth+1)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}
	return nil, errAt(ErrUnsupportedType, path, "kind "+v.kind.String())
}

// sortedMembers returns a copy of members ordered by ascending UTF-16 code
// units of their keys (RFC 8785 §3.2.3). The input is never mutated.
func sortedMembers(members []Member) []Member {
	out := make([]Member, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool {
		return compareUTF16(out[i].Key, out[j].Key) < 0
	})
	return out
}

// compareUTF16 orders two strings by their UTF-16 code unit sequences. This
// differs from byte ordering when a key contains code points outside the
// BMP, whose surrogate pairs sort below U+E000.
func compareUTF16(a, b string) int {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		switch {
		case ua[i] < ub[i]:
			return -1
		case ua[i] > ub[i]:
			return 1
		}
	}
	switch {
	case len(ua) < len(ub):
		return -1
	case len(ua) > len(ub):
		return 1
	}
	return 0
}
