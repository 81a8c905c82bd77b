// Package canonjson implements RFC 8785 (JCS) JSON canonicalization over an
// explicit six-variant value tree, together with the digest and equality
// helpers built on the canonical byte form.
package canonjson

import "fmt"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Member is one key/value pair of an object. Member order is preserved as
// built but carries no meaning for canonical output; duplicate keys are a
// constraint violation reported by Canonicalize.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value holding exactly one of the six variants. The zero
// Value is deliberately none of them and is rejected with
// ErrUnsupportedType when it reaches the serializer.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  []Member
}

// Kind reports the variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a JSON number value. NaN and ±Infinity are representable
// here but rejected at canonicalization time.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a JSON string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns a JSON array of the given elements, order-significant.
func Array(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Object returns a JSON object with the given members. Key uniqueness is
// not checked here; Canonicalize rejects duplicates.
func Object(members ...Member) Value { return Value{kind: KindObject, obj: members} }

// Members returns the object members in insertion order, or nil when v is
// not an object.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Elements returns the array elements in order, or nil when v is not an
// array.
func (v Value) Elements() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// FromGo converts the Go shapes produced by encoding/json style decoders
// (nil, bool, numeric kinds, string, []any, map[string]any) plus this
// package's own types into a Value tree. Anything else fails with
// ErrUnsupportedType.
func FromGo(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int8:
		return Number(float64(t)), nil
	case int16:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case uint:
		return Number(float64(t)), nil
	case uint8:
		return Number(float64(t)), nil
	case uint16:
		return Number(float64(t)), nil
	case uint32:
		return Number(float64(t)), nil
	case uint64:
		return Number(float64(t)), nil
	case string:
		return String(t), nil
	case []any:
		elems := make([]Value, 0, len(t))
		for _, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, ev)
		}
		return Array(elems...), nil
	case []Value:
		return Array(t...), nil
	case map[string]any:
		members := make([]Member, 0, len(t))
		for k, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k, Value: ev})
		}
		return Object(members...), nil
	case []Member:
		return Object(t...), nil
	default:
		return Value{}, &Error{Kind: ErrUnsupportedType, Detail: fmt.Sprintf("Go type %T", x)}
	}
}
