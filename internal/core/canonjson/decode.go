package canonjson

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Parse decodes raw JSON text into a Value tree. Object member order is
// preserved as written and duplicate keys are kept, so that Canonicalize
// stays the single place that rejects them. Numbers decode to float64.
func Parse(raw []byte) (Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(raw), jsontext.AllowDuplicateNames(true))
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if tok, err := dec.ReadToken(); err != io.EOF {
		if err == nil {
			return Value{}, fmt.Errorf("unexpected %q after top-level value", tok.Kind())
		}
		return Value{}, fmt.Errorf("after top-level value: %w", err)
	}
	return v, nil
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	switch dec.PeekKind() {
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, fmt.Errorf("read null: %w", err)
		}
		return Null(), nil
	case 't', 'f':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, fmt.Errorf("read bool: %w", err)
		}
		return Bool(tok.Bool()), nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, fmt.Errorf("read string: %w", err)
		}
		return String(tok.String()), nil
	case '0':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, fmt.Errorf("read number: %w", err)
		}
		return Number(tok.Float()), nil
	case '[':
		return decodeArray(dec)
	case '{':
		return decodeObject(dec)
	default:
		k := dec.PeekKind()
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("unexpected token kind %q", k)
	}
}

func decodeObject(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return Value{}, fmt.Errorf("read object open: %w", err)
	}
	members := []Member{}
	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return Value{}, fmt.Errorf("read object key: %w", err)
		}
		// Tokens are voided by the next decoder call, so the key must be
		// materialized before descending into the value.
		key := name.String()
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("read object value for key %q: %w", key, err)
		}
		members = append(members, Member{Key: key, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return Value{}, fmt.Errorf("read object close: %w", err)
	}
	return Object(members...), nil
}

func decodeArray(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return Value{}, fmt.Errorf("read array open: %w", err)
	}
	elems := []Value{}
	for dec.PeekKind() != ']' {
		elem, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("read array element: %w", err)
		}
		elems = append(elems, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return Value{}, fmt.Errorf("read array close: %w", err)
	}
	return Array(elems...), nil
}
