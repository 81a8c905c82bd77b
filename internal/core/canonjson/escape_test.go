package canonjson

import "testing"

func TestAppendEscaped_MinimalEscapes(t *testing.T) {
	vectors := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`quote"inside`, `"quote\"inside"`},
		{`back\slash`, `"back\\slash"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00", `"\u0000"`},
		{"\x1f", `"\u001f"`},
		{"\x0f", `"\u000f"`},
		{"a/b", `"a/b"`}, // no slash escaping
		{"€", `"€"`},     // non-ASCII passes through
		{"😀", `"😀"`},     // astral plane stays raw UTF-8, no \u pairs
		{"A\u007FB", "\"A\u007fB\""}, // DEL is not a JSON control character
	}
	for _, v := range vectors {
		got := string(appendEscaped(nil, v.in))
		if got != v.want {
			t.Errorf("appendEscaped(%q) = %s, want %s", v.in, got, v.want)
		}
	}
}
