package canonjson

import (
	"testing"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
)

// The webpki canonicalizer is the reference implementation of RFC 8785;
// every document this engine accepts must serialize to the same bytes.
// The reference only accepts composite top-level values, so scalar cases
// ride inside an array.
func TestAgainstReferenceCanonicalizer(t *testing.T) {
	docs := []string{
		`[null,true,"hello\nworld",0.000001,1e+30]`,
		`[]`,
		`{}`,
		`[1,2.5,-3,1e21,1e-7]`,
		`{"b":2,"a":1}`,
		`{"z":[3,{"y":true,"x":"✓"},1],"a":{"nested":{"deep":null}}}`,
		`{"numbers":[56.0,-0.0,0.0020,333333333.33333329]}`,
		`{"€":"euro","~":"tilde","｡":"halfwidth","😀":"emoji"}`,
		`{"literal":"\u20ac$\u000F\u000aA'\u0042\u0022\u005c\\\"\/"}`,
		`{"1":"one","10":"ten","2":"two"}`,
	}

	for _, doc := range docs {
		want, err := jsoncanonicalizer.Transform([]byte(doc))
		if err != nil {
			t.Fatalf("reference transform(%s): %v", doc, err)
		}
		got, err := CanonicalizeRaw([]byte(doc))
		if err != nil {
			t.Fatalf("CanonicalizeRaw(%s): %v", doc, err)
		}
		if string(got) != string(want) {
			t.Errorf("doc %s:\n  got  %s\n  want %s", doc, got, want)
		}
	}
}
