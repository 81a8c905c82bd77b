package envelope

import (
	"crypto/ed25519"
	"encoding/json"
	"strings"
	"testing"

	"github.com/canonkit/canond-go/internal/core/crypto"
)

func signedTestEnvelope(t *testing.T, payload string) (*Envelope, ed25519.PublicKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	env := &Envelope{
		ObjectType:    "document",
		ObjectVersion: ObjectVersion,
		ObjectID:      "01J0000000000000000000TEST",
		CreatedAt:     "2025-01-01T00:00:00Z",
		Payload:       json.RawMessage(payload),
	}
	if err := env.Sign(pub, priv); err != nil {
		t.Fatalf("sign: %v", err)
	}
	return env, pub
}

func TestSignThenVerify(t *testing.T) {
	env, _ := signedTestEnvelope(t, `{"title":"test doc","weight":1.0}`)

	if err := env.ValidateBasic(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := env.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerify_PayloadKeyOrderIrrelevant(t *testing.T) {
	env, _ := signedTestEnvelope(t, `{"b": 2, "a": 1}`)

	// Reordering keys and respelling numbers changes the payload bytes but
	// not its canonical form, so the signature must still verify.
	env.Payload = json.RawMessage(`{"a":1.0,"b":2.0}`)

	if err := env.Verify(); err != nil {
		t.Fatalf("verify after reordering: %v", err)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	env, _ := signedTestEnvelope(t, `{"title":"original"}`)
	env.Payload = json.RawMessage(`{"title":"tampered"}`)

	if err := env.Verify(); err == nil {
		t.Fatal("expected verification to fail for tampered payload")
	}
}

func TestVerify_TamperedObjectID(t *testing.T) {
	env, _ := signedTestEnvelope(t, `{"title":"original"}`)
	env.ObjectID = "01J0000000000000000000EVIL"

	if err := env.Verify(); err == nil {
		t.Fatal("expected verification to fail for tampered object_id")
	}
}

func TestVerify_WrongSigner(t *testing.T) {
	env, _ := signedTestEnvelope(t, `{"title":"original"}`)
	otherPub, _, _ := ed25519.GenerateKey(nil)
	env.Signer = Signer{Algo: SignerAlgo, PubKey: crypto.EncodePubKey(otherPub)}

	if err := env.Verify(); err == nil {
		t.Fatal("expected verification to fail under a different public key")
	}
}

func TestValidateBasic_FieldChecks(t *testing.T) {
	base, _ := signedTestEnvelope(t, `{"k":1}`)

	cases := []struct {
		name    string
		mutate  func(e *Envelope)
		wantSub string
	}{
		{"invalid object_type", func(e *Envelope) { e.ObjectType = "unknown" }, "object_type"},
		{"wrong object_version", func(e *Envelope) { e.ObjectVersion = "0.2" }, "object_version"},
		{"missing object_id", func(e *Envelope) { e.ObjectID = "" }, "object_id"},
		{"missing created_at", func(e *Envelope) { e.CreatedAt = "" }, "created_at"},
		{"bad created_at", func(e *Envelope) { e.CreatedAt = "yesterday" }, "RFC3339"},
		{"missing payload", func(e *Envelope) { e.Payload = nil }, "payload"},
		{"payload not object", func(e *Envelope) { e.Payload = json.RawMessage(`[1,2]`) }, "object"},
		{"payload invalid json", func(e *Envelope) { e.Payload = json.RawMessage(`{`) }, "JSON"},
		{"wrong algo", func(e *Envelope) { e.Signer.Algo = "rsa" }, "algo"},
		{"missing pubkey", func(e *Envelope) { e.Signer.PubKey = "" }, "pubkey"},
		{"missing signature", func(e *Envelope) { e.Signature = "" }, "signature"},
		{"bad signature b64", func(e *Envelope) { e.Signature = "not-base64!" }, "signature"},
	}
	for _, tc := range cases {
		env := *base
		tc.mutate(&env)
		err := env.ValidateBasic()
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantSub) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantSub)
		}
	}
}

func TestPayloadDigest_StableAcrossSpelling(t *testing.T) {
	a, _ := signedTestEnvelope(t, `{"x":1,"y":[true,null]}`)
	b, _ := signedTestEnvelope(t, `{"y":[true,null],"x":1.0}`)

	da, err := a.PayloadDigest("sha-256")
	if err != nil {
		t.Fatalf("digest a: %v", err)
	}
	db, err := b.PayloadDigest("sha-256")
	if err != nil {
		t.Fatalf("digest b: %v", err)
	}
	if da != db {
		t.Errorf("digests differ: %s vs %s", da, db)
	}
}
