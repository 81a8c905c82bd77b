// Package envelope defines the signed document envelope: an arbitrary JSON
// payload bound to an ed25519 signature computed over the canonical form of
// the envelope, so that key order and numeric spelling in transit never
// affect verification.
package envelope

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"time"

	"github.com/canonkit/canond-go/internal/core/canonjson"
	"github.com/canonkit/canond-go/internal/core/crypto"
)

// ValidObjectTypes enumerates the object types supported in v0.1.
var ValidObjectTypes = map[string]bool{
	"document": true,
}

// ObjectVersion is the envelope schema version supported in v0.1.
const ObjectVersion = "0.1"

// SignerAlgo is the only signature algorithm supported in v0.1.
const SignerAlgo = "ed25519"

// Signer represents the signer block in an envelope.
type Signer struct {
	Algo   string `json:"algo"`
	PubKey string `json:"pubkey"`
}

// Envelope represents a signed document envelope.
type Envelope struct {
	ObjectType    string          `json:"object_type"`
	ObjectVersion string          `json:"object_version"`
	ObjectID      string          `json:"object_id"`
	CreatedAt     string          `json:"created_at"`
	Payload       json.RawMessage `json:"payload"`
	Signer        Signer          `json:"signer"`
	Signature     string          `json:"signature"`
}

// ValidateBasic checks that all required fields are present, correct types,
// and version/algo match v0.1 expectations. Signature verification is a
// separate step, see Verify.
func (e *Envelope) ValidateBasic() error {
	if !ValidObjectTypes[e.ObjectType] {
		return fmt.Errorf("invalid object_type: %q", e.ObjectType)
	}
	if e.ObjectVersion != ObjectVersion {
		return fmt.Errorf("unsupported object_version: %q", e.ObjectVersion)
	}
	if e.ObjectID == "" {
		return fmt.Errorf("object_id is required")
	}
	if e.CreatedAt == "" {
		return fmt.Errorf("created_at is required")
	}
	if _, err := time.Parse(time.RFC3339, e.CreatedAt); err != nil {
		if _, err2 := time.Parse(time.RFC3339Nano, e.CreatedAt); err2 != nil {
			return fmt.Errorf("created_at is not valid RFC3339: %w", err)
		}
	}
	if len(e.Payload) == 0 {
		return fmt.Errorf("payload is required")
	}
	pv, err := canonjson.Parse(e.Payload)
	if err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	if pv.Kind() != canonjson.KindObject {
		return fmt.Errorf("payload must be a JSON object, got %s", pv.Kind())
	}
	if e.Signer.Algo != SignerAlgo {
		return fmt.Errorf("unsupported signer.algo: %q", e.Signer.Algo)
	}
	if e.Signer.PubKey == "" {
		return fmt.Errorf("signer.pubkey is required")
	}
	if e.Signature == "" {
		return fmt.Errorf("signature is required")
	}

	if _, err := crypto.DecodePubKey(e.Signer.PubKey); err != nil {
		return fmt.Errorf("signer.pubkey: %w", err)
	}
	if _, err := crypto.DecodeSignature(e.Signature); err != nil {
		return fmt.Errorf("signature: %w", err)
	}

	return nil
}

// SignedPreimageBytes returns the canonical JSON bytes of the envelope with
// the signature field removed, which is the exact byte sequence both signer
// and verifier operate on.
func (e *Envelope) SignedPreimageBytes() ([]byte, error) {
	payload, err := canonjson.Parse(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}
	pre := canonjson.Object(
		canonjson.Member{Key: "object_type", Value: canonjson.String(e.ObjectType)},
		canonjson.Member{Key: "object_version", Value: canonjson.String(e.ObjectVersion)},
		canonjson.Member{Key: "object_id", Value: canonjson.String(e.ObjectID)},
		canonjson.Member{Key: "created_at", Value: canonjson.String(e.CreatedAt)},
		canonjson.Member{Key: "payload", Value: payload},
		canonjson.Member{Key: "signer", Value: canonjson.Object(
			canonjson.Member{Key: "algo", Value: canonjson.String(e.Signer.Algo)},
			canonjson.Member{Key: "pubkey", Value: canonjson.String(e.Signer.PubKey)},
		)},
	)
	return canonjson.Canonicalize(pre)
}

// Sign fills the signer block from the key pair and signs the canonical
// preimage. Existing signer/signature fields are overwritten.
func (e *Envelope) Sign(pub ed25519.PublicKey, priv ed25519.PrivateKey) error {
	e.Signer = Signer{Algo: SignerAlgo, PubKey: crypto.EncodePubKey(pub)}
	e.Signature = ""
	preimage, err := e.SignedPreimageBytes()
	if err != nil {
		return fmt.Errorf("sign: preimage: %w", err)
	}
	e.Signature = crypto.EncodeSignature(crypto.SignEd25519(priv, preimage))
	return nil
}

// Verify performs full signature verification: decodes the public key and
// signature, recomputes the canonical preimage, and verifies the ed25519
// signature over it.
func (e *Envelope) Verify() error {
	pubkey, err := crypto.DecodePubKey(e.Signer.PubKey)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	sig, err := crypto.DecodeSignature(e.Signature)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	preimage, err := e.SignedPreimageBytes()
	if err != nil {
		return fmt.Errorf("verify: preimage: %w", err)
	}
	if !crypto.VerifyEd25519(pubkey, preimage, sig) {
		return fmt.Errorf("verify: ed25519 signature verification failed")
	}
	return nil
}

// PayloadDigest returns the digest of the payload's canonical form under
// the named algorithm, as lowercase hex.
func (e *Envelope) PayloadDigest(algorithm string) (string, error) {
	payload, err := canonjson.Parse(e.Payload)
	if err != nil {
		return "", fmt.Errorf("payload: %w", err)
	}
	return canonjson.Digest(payload, algorithm)
}
