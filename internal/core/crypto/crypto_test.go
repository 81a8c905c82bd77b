package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"
)

func TestDecodePubKey_RoundTrip(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(nil)

	got, err := DecodePubKey(EncodePubKey(pub))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != ed25519.PublicKeySize {
		t.Errorf("expected %d bytes, got %d", ed25519.PublicKeySize, len(got))
	}
}

func TestDecodePubKey_WrongLength(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte("tooshort"))
	_, err := DecodePubKey(b64)
	if err == nil {
		t.Error("expected error for wrong length")
	}
}

func TestDecodePubKey_URLSafeBase64Rejected(t *testing.T) {
	_, err := DecodePubKey("abc-def_ghi=")
	if err == nil {
		t.Error("expected error for URL-safe base64")
	}
}

func TestDecodeSignature_RoundTrip(t *testing.T) {
	sig := make([]byte, ed25519.SignatureSize)

	got, err := DecodeSignature(EncodeSignature(sig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != ed25519.SignatureSize {
		t.Errorf("expected %d bytes, got %d", ed25519.SignatureSize, len(got))
	}
}

func TestDecodeSignature_WrongLength(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString(make([]byte, 32))
	_, err := DecodeSignature(b64)
	if err == nil {
		t.Error("expected error for wrong length")
	}
}

func TestSignVerifyEd25519(t *testing.T) {
	pub, priv, _ := ed25519.GenerateKey(nil)
	msg := []byte("canonical bytes")

	sig := SignEd25519(priv, msg)
	if !VerifyEd25519(pub, msg, sig) {
		t.Error("expected signature over message to verify")
	}
	if VerifyEd25519(pub, []byte("different bytes"), sig) {
		t.Error("expected verification to fail for a different message")
	}
}

func TestVerifyEd25519_ZeroSignature(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(nil)
	msg := []byte("test message")
	sig := make([]byte, ed25519.SignatureSize)

	if VerifyEd25519(pub, msg, sig) {
		t.Error("expected zero signature to fail verification")
	}
}
