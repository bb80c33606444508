package utils

import (
	"strings"
	"testing"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestEncryptDecryptRoundtrip(t *testing.T) {
	for _, plaintext := range []string{"", "short", "a longer secret with spaces and symbols !@#$%"} {
		encrypted, err := Encrypt([]byte(plaintext), testKey)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if strings.Contains(encrypted, plaintext) && plaintext != "" {
			t.Error("ciphertext leaks plaintext")
		}

		decrypted, err := Decrypt(encrypted, testKey)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("roundtrip mismatch: got %q, want %q", decrypted, plaintext)
		}
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	a, err := Encrypt([]byte("token"), testKey)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encrypt([]byte("token"), testKey)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("expected distinct ciphertexts for same plaintext")
	}
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("token"), testKey)
	if err != nil {
		t.Fatal(err)
	}

	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	if _, err := Decrypt(encrypted, otherKey); err == nil {
		t.Error("expected decryption to fail with wrong key")
	}
}

func TestDecryptRejectsBadInput(t *testing.T) {
	if _, err := Decrypt("not base64 at all!!", testKey); err == nil {
		t.Error("expected error for invalid base64")
	}
	// valid base64 but shorter than a GCM nonce
	if _, err := Decrypt("c2hvcnQ=", testKey); err == nil {
		t.Error("expected error for truncated ciphertext")
	}
}

func TestEncryptRejectsBadKeySize(t *testing.T) {
	if _, err := Encrypt([]byte("token"), []byte("tooshort")); err == nil {
		t.Error("expected error for invalid key length")
	}
}
