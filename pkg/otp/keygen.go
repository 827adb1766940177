package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

const (
	// DefaultKeyBits is the entropy drawn for a fresh secret key,
	// per the RFC 4226 recommendation of 160 bits for HMAC-SHA1.
	DefaultKeyBits = 160

	// minKeyBits is the RFC 4226 interoperability floor. GenerateKey
	// rejects requests at or below it; imported keys of exactly 128 bits
	// are still accepted by the Secret constructors.
	minKeyBits = 128
)

// keyEncoding is the textual transport form for key material: RFC 4648
// base32 without padding, the form authenticator apps consume.
var keyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateKey draws bits of entropy from the platform's secure random
// source, rounded up to whole bytes. Requests of 128 bits or fewer fail
// with ErrInvalidSecretLength.
func GenerateKey(bits int) ([]byte, error) {
	if bits <= minKeyBits {
		return nil, fmt.Errorf("%w: %d bits requested, must exceed %d", ErrInvalidSecretLength, bits, minKeyBits)
	}

	key := make([]byte, (bits+7)/8)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("otp: failed to read secure random source: %w", err)
	}
	return key, nil
}

// EncodeKey encodes raw key bytes into unpadded base32 text.
func EncodeKey(key []byte) string {
	return keyEncoding.EncodeToString(key)
}

// DecodeKey decodes the textual form of a secret back into raw key bytes.
// Input is normalized first: spaces are stripped, letters upcased, and
// trailing padding removed, so both padded and grouped presentations
// (e.g. "MFYH A3DF") decode. Alphabet violations fail with
// ErrMalformedSecret. DecodeKey(EncodeKey(x)) == x for all x.
func DecodeKey(text string) ([]byte, error) {
	normalized := strings.TrimRight(strings.ToUpper(strings.ReplaceAll(text, " ", "")), "=")
	key, err := keyEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSecret, err)
	}
	return key, nil
}

// GenerateSecret generates a fresh random secret key and returns it in
// its base32 text form, suitable for Config.Secret or caller storage.
func GenerateSecret() (string, error) {
	key, err := GenerateKey(DefaultKeyBits)
	if err != nil {
		return "", err
	}
	return EncodeKey(key), nil
}
