package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Algorithm represents the HMAC hash algorithm used for code generation.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 (the RFC 4226 default, widely supported).
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// hasher returns the digest constructor for the algorithm. Only the HMAC
// digest function changes between algorithms; truncation is identical.
func (a Algorithm) hasher() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA1:
		return sha1.New, nil
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512, got %q", ErrInvalidArgument, string(a))
	}
}
