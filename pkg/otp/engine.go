package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"time"
)

// maxDigits is the longest code expressible from the 31-bit truncated
// HMAC value without losing uniformity at the high end.
const maxDigits = 10

// HOTPCode computes the RFC 4226 HMAC-based one-time password for the
// given key and counter. The counter is encoded as an 8-byte big-endian
// message, HMAC'd with the selected hash, dynamically truncated to a
// 31-bit value, and reduced mod 10^digits. The result is left-zero-padded
// to exactly digits characters.
//
// The function is pure: identical inputs always yield the identical code.
func HOTPCode(key []byte, counter uint64, alg Algorithm, digits int) (string, error) {
	newHash, err := alg.hasher()
	if err != nil {
		return "", err
	}
	if digits < 1 || digits > maxDigits {
		return "", fmt.Errorf("%w: digits must be between 1 and %d, got %d", ErrInvalidArgument, maxDigits, digits)
	}

	msg := make([]byte, 8)
	binary.BigEndian.PutUint64(msg, counter)

	mac := hmac.New(newHash, key)
	mac.Write(msg)
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 section 5.3): the low nibble of the
	// last byte selects a 4-byte window; the top bit is masked to avoid
	// signed/unsigned ambiguity.
	offset := sum[len(sum)-1] & 0x0f
	truncated := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%0*d", digits, uint64(truncated)%pow10(digits)), nil
}

// TOTPCode computes the RFC 6238 time-based one-time password: the HOTP
// code at counter floor(unix/period).
func TOTPCode(key []byte, t time.Time, period uint, alg Algorithm, digits int) (string, error) {
	if period == 0 {
		return "", fmt.Errorf("%w: period must be positive", ErrInvalidArgument)
	}
	return HOTPCode(key, timeStep(t, period), alg, digits)
}

// timeStep discretizes a wall-clock instant into a TOTP step counter.
func timeStep(t time.Time, period uint) uint64 {
	return uint64(t.Unix()) / uint64(period)
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
