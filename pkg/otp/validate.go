package otp

import (
	"crypto/subtle"
	"fmt"
	"time"
)

// ValidateHOTP reports whether code is the HOTP code at lastCounter+1,
// the single next counter position. No wider resynchronization window is
// attempted; callers needing look-ahead compose retries with advanced
// counters externally.
func ValidateHOTP(code string, key []byte, lastCounter uint64, alg Algorithm, digits int) (bool, error) {
	want, err := HOTPCode(key, lastCounter+1, alg, digits)
	if err != nil {
		return false, err
	}
	return codesEqual(code, want), nil
}

// ValidateTOTP reports whether code matches any time step within
// tolerance steps of the step containing the instant at. Steps are
// scanned outward from the current one (0, -1, +1, -2, +2, ...), so the
// exact step wins and ties break toward the earlier step. A tolerance of
// 0 accepts only the current step; negative tolerance fails with
// ErrInvalidArgument.
func ValidateTOTP(code string, key []byte, period uint, alg Algorithm, digits int, at time.Time, tolerance int) (bool, error) {
	if tolerance < 0 {
		return false, fmt.Errorf("%w: tolerance must not be negative, got %d", ErrInvalidArgument, tolerance)
	}
	if period == 0 {
		return false, fmt.Errorf("%w: period must be positive", ErrInvalidArgument)
	}

	step := int64(timeStep(at, period))
	match, err := matchStep(code, key, step, alg, digits)
	if err != nil || match {
		return match, err
	}
	for i := int64(1); i <= int64(tolerance); i++ {
		for _, candidate := range [2]int64{step - i, step + i} {
			match, err := matchStep(code, key, candidate, alg, digits)
			if err != nil || match {
				return match, err
			}
		}
	}
	return false, nil
}

func matchStep(code string, key []byte, step int64, alg Algorithm, digits int) (bool, error) {
	if step < 0 {
		return false, nil
	}
	want, err := HOTPCode(key, uint64(step), alg, digits)
	if err != nil {
		return false, err
	}
	return codesEqual(code, want), nil
}

// Validate reports whether code is acceptable for the secret at the
// current time. HOTP secrets accept only the code at the next counter
// position (tolerance is ignored); TOTP secrets apply tolerance as a
// drift window. Validation never mutates the secret.
func (s Secret) Validate(code string, tolerance int) (bool, error) {
	return s.ValidateAt(code, tolerance, time.Now())
}

// ValidateAt is Validate evaluated at an explicit instant. The instant
// only affects TOTP secrets.
func (s Secret) ValidateAt(code string, tolerance int, at time.Time) (bool, error) {
	switch s.typ {
	case TypeHOTP:
		return ValidateHOTP(code, s.key, s.counter, s.algorithm, s.digits)
	case TypeTOTP:
		return ValidateTOTP(code, s.key, s.period, s.algorithm, s.digits, at, tolerance)
	default:
		return false, fmt.Errorf("%w: cannot validate against a zero-value secret", ErrIncompleteSecret)
	}
}

// codesEqual compares codes in constant time.
func codesEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
