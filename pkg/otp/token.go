package otp

import (
	"fmt"
	"time"
)

// Token is the literal numeric code produced by one generation event,
// together with the secret state that produced it. For HOTP the embedded
// Secret is the post-increment state the caller must persist before the
// next generation; for TOTP it is the unchanged secret.
type Token struct {
	// Value is the code, left-zero-padded to the secret's digit count.
	Value string
	// Secret is the state used/produced by this generation.
	Secret Secret
	// Tolerance is the TOTP drift window, in time steps, applied when
	// the token is verified. Ignored for HOTP.
	Tolerance int
}

// Generate produces a token from the secret. For HOTP the code is
// computed at the next counter value and the returned token carries a
// new Secret with that counter recorded; for TOTP the code is computed
// at the current time step.
func (s Secret) Generate() (Token, error) {
	return s.GenerateAt(time.Now())
}

// GenerateAt is Generate evaluated at an explicit instant. The instant
// only affects TOTP secrets.
func (s Secret) GenerateAt(at time.Time) (Token, error) {
	switch s.typ {
	case TypeHOTP:
		next := s.counter + 1
		code, err := HOTPCode(s.key, next, s.algorithm, s.digits)
		if err != nil {
			return Token{}, err
		}
		return Token{Value: code, Secret: s.withCounter(next)}, nil
	case TypeTOTP:
		code, err := TOTPCode(s.key, at, s.period, s.algorithm, s.digits)
		if err != nil {
			return Token{}, err
		}
		return Token{Value: code, Secret: s}, nil
	default:
		return Token{}, fmt.Errorf("%w: cannot generate from a zero-value secret", ErrIncompleteSecret)
	}
}

// Verify reports whether the token's value matches a recomputation from
// its recorded secret state. Verification is pure: it never advances the
// counter, so a verified HOTP token verifies again until the caller
// persists a further advance. Rejecting replays is the caller's job.
func (t Token) Verify() (bool, error) {
	return t.VerifyAt(time.Now())
}

// VerifyAt is Verify evaluated at an explicit instant, applying the
// token's Tolerance for TOTP secrets.
func (t Token) VerifyAt(at time.Time) (bool, error) {
	s := t.Secret
	switch s.typ {
	case TypeHOTP:
		// The embedded secret records the counter the code was
		// computed at, so the recomputation uses it directly.
		want, err := HOTPCode(s.key, s.counter, s.algorithm, s.digits)
		if err != nil {
			return false, err
		}
		return codesEqual(t.Value, want), nil
	case TypeTOTP:
		return ValidateTOTP(t.Value, s.key, s.period, s.algorithm, s.digits, at, t.Tolerance)
	default:
		return false, fmt.Errorf("%w: cannot verify a token without secret state", ErrIncompleteSecret)
	}
}
