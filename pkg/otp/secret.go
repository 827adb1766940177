package otp

import (
	"fmt"
	"strings"
)

// Type represents the OTP credential variant.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Defaults applied by the Secret constructors and assumed by
// authenticator apps when the enrollment URL omits the parameter.
const (
	DefaultAlgorithm = AlgorithmSHA1
	DefaultDigits    = 6
	DefaultPeriod    = 30
)

// Opts carries the optional parameters for secret construction.
// Zero values select the defaults.
type Opts struct {
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// Bits is the entropy for a freshly generated key. Must exceed 128.
	// Default: 160. Ignored when Key is set.
	Bits int
	// Key supplies existing raw key material instead of generating a
	// fresh key. Must be at least 16 bytes (128 bits).
	Key []byte
	// Algorithm selects the HMAC hash. Default: SHA1.
	Algorithm Algorithm
	// Digits is the code length, 6 or 8. Default: 6.
	Digits int
	// Period is the TOTP time step in seconds. Default: 30. TOTP only.
	Period uint
	// InitialCounter seeds the HOTP counter. Default: 0. HOTP only.
	InitialCounter uint64
}

// Secret is an immutable OTP credential: either a counter-based (HOTP)
// or time-based (TOTP) variant over a shared raw key.
//
// A Secret is never mutated in place. Generating a counter-based token
// yields a new Secret with the counter advanced; the caller must persist
// that returned Secret before the next generation to avoid code reuse.
type Secret struct {
	typ       Type
	label     string
	issuer    string
	algorithm Algorithm
	digits    int
	key       []byte
	counter   uint64
	period    uint
}

// NewTOTP constructs a time-based Secret for the given account label.
// A fresh random key is generated unless opts.Key supplies one.
func NewTOTP(label string, opts Opts) (Secret, error) {
	return newSecret(TypeTOTP, label, opts)
}

// NewHOTP constructs a counter-based Secret for the given account label.
// A fresh random key is generated unless opts.Key supplies one.
func NewHOTP(label string, opts Opts) (Secret, error) {
	return newSecret(TypeHOTP, label, opts)
}

// ImportTOTP reconstructs a time-based Secret from the base32 text form
// of its key, as recalled from caller storage or an enrollment URL.
func ImportTOTP(label, secret string, opts Opts) (Secret, error) {
	key, err := DecodeKey(secret)
	if err != nil {
		return Secret{}, err
	}
	opts.Key = key
	return newSecret(TypeTOTP, label, opts)
}

// ImportHOTP reconstructs a counter-based Secret from the base32 text
// form of its key.
func ImportHOTP(label, secret string, opts Opts) (Secret, error) {
	key, err := DecodeKey(secret)
	if err != nil {
		return Secret{}, err
	}
	opts.Key = key
	return newSecret(TypeHOTP, label, opts)
}

func newSecret(typ Type, label string, opts Opts) (Secret, error) {
	if strings.TrimSpace(label) == "" {
		return Secret{}, fmt.Errorf("%w: label must not be empty", ErrInvalidArgument)
	}

	if opts.Algorithm == "" {
		opts.Algorithm = DefaultAlgorithm
	}
	if _, err := opts.Algorithm.hasher(); err != nil {
		return Secret{}, err
	}

	if opts.Digits == 0 {
		opts.Digits = DefaultDigits
	}
	if opts.Digits != 6 && opts.Digits != 8 {
		return Secret{}, fmt.Errorf("%w: digits must be 6 or 8, got %d", ErrInvalidArgument, opts.Digits)
	}

	if typ == TypeTOTP && opts.Period == 0 {
		opts.Period = DefaultPeriod
	}

	var key []byte
	if opts.Key != nil {
		if len(opts.Key)*8 < minKeyBits {
			return Secret{}, fmt.Errorf("%w: key is %d bits, minimum is %d", ErrInvalidSecretLength, len(opts.Key)*8, minKeyBits)
		}
		key = append([]byte(nil), opts.Key...)
	} else {
		bits := opts.Bits
		if bits == 0 {
			bits = DefaultKeyBits
		}
		var err error
		if key, err = GenerateKey(bits); err != nil {
			return Secret{}, err
		}
	}

	s := Secret{
		typ:       typ,
		label:     label,
		issuer:    opts.Issuer,
		algorithm: opts.Algorithm,
		digits:    opts.Digits,
		key:       key,
	}
	switch typ {
	case TypeHOTP:
		s.counter = opts.InitialCounter
	case TypeTOTP:
		s.period = opts.Period
	}
	return s, nil
}

// Type returns the credential variant, or "" for a zero-value Secret.
func (s Secret) Type() Type { return s.typ }

// Label returns the account label the secret was enrolled under.
func (s Secret) Label() string { return s.label }

// Issuer returns the issuing organization, or "" when unset.
func (s Secret) Issuer() string { return s.issuer }

// Algorithm returns the HMAC hash algorithm.
func (s Secret) Algorithm() Algorithm { return s.algorithm }

// Digits returns the code length.
func (s Secret) Digits() int { return s.digits }

// Counter returns the last counter value consumed by generation
// (0 when no token has been issued). HOTP only; 0 for TOTP.
func (s Secret) Counter() uint64 { return s.counter }

// Period returns the time step in seconds. TOTP only; 0 for HOTP.
func (s Secret) Period() uint { return s.period }

// Key returns a copy of the raw secret key bytes.
func (s Secret) Key() []byte {
	return append([]byte(nil), s.key...)
}

// EncodedKey returns the key in its base32 text transport form.
func (s Secret) EncodedKey() string {
	return EncodeKey(s.key)
}

// withCounter returns a copy of the secret carrying the given counter.
// The key slice is shared; it is never written through.
func (s Secret) withCounter(counter uint64) Secret {
	s.counter = counter
	return s
}
