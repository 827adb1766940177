package otp

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Config holds OTP authenticator configuration.
type Config struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Digits specifies the number of digits in the OTP code (6 or 8).
	// Default: 6
	Digits int
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period uint
	// Counter specifies the current counter value for HOTP.
	// Default: 0
	Counter uint64
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
	// Skew specifies the number of time steps to check before and after
	// the current one for TOTP validation (tolerance for clock skew).
	// Default: 1
	Skew int
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}
	if _, err := DecodeKey(c.Secret); err != nil {
		return fmt.Errorf("%w: secret must be valid base32: %v", ErrInvalidConfig, err)
	}

	if c.Digits != 0 && c.Digits != 6 && c.Digits != 8 {
		return fmt.Errorf("%w: digits must be 6 or 8", ErrInvalidConfig)
	}

	if c.Algorithm != "" {
		if _, err := c.Algorithm.hasher(); err != nil {
			return fmt.Errorf("%w: algorithm must be SHA1, SHA256, or SHA512", ErrInvalidConfig)
		}
	}

	if c.Skew < 0 {
		return fmt.Errorf("%w: skew must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Authenticator validates OTP codes against a single configured secret.
// It is safe for concurrent use; every operation is one in-memory HMAC
// evaluation per candidate step with no shared mutable state.
type Authenticator struct {
	cfg Config
	key []byte
}

// NewAuthenticator creates a new OTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = DefaultDigits
	}
	if cfg.Period == 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = DefaultAlgorithm
	}
	if cfg.Skew == 0 {
		cfg.Skew = 1
	}

	key, err := DecodeKey(cfg.Secret)
	if err != nil {
		return nil, err
	}

	return &Authenticator{cfg: cfg, key: key}, nil
}

// Authenticate validates an OTP code.
// For TOTP, it validates against the current time with skew tolerance.
// For HOTP, it validates against the configured counter value.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	if a.cfg.Type == TypeTOTP {
		valid, err := ValidateTOTP(code, a.key, a.cfg.Period, a.cfg.Algorithm, a.cfg.Digits, time.Now().UTC(), a.cfg.Skew)
		if err != nil {
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
		}
		if !valid {
			return ErrInvalidCode
		}
		return nil
	}

	// HOTP validation at the configured counter
	want, err := HOTPCode(a.key, a.cfg.Counter, a.cfg.Algorithm, a.cfg.Digits)
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !codesEqual(code, want) {
		return ErrInvalidCode
	}

	return nil
}

// ValidateCounter validates an HOTP code at the given counter and returns
// the new counter value. This method is only valid for HOTP
// authenticators. The returned counter should be stored and used for the
// next validation; the authenticator itself holds no counter state, so
// losing the returned value reopens the window for code reuse.
func (a *Authenticator) ValidateCounter(ctx context.Context, code string, counter uint64) (uint64, error) {
	if a == nil {
		return 0, ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if a.cfg.Type != TypeHOTP {
		return 0, fmt.Errorf("%w: ValidateCounter is only valid for HOTP", ErrInvalidConfig)
	}

	if strings.TrimSpace(code) == "" {
		return 0, fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	want, err := HOTPCode(a.key, counter, a.cfg.Algorithm, a.cfg.Digits)
	if err != nil {
		return 0, fmt.Errorf("%w: validation failed: %v", ErrInvalidCode, err)
	}
	if !codesEqual(code, want) {
		return 0, ErrInvalidCode
	}

	// Return incremented counter
	return counter + 1, nil
}

// Generate generates an OTP code.
// For TOTP, it generates the code for the current time.
// For HOTP, a counter value must be provided.
func (a *Authenticator) Generate(counter ...uint64) (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	if a.cfg.Type == TypeTOTP {
		code, err := TOTPCode(a.key, time.Now().UTC(), a.cfg.Period, a.cfg.Algorithm, a.cfg.Digits)
		if err != nil {
			return "", fmt.Errorf("otp: failed to generate TOTP code: %w", err)
		}
		return code, nil
	}

	// HOTP requires counter
	if len(counter) == 0 {
		return "", fmt.Errorf("%w: counter required for HOTP generation", ErrInvalidArgument)
	}

	code, err := HOTPCode(a.key, counter[0], a.cfg.Algorithm, a.cfg.Digits)
	if err != nil {
		return "", fmt.Errorf("otp: failed to generate HOTP code: %w", err)
	}

	return code, nil
}

// GetProvisioningURI returns the otpauth:// URI for QR code generation.
// This URI can be encoded as a QR code and scanned by authenticator apps.
func (a *Authenticator) GetProvisioningURI() string {
	if a == nil {
		return ""
	}

	s, err := a.secret()
	if err != nil {
		return ""
	}
	uri, err := EnrollmentURL(s)
	if err != nil {
		return ""
	}
	return uri
}

// secret materializes the configured credential as a Secret value.
func (a *Authenticator) secret() (Secret, error) {
	opts := Opts{
		Issuer:         a.cfg.Issuer,
		Key:            a.key,
		Algorithm:      a.cfg.Algorithm,
		Digits:         a.cfg.Digits,
		Period:         a.cfg.Period,
		InitialCounter: a.cfg.Counter,
	}
	if a.cfg.Type == TypeHOTP {
		return NewHOTP(a.cfg.AccountName, opts)
	}
	return NewTOTP(a.cfg.AccountName, opts)
}
