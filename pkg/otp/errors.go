package otp

import "errors"

var (
	// ErrInvalidSecretLength indicates a requested secret size below the
	// RFC 4226 interoperability minimum of 128 bits.
	ErrInvalidSecretLength = errors.New("otp: secret length too small")

	// ErrMalformedSecret indicates a textual secret that is not valid base32.
	ErrMalformedSecret = errors.New("otp: malformed base32 secret")

	// ErrIncompleteSecret indicates a secret missing mandatory state for the
	// requested operation (typically a zero-value Secret).
	ErrIncompleteSecret = errors.New("otp: incomplete secret state")

	// ErrInvalidArgument indicates an out-of-domain input such as a negative
	// tolerance or an unsupported digit count.
	ErrInvalidArgument = errors.New("otp: invalid argument")

	// ErrInvalidCode indicates the provided OTP code is invalid.
	ErrInvalidCode = errors.New("otp: invalid code")

	// ErrInvalidConfig indicates the authenticator configuration is invalid.
	ErrInvalidConfig = errors.New("otp: invalid configuration")

	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("otp: authenticator is nil")
)
