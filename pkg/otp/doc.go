// Package otp implements TOTP (RFC 6238) and HOTP (RFC 4226) one-time
// password generation and validation: secret key generation, HMAC code
// computation with dynamic truncation, counter/time-window validation
// with configurable drift tolerance, and the otpauth:// enrollment URI
// format consumed by authenticator apps.
//
// The package is stateless. Secrets are immutable values; generating a
// counter-based token returns a new Secret with the counter advanced,
// and the caller persists it. QR rendering and secret storage are the
// caller's concern.
//
// # Enrollment
//
// Create a secret and hand its enrollment URL to an authenticator app:
//
//	secret, err := otp.NewTOTP("user@example.com", otp.Opts{Issuer: "MyApp"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	uri, err := otp.EnrollmentURL(secret)
//	// Render uri as a QR code for the user to scan, then store
//	// secret.EncodedKey() (and the other parameters) server-side.
//
// # TOTP Validation
//
// Validate a user-submitted code with one step of clock-skew tolerance:
//
//	ok, err := secret.Validate("123456", 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !ok {
//	    // reject
//	}
//
// # HOTP Generation and Counter Discipline
//
// Counter-based secrets advance by returning a new value:
//
//	secret, err := otp.NewHOTP("user@example.com", otp.Opts{Issuer: "MyApp"})
//	token, err := secret.Generate()
//	// token.Value is the code; token.Secret carries the advanced
//	// counter. Persist token.Secret before generating again, or the
//	// same code will be issued twice.
//
// Validation never advances the counter. After a code validates, the
// caller must persist the advanced state itself; until it does, the same
// code validates again. When concurrent requests race to advance the
// same secret, at-most-one must win, which is a property of the caller's
// storage (compare-and-swap or a transaction), not of this package.
//
// # Importing Stored Secrets
//
// Secrets recalled from storage are reconstructed from their base32 text:
//
//	secret, err := otp.ImportTOTP("user@example.com", storedKey, otp.Opts{
//	    Issuer: "MyApp",
//	})
//
// # Authenticator
//
// The Authenticator type wraps the same engine behind a single validated
// configuration, for callers that want one value per enrolled credential:
//
//	auth, err := otp.NewAuthenticator(otp.Config{
//	    Type:        otp.TypeTOTP,
//	    Secret:      "JBSWY3DPEHPK3PXP",
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	    Skew:        1,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = auth.Authenticate(ctx, "123456")
//
// # Hash Algorithms
//
// SHA1 (the default), SHA256, and SHA512 are supported; only the HMAC
// digest function differs. Note that not all authenticator apps support
// SHA256 and SHA512.
//
// # Thread Safety
//
// All operations are pure, synchronous, in-memory computations (one HMAC
// evaluation per candidate code). Concurrent use with distinct Secret
// values needs no synchronization; only GenerateKey touches a shared
// resource (the process random source), which is itself safe for
// concurrent use.
package otp
