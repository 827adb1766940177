package otp

import (
	"fmt"
	"net/url"
	"strconv"
)

// EnrollmentURL serializes a secret into the otpauth:// key URI consumed
// by authenticator apps:
//
//	otpauth://{totp|hotp}/{issuer:label}?secret=...&...
//
// The query always carries secret (unpadded base32) and the variant's
// mandatory field (counter for HOTP, period for TOTP). issuer appears
// only when set; algorithm and digits only when they differ from the
// defaults (SHA1, 6), since the consuming side assumes the defaults on
// omission.
//
// A Secret missing its mandatory state (a zero value smuggled across the
// public boundary) fails with ErrIncompleteSecret. Rendering the URI as
// a QR image is the caller's concern.
func EnrollmentURL(s Secret) (string, error) {
	if len(s.key) == 0 {
		return "", fmt.Errorf("%w: secret has no key material", ErrIncompleteSecret)
	}

	v := url.Values{}
	v.Set("secret", EncodeKey(s.key))
	if s.issuer != "" {
		v.Set("issuer", s.issuer)
	}
	if s.algorithm != DefaultAlgorithm {
		v.Set("algorithm", string(s.algorithm))
	}
	if s.digits != DefaultDigits {
		v.Set("digits", strconv.Itoa(s.digits))
	}

	switch s.typ {
	case TypeHOTP:
		v.Set("counter", strconv.FormatUint(s.counter, 10))
	case TypeTOTP:
		if s.period == 0 {
			return "", fmt.Errorf("%w: totp secret has no period", ErrIncompleteSecret)
		}
		v.Set("period", strconv.FormatUint(uint64(s.period), 10))
	default:
		return "", fmt.Errorf("%w: secret has no type", ErrIncompleteSecret)
	}

	label := s.label
	if s.issuer != "" {
		label = s.issuer + ":" + s.label
	}
	return fmt.Sprintf("otpauth://%s/%s?%s", s.typ, url.PathEscape(label), v.Encode()), nil
}
