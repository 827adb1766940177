// Package recovery generates single-use MFA recovery codes, the
// fallback credential issued alongside an OTP enrollment for when the
// user loses their authenticator device. Hashing, storage, and marking
// codes as spent are the caller's concern.
package recovery

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// alphabet is the character set codes are drawn from: digits plus upper-
// and lowercase letters, 62 symbols in total.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	// DefaultCount is the number of codes issued per enrollment.
	DefaultCount = 10

	// groupLen and groupCount fix the XXXX-XXXX-XXXX presentation.
	groupLen   = 4
	groupCount = 3
)

// ErrInvalidCount indicates a non-positive number of codes was requested.
var ErrInvalidCount = errors.New("recovery: count must be positive")

// Generate produces count unique recovery codes in the form
// XXXX-XXXX-XXXX, each symbol drawn uniformly from the code alphabet
// using the platform's secure random source.
func Generate(count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	out := make([]string, 0, count)
	seen := make(map[string]struct{}, count)

	for len(out) < count {
		code, err := generateCode()
		if err != nil {
			return nil, err
		}

		// extremely unlikely, but prevents accidental duplicates
		if _, ok := seen[code]; ok {
			continue
		}

		seen[code] = struct{}{}
		out = append(out, code)
	}

	return out, nil
}

func generateCode() (string, error) {
	groups := make([]string, 0, groupCount)
	for i := 0; i < groupCount; i++ {
		group, err := randomString(groupLen)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return strings.Join(groups, "-"), nil
}

func randomString(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)

	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("recovery: failed to read secure random source: %w", err)
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}

	return sb.String(), nil
}
