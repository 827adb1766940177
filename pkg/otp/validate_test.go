package otp

import (
	"errors"
	"testing"
	"time"
)

// TestValidateHOTPNextCounter tests that only the immediate next counter
// position is accepted, with no wider resynchronization window
func TestValidateHOTPNextCounter(t *testing.T) {
	// RFC 4226 counter 5 code.
	code, err := HOTPCode(rfc4226Key, 5, AlgorithmSHA1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "254676" {
		t.Fatalf("vector drift: expected 254676, got %s", code)
	}

	tests := []struct {
		name        string
		lastCounter uint64
		want        bool
	}{
		{"next position", 4, true},
		{"same position", 5, false},
		{"one behind", 3, false},
		{"two ahead", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := ValidateHOTP(code, rfc4226Key, tt.lastCounter, AlgorithmSHA1, 6)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Errorf("lastCounter %d: expected %v, got %v", tt.lastCounter, tt.want, ok)
			}
		})
	}
}

// TestValidateTOTPWindow tests the drift window around a generated code.
// All steps map to RFC 4226 counters with known, distinct codes.
func TestValidateTOTPWindow(t *testing.T) {
	const period = 30
	code := "287082" // step 1 of the vector key

	tests := []struct {
		name      string
		unix      int64
		tolerance int
		want      bool
	}{
		{"exact step, zero tolerance", 59, 0, true},
		{"one step later, zero tolerance", 89, 0, false},
		{"one step later, tolerance 1", 89, 1, true},
		{"one step earlier, tolerance 1", 29, 1, true},
		{"two steps later, tolerance 1", 119, 1, false},
		{"two steps later, tolerance 2", 119, 2, true},
		{"two steps earlier, tolerance 2", 0, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := ValidateTOTP(code, rfc4226Key, period, AlgorithmSHA1, 6, time.Unix(tt.unix, 0), tt.tolerance)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Errorf("expected %v, got %v", tt.want, ok)
			}
		})
	}
}

// TestValidateTOTPNegativeTolerance tests rejection of a negative window
func TestValidateTOTPNegativeTolerance(t *testing.T) {
	_, err := ValidateTOTP("287082", rfc4226Key, 30, AlgorithmSHA1, 6, time.Unix(59, 0), -1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// TestValidateTOTPZeroPeriod tests rejection of a zero period
func TestValidateTOTPZeroPeriod(t *testing.T) {
	_, err := ValidateTOTP("287082", rfc4226Key, 0, AlgorithmSHA1, 6, time.Unix(59, 0), 0)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// TestSecretValidateTOTPShortPeriod tests the one-second-period scenario:
// a code is good within its step, within the window at tolerance 1, and
// rejected beyond it
func TestSecretValidateTOTPShortPeriod(t *testing.T) {
	// With a 1-second period the step counter equals the unix second,
	// so steps 1..4 carry the RFC 4226 counter 1..4 codes.
	s, err := NewTOTP("bob@example.com", Opts{Key: rfc4226Key, Period: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	issued := time.Unix(1, 0)
	token, err := s.GenerateAt(issued)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		at        time.Time
		tolerance int
		want      bool
	}{
		{"immediately", issued, 0, true},
		{"same step, 300ms later", issued.Add(300 * time.Millisecond), 0, true},
		{"next step", issued.Add(1300 * time.Millisecond), 0, false},
		{"next step, tolerance 1", issued.Add(1 * time.Second), 1, true},
		{"two steps later, tolerance 1", issued.Add(2 * time.Second), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := s.ValidateAt(token.Value, tt.tolerance, tt.at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Errorf("expected %v, got %v", tt.want, ok)
			}
		})
	}
}

// TestValidateTOTPScanOrder tests that the exact current step is matched
// even when an adjacent step would also match, and that early steps near
// the epoch do not underflow
func TestValidateTOTPScanOrder(t *testing.T) {
	// Validating at step 0 with a wide window must not probe negative
	// steps.
	code, err := HOTPCode(rfc4226Key, 0, AlgorithmSHA1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ok, err := ValidateTOTP(code, rfc4226Key, 30, AlgorithmSHA1, 6, time.Unix(10, 0), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected the step-0 code to validate at step 0")
	}
}

// TestSecretValidateNeverMutates tests that validation leaves the secret
// unchanged for both variants
func TestSecretValidateNeverMutates(t *testing.T) {
	h, err := NewHOTP("bob@example.com", Opts{Key: rfc4226Key, InitialCounter: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := h.Validate("338314", 0); err != nil { // counter 4 code
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Counter() != 3 {
		t.Errorf("hotp secret mutated by validation: counter %d", h.Counter())
	}

	tp, err := NewTOTP("bob@example.com", Opts{Key: rfc4226Key})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tp.ValidateAt("287082", 1, time.Unix(59, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp.Period() != 30 || tp.Counter() != 0 {
		t.Error("totp secret mutated by validation")
	}
}

// TestSecretValidateHOTPIgnoresTolerance tests that the tolerance
// argument has no effect on counter-based secrets
func TestSecretValidateHOTPIgnoresTolerance(t *testing.T) {
	s, err := NewHOTP("bob@example.com", Opts{Key: rfc4226Key})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Counter 2 code is two positions ahead; no tolerance widens the
	// hotp check beyond counter+1.
	ok, err := s.Validate("359152", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected code two positions ahead to be rejected regardless of tolerance")
	}
}

// TestValidateZeroSecret tests validation against a zero-value secret
func TestValidateZeroSecret(t *testing.T) {
	var s Secret
	if _, err := s.Validate("123456", 0); !errors.Is(err, ErrIncompleteSecret) {
		t.Errorf("expected ErrIncompleteSecret, got %v", err)
	}
}
