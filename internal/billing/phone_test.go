package billing

import "testing"

func TestValidatePhone_Valid(t *testing.T) {
	valid := []string{
		"+14155552671",
		"14155552671",
		"+919876543210",
		"+12",
	}

	for _, phone := range valid {
		if err := ValidatePhone(phone); err != nil {
			t.Errorf("expected %q to be valid, got %v", phone, err)
		}
	}
}

func TestValidatePhone_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"0012345",          // leading zero
		"abc123",           // letters
		"+0123456789",      // leading zero after +
		"+1",               // too short
		"+1234567890123456", // too long
		"+1 415 555 2671",  // spaces
	}

	for _, phone := range invalid {
		if err := ValidatePhone(phone); err == nil {
			t.Errorf("expected %q to be rejected", phone)
		}
	}
}
