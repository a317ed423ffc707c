package contacts

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"bob@x.com",
		"first.last@example.co.uk",
		"user+tag@sub.domain.org",
		"x_%-@host.io",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}

	invalid := []string{
		"",
		"bad-email",
		"missing@tld",
		"@nodomain.com",
		"two@@at.com",
		"name@domain.c",
		"name@domain.123",
		"spaced name@domain.com",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidateTime(t *testing.T) {
	for _, tc := range []struct {
		value string
		ok    bool
	}{
		{"0800", true},
		{"0000", true},
		{"2359", true},
		{"9999", true}, // lax on purpose: shape only, not a real clock time
		{"800", false},
		{"08000", false},
		{"08a0", false},
		{"", false},
	} {
		err := ValidateTime(tc.value)
		if tc.ok && err != nil {
			t.Errorf("ValidateTime(%q) error = %v, want nil", tc.value, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ValidateTime(%q) = nil, want error", tc.value)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Alice"); err != nil {
		t.Fatalf("ValidateName(Alice) error = %v", err)
	}
	err := ValidateName("")
	if err == nil {
		t.Fatalf("ValidateName(\"\") = nil, want error")
	}
	fieldErr, ok := err.(*FieldError)
	if !ok {
		t.Fatalf("ValidateName(\"\") error type = %T, want *FieldError", err)
	}
	if fieldErr.Field != "name" {
		t.Fatalf("field = %q, want name", fieldErr.Field)
	}
}
