package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "john.doe", "user_1-x", "a1b2c3"}
	invalid := []string{"ab", "", "has space", "bad!char", "ñame"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	valid := []string{"081234567890", "+6281234567890", "0812-3456-7890", "12345678"}
	invalid := []string{"1234567", "abcdefgh", "", "+", "1234567890123456"}
	for _, m := range valid {
		if !IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Error("IsValidDate(2024-02-29) = false, want true")
	}
	for _, s := range []string{"2024-13-01", "01-01-2024", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2024-06")
	if !ok {
		t.Fatal("IsValidMonth(2024-06) = false, want true")
	}
	if month.Month() != 6 || month.Day() != 1 {
		t.Errorf("IsValidMonth(2024-06) = %v, want first of June", month)
	}
	for _, s := range []string{"2024-13", "06-2024", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "email", Message: "email is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["username"] != "username is required" {
		t.Errorf("ToMap()[username] = %q", m["username"])
	}
}
