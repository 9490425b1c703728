package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"(785) 555-0123",
		"785-555-0123",
		"785.555.0123",
		"+1 785 555 0123",
		"5550123",
	}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("ValidatePhone(%q) = false, want true", p)
		}
	}
	invalid := []string{
		"abc",
		"",
		"555-01",     // too short
		"785555012a", // letters
		"call me maybe",
	}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("ValidatePhone(%q) = true, want false", p)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if ValidateEmail("foo") {
		t.Fatal(`"foo" should be rejected`)
	}
	if !ValidateEmail("foo@bar.com") {
		t.Fatal(`"foo@bar.com" should be accepted`)
	}
	for _, e := range []string{"foo@bar", "foo @bar.com", "@bar.com", "foo@.com"} {
		if ValidateEmail(e) {
			t.Fatalf("ValidateEmail(%q) = true, want false", e)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2026-05-14") {
		t.Fatal("ISO date rejected")
	}
	for _, d := range []string{"05/14/2026", "2026-13-01", "tomorrow", ""} {
		if ValidateDate(d) {
			t.Fatalf("ValidateDate(%q) = true", d)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("  \t") || IsBlank(" x ") {
		t.Fatal("IsBlank mismatch")
	}
}
