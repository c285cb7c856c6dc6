package locale

import (
	"strings"
	"testing"
)

func TestValidateCode(t *testing.T) {
	t.Parallel()

	valid := []string{"en", "fr", "pt", "en_US", "pt_BR", "zh_TW"}
	for _, code := range valid {
		if err := ValidateCode(code); err != nil {
			t.Errorf("ValidateCode(%q) = %v, want nil", code, err)
		}
		if !IsValid(code) {
			t.Errorf("IsValid(%q) = false, want true", code)
		}
	}

	invalid := []string{"", "e", "eng", "EN", "en-US", "en_us", "en_USA", "en US", "42", "en_"}
	for _, code := range invalid {
		err := ValidateCode(code)
		if err == nil {
			t.Errorf("ValidateCode(%q) = nil, want error", code)
			continue
		}
		if !strings.Contains(err.Error(), "en_US") {
			t.Errorf("ValidateCode(%q) error %q does not name the accepted forms", code, err)
		}
		if IsValid(code) {
			t.Errorf("IsValid(%q) = true, want false", code)
		}
	}
}

func TestValidateCodeNamesOffendingValue(t *testing.T) {
	t.Parallel()

	err := ValidateCode("english")
	if err == nil {
		t.Fatal("expected error for 'english'")
	}
	if !strings.Contains(err.Error(), `"english"`) {
		t.Fatalf("error %q does not include the offending value", err)
	}
}

func TestValidateShapes(t *testing.T) {
	t.Parallel()

	if err := Validate("en"); err != nil {
		t.Fatalf("Validate(string) = %v, want nil", err)
	}
	if err := Validate("nope!"); err == nil {
		t.Fatal("Validate(invalid string) = nil, want error")
	}

	if err := Validate(map[string]any{"en": "English", "fr": "Français"}); err != nil {
		t.Fatalf("Validate(map) = %v, want nil", err)
	}
	if err := Validate(map[string]any{"en": "English", "english": "nope"}); err == nil {
		t.Fatal("Validate(map with bad key) = nil, want error")
	}
	if err := Validate(map[string]string{"pt_BR": "Português"}); err != nil {
		t.Fatalf("Validate(string map) = %v, want nil", err)
	}

	// Other shapes are delegated to a later coercion step untouched.
	if err := Validate(42); err != nil {
		t.Fatalf("Validate(int) = %v, want nil", err)
	}
	if err := Validate([]string{"not", "checked"}); err != nil {
		t.Fatalf("Validate(slice) = %v, want nil", err)
	}
}

func TestValidateCodes(t *testing.T) {
	t.Parallel()

	if err := ValidateCodes([]string{"en", "fr", "pt_BR"}); err != nil {
		t.Fatalf("ValidateCodes = %v, want nil", err)
	}
	if err := ValidateCodes([]string{"en", "FR"}); err == nil {
		t.Fatal("ValidateCodes with invalid entry = nil, want error")
	}
}
