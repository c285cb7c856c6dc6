// Package locale validates locale code syntax. This is the only place the
// code pattern is enforced; every other package trusts codes that already
// passed configuration validation.
package locale

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

// codePattern accepts ISO-639-1 lower case codes, optionally qualified with
// an upper case territory code ("en" or "en_US").
var codePattern = regexp.MustCompile(`^[a-z]{2}(_[A-Z]{2})?$`)

const invalidCodeTextCode = "I18N_LOCALE_INVALID"

// IsValid reports whether code is a syntactically well-formed locale code.
func IsValid(code string) bool {
	return codePattern.MatchString(code)
}

// ValidateCode checks a single locale code and returns a fatal configuration
// error naming the offending value and the accepted forms.
func ValidateCode(code string) error {
	if IsValid(code) {
		return nil
	}

	inner := validation.NewError(
		"i18n.locale_code_invalid",
		fmt.Sprintf(
			"language code values must be either ISO-639-1 lower case or "+
				"qualified with an upper case territory code, received %q, "+
				"expected forms examples: 'en' or 'en_US'",
			code,
		),
	)
	return goerrors.Wrap(inner, goerrors.CategoryValidation, "invalid locale code").
		WithTextCode(invalidCodeTextCode)
}

// Validate applies ValidateCode to a string value, or to every key of a
// string-keyed mapping. Any other input shape passes through untouched so a
// more general coercion step can deal with it.
func Validate(value any) error {
	switch v := value.(type) {
	case string:
		return ValidateCode(v)
	case map[string]any:
		for key := range v {
			if err := ValidateCode(key); err != nil {
				return err
			}
		}
	case map[string]string:
		for key := range v {
			if err := ValidateCode(key); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateCodes checks every code in the slice, failing on the first invalid
// entry.
func ValidateCodes(codes []string) error {
	for _, code := range codes {
		if err := ValidateCode(code); err != nil {
			return err
		}
	}
	return nil
}
