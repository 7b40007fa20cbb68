package plan

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/schemer/pkg/errors"
)

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ValidateName checks that name can be used as a change name. Names must not
// begin or end with punctuation, contain whitespace or any of ":@#\", or be
// made only of digits.
func ValidateName(name string) error {
	invalid := func(reason string) error {
		return errors.Newf(errors.ErrInvalidInput, "%q is invalid: %s", name, reason).
			WithDetail("name", name)
	}

	if name == "" {
		return invalid("change name is empty")
	}

	runes := []rune(name)
	if isPunct(runes[0]) || isPunct(runes[len(runes)-1]) {
		return invalid("change names must not begin or end with punctuation")
	}

	allDigits := true
	for _, r := range runes {
		if unicode.IsSpace(r) {
			return invalid("change names must not contain whitespace")
		}
		if strings.ContainsRune(`:@#\`, r) {
			return invalid(`change names must not contain ":", "@", "#" or "\"`)
		}
		if !unicode.IsDigit(r) {
			allDigits = false
		}
	}
	if allDigits {
		return invalid("change names must not be all digits")
	}

	return nil
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || strings.ContainsRune(asciiPunct, r)
}
