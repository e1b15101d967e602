package pain001

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// The Swiss Payment Standards allow a Latin character set that is wider than
// the SWIFT set; identifiers stay restricted to the SWIFT set.
var (
	swissInvalid = regexp.MustCompile(`[^A-Za-z0-9 .,:'/()?+\-!"#%&*;<>÷=@_$£\[\]{}` + "`" + `´~àáâäçèéêëìíîïñòóôöùúûüýßÀÁÂÄÇÈÉÊËÌÍÎÏÒÓÔÖÙÚÛÜÑ€ȘșȚț]+`)
	swiftInvalid = regexp.MustCompile(`[^A-Za-z0-9 .,:'/()?+\-]+`)
	whitespace   = regexp.MustCompile(`\s+`)
	countryCode  = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Sanitize replaces runs of characters outside the Swiss character set with a
// space, collapses whitespace and trims the result to maxLength code points.
// It never fails; the result may be empty. Replacing before collapsing keeps
// the function idempotent.
func Sanitize(input string, maxLength int) string {
	input = swissInvalid.ReplaceAllString(input, " ")
	input = strings.TrimSpace(whitespace.ReplaceAllString(input, " "))
	runes := []rune(input)
	if len(runes) > maxLength {
		runes = runes[:maxLength]
	}
	return string(runes)
}

// SanitizeOptional behaves like Sanitize but reports whether anything is
// left after sanitizing.
func SanitizeOptional(input string, maxLength int) (string, bool) {
	sanitized := Sanitize(input, maxLength)
	return sanitized, sanitized != ""
}

// Assert validates input against the Swiss character set and the length
// limit. Unlike Sanitize it never mutates: the input is returned unchanged or
// a ValidationError is raised.
func Assert(input string, maxLength int) (string, error) {
	return assertNotPattern(input, maxLength, swissInvalid)
}

// AssertOptional validates input like Assert but accepts the empty string,
// which stands for an absent value.
func AssertOptional(input string, maxLength int) (string, error) {
	if input == "" {
		return "", nil
	}
	return Assert(input, maxLength)
}

// AssertIdentifier validates a reference or identifier against the stricter
// SWIFT character set with a maximum of 35 characters. Identifiers must not
// start with a slash or contain two consecutive slashes.
func AssertIdentifier(input string) (string, error) {
	input, err := assertNotPattern(input, 35, swiftInvalid)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(input, "/") || strings.Contains(input, "//") {
		return "", NewValidationError("identifier", "contains unallowed slashes")
	}
	return input, nil
}

// AssertCountryCode validates a two-letter uppercase ISO country code.
func AssertCountryCode(input string) (string, error) {
	if !countryCode.MatchString(input) {
		return "", NewValidationError("country code", "must be two uppercase letters")
	}
	return input, nil
}

func assertNotPattern(input string, maxLength int, pattern *regexp.Regexp) (string, error) {
	length := utf8.RuneCountInString(input)
	if length == 0 || length > maxLength {
		return "", NewValidationError("text", "must not be empty or longer than %d characters", maxLength)
	}
	if pattern.MatchString(input) {
		return "", NewValidationError("text", "contains invalid characters")
	}
	return input, nil
}
