package registration

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPart matches a run of characters that are neither "@" nor whitespace,
// where whitespace is the browser set: ASCII spaces, vertical tab, Unicode
// separators and the byte order mark.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

var (
	emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)
	panPattern   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

const (
	firstNameMinLength = 2
	usernameMinLength  = 4
	passwordMinLength  = 6
	phoneDigits        = 10
	aadhaarDigits      = 12
)

// Validate checks a single field value and returns a user-facing message, or
// "" when the value is acceptable. Unknown field names are always valid.
func Validate(name, value string) string {
	switch name {
	case FieldFirstName:
		trimmed := trimSpace(value)
		if trimmed == "" {
			return "First name is required"
		}
		if textLength(trimmed) < firstNameMinLength {
			return "First name must be at least 2 characters"
		}
	case FieldLastName:
		if isBlank(value) {
			return "Last name is required"
		}
	case FieldUsername:
		trimmed := trimSpace(value)
		if trimmed == "" {
			return "Username is required"
		}
		if textLength(trimmed) < usernameMinLength {
			return "Username must be at least 4 characters"
		}
	case FieldEmail:
		if isBlank(value) {
			return "Email is required"
		}
		// the pattern sees the raw value, so surrounding spaces fail it
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email"
		}
	case FieldPassword:
		if isBlank(value) {
			return "Password is required"
		}
		if textLength(value) < passwordMinLength {
			return "Password must be at least 6 characters"
		}
	case FieldPhoneCountryCode:
		if isBlank(value) {
			return "Country code is required"
		}
	case FieldPhone:
		digits := Digits(value)
		if digits == "" {
			return "Phone number is required"
		}
		if len(digits) != phoneDigits {
			return "Phone must be 10 digits"
		}
	case FieldCountry:
		if isBlank(value) {
			return "Country is required"
		}
	case FieldCity:
		if isBlank(value) {
			return "City is required"
		}
	case FieldPAN:
		upper := strings.ToUpper(value)
		if isBlank(upper) {
			return "PAN is required"
		}
		if !panPattern.MatchString(upper) {
			return "Enter valid PAN (e.g., ABCDE1234F)"
		}
	case FieldAadhaar:
		digits := Digits(value)
		if digits == "" {
			return "Aadhaar is required"
		}
		if len(digits) != aadhaarDigits {
			return "Aadhaar must be exactly 12 digits"
		}
	}
	return ""
}

// ValidateAll runs Validate over every field in data and returns only the
// fields that produced a message.
func ValidateAll(data FormData) ErrorMap {
	errs := make(ErrorMap)
	for _, name := range data.keys {
		if msg := Validate(name, data.values[name]); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}

// Digits strips every character that is not an ASCII digit.
func Digits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if c := value[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizeInput applies the input-time transform for a field. PAN values are
// upper-cased before they are stored or validated.
func NormalizeInput(name, value string) string {
	if name == FieldPAN {
		return strings.ToUpper(value)
	}
	return value
}

func isBlank(value string) bool {
	return trimSpace(value) == ""
}

// trimSpace trims the same whitespace a browser trims from form input.
func trimSpace(value string) string {
	return strings.TrimFunc(value, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Z, r)
}

// textLength counts UTF-16 code units, the length a browser reports for a
// form value.
func textLength(value string) int {
	n := 0
	for _, r := range value {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
