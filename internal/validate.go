package internal

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field formats mirror the registration form contract. Go's RE2 engine has
// no lookahead, so the "contains at least one X" conditions are explicit
// checks layered over a charset+length pattern; accept/reject behavior is
// identical to the lookahead originals.
var (
	idCharsetPattern       = regexp.MustCompile(`^[a-zA-Z0-9]{5,20}$`)
	emailPattern           = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[a-zA-Z]{2,}$`)
	passwordCharsetPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]{8,16}$`)
)

const passwordSpecials = "!@#$%^&*"

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidMemberID reports whether id is 5-20 alphanumeric characters
// containing at least one letter and one digit.
func ValidMemberID(id string) bool {
	if !idCharsetPattern.MatchString(id) {
		return false
	}
	return strings.ContainsFunc(id, isASCIILetter) && strings.ContainsAny(id, "0123456789")
}

// ValidEmail reports whether email has the expected addr@domain.tld shape.
// The pattern is deliberately permissive beyond the TLD check; it is not a
// full RFC 5322 validator.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword reports whether password is 8-16 characters drawn from
// letters, digits, and !@#$%^&*, with at least one lowercase letter, one
// uppercase letter, one digit, and one special character.
func ValidPassword(password string) bool {
	if !passwordCharsetPattern.MatchString(password) {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// ValidNameLength reports whether name is at most max characters (runes).
func ValidNameLength(name string, max int) bool {
	return utf8.RuneCountInString(name) <= max
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
