package users

import (
	"regexp"
	"strings"
	"unicode"
)

// specialChars is the fixed set a password must draw at least one character from.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// emailPattern is anchored at the start of the string only: input with
// trailing garbage after a valid prefix still validates (so "a@b.com<x>"
// passes). Existing accounts were admitted under this rule, so it is kept
// as-is rather than tightened.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// IsValidPassword reports whether password contains at least one decimal digit
// and at least one character from specialChars. There are no length or
// letter-case requirements. The empty string is invalid.
func IsValidPassword(password string) bool {
	return strings.ContainsFunc(password, unicode.IsDigit) &&
		strings.ContainsAny(password, specialChars)
}

// IsValidEmail reports whether email starts with something shaped like an
// address: local part, '@', domain, '.', and a 2+ letter TLD. The empty
// string is invalid. See emailPattern for the anchoring caveat.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
