package friend

import (
	"regexp"

	"roamly/models"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,19}$`)
)

// ClassifyContact decides whether a contact string is an email address or a
// phone number. It returns the contact kind and whether the string matched
// either form.
func ClassifyContact(contact string) (string, bool) {
	switch {
	case emailRe.MatchString(contact):
		return models.ContactKindEmail, true
	case phoneRe.MatchString(contact):
		return models.ContactKindPhone, true
	default:
		return "", false
	}
}
