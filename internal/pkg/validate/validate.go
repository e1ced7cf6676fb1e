// Package validate holds the client-side form validators. They are pure and
// synchronous; failures never reach the network.
package validate

import "regexp"

var (
	// 11 digits starting with 0, e.g. 09012345678.
	phoneRe = regexp.MustCompile(`^0\d{10}$`)
	// local@domain.tld with non-space parts and a dot in the domain.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func Phone(phone string) bool {
	return phoneRe.MatchString(phone)
}

func Email(email string) bool {
	return emailRe.MatchString(email)
}
