package usecase

import "net/mail"

// ValidateEmail checks that the address parses as a bare RFC 5322 address.
// Display names ("Alice <a@b.c>") are rejected: the stored email must be
// exactly what the user will log in with.
func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email
}
