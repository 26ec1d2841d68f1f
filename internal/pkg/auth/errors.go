package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken is the umbrella error for any token that must be
	// rejected. The specific kinds below wrap it, so the transport boundary
	// collapses them with a single errors.Is check while tests and logs keep
	// the distinction.
	ErrInvalidToken = errors.New("invalid auth token")

	// ErrMalformedToken marks a token that cannot be parsed into the
	// expected structure at all.
	ErrMalformedToken = fmt.Errorf("%w: malformed", ErrInvalidToken)
	// ErrInvalidSignature marks a token whose signature does not verify.
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	// ErrExpiredToken marks a well-formed, correctly signed token past its TTL.
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)
)

var (
	// ErrEmptyPassword rejects hashing of empty input.
	ErrEmptyPassword = errors.New("empty password")
	// ErrCorruptHash signals a stored hash that is not in bcrypt format.
	ErrCorruptHash = errors.New("corrupt password hash")
	// ErrPasswordMismatch signals a well-formed hash that does not match the
	// presented password.
	ErrPasswordMismatch = errors.New("password mismatch")
)
