package services

import "errors"

var (
	// ErrEmailExists means registration hit an already-taken email.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden means the resource does not belong to the requesting
	// user, or does not exist at all. The two cases are deliberately
	// indistinguishable.
	ErrForbidden = errors.New("forbidden")
)
