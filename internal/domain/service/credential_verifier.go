package service

import "context"

// CredentialVerifier checks an email/password pair against the external
// authentication service and returns the account's unique identifier.
type CredentialVerifier interface {
	// VerifyPassword returns the account uid on success. Callers must not
	// distinguish failure causes to the end user.
	VerifyPassword(ctx context.Context, email, password string) (uid string, err error)
}
