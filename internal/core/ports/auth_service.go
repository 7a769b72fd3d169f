package ports

import "context"

// AuthService maps a username/password pair to a signed bearer token.
type AuthService interface {
	// Login returns a token whose subject is the username. Unknown
	// usernames and wrong passwords both fail with
	// domain.ErrInvalidCredentials and are indistinguishable from the
	// returned error alone.
	Login(ctx context.Context, username, password string) (string, error)
}
