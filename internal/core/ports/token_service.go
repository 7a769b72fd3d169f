package ports

import "time"

// TokenService issues and verifies self-contained, stateless proof of
// identity. Tokens carry the subject, issued-at and expires-at claims and
// are signed with a symmetric key held only by the service.
type TokenService interface {
	// Issue returns an opaque signed token for the given identity,
	// expiring at issuedAt plus the configured TTL.
	Issue(identity, role string, issuedAt time.Time) (string, error)
	// Validate fails closed with domain.ErrTokenInvalid on malformed
	// encoding, signature mismatch, expiry, or a subject that does not
	// match expectedIdentity.
	Validate(token, expectedIdentity string) error
	// ExtractIdentity verifies the token and returns its subject. Used by
	// middleware to resolve who is calling without a pre-known identity.
	ExtractIdentity(token string) (string, error)
	// ExtractRole returns the carried role claim, or empty when absent.
	ExtractRole(token string) (string, error)
}
