package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peoplekit/employee-system/internal/core/domain"
)

const claimRole = "role"

// TokenService issues and verifies HS256-signed JWTs carrying a subject,
// issued-at and expires-at. Statelessness means the TTL is the only bound on
// a leaked token's lifetime, so it is injected rather than hard-coded.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// TTL reports the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue returns a compact signed token for identity, expiring at
// issuedAt + TTL. The role claim is carried for downstream consumers but
// never enforced here.
func (s *TokenService) Issue(identity, role string, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":     identity,
		"iat":     jwt.NewNumericDate(issuedAt),
		"exp":     jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		claimRole: role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate fails closed: malformed encoding, a bad signature, an expired
// token, or a subject other than expectedIdentity all yield
// domain.ErrTokenInvalid.
func (s *TokenService) Validate(token, expectedIdentity string) error {
	subject, err := s.ExtractIdentity(token)
	if err != nil {
		return err
	}
	if subject != expectedIdentity {
		return domain.ErrTokenInvalid
	}
	return nil
}

// ExtractIdentity verifies the token and returns its subject.
func (s *TokenService) ExtractIdentity(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return subject, nil
}

// ExtractRole returns the carried role claim, or empty when absent.
func (s *TokenService) ExtractRole(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	role, _ := claims[claimRole].(string)
	return role, nil
}

func (s *TokenService) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	// A token without an expiry would never age out; reject it outright.
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
