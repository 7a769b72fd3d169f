package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplekit/employee-system/internal/core/domain"
	"github.com/peoplekit/employee-system/internal/core/ports"
)

// AuthService implements login: one credential lookup, one bcrypt compare,
// one token issuance. No retries, no side effects beyond the read.
type AuthService struct {
	accounts ports.AccountRepository
	tokens   ports.TokenService
}

func NewAuthService(accounts ports.AccountRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens}
}

// Login returns a signed token whose subject is the username. An unknown
// username and a wrong password both fail with ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrValidation
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(account.Username, account.Role, time.Now().UTC())
}
