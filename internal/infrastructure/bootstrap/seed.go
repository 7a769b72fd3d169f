// Package bootstrap seeds the initial admin account so a fresh deployment
// can log in without an out-of-band provisioning step.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplekit/employee-system/internal/core/domain"
	"github.com/peoplekit/employee-system/internal/core/ports"
)

// SeedAdmin creates the admin account when it does not exist yet. Idempotent:
// the existence check plus the unique username index make a concurrent double
// seed converge on a single account.
func SeedAdmin(ctx context.Context, accounts ports.AccountRepository, username, password string, log zerolog.Logger) error {
	exists, err := accounts.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	_, err = accounts.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info().Str("username", username).Msg("seeded admin account")
	return nil
}
