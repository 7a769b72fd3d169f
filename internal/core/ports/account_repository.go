package ports

import (
	"context"

	"github.com/peoplekit/employee-system/internal/core/domain"
)

// AccountRepository defines persistence for login accounts, keyed by username.
type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
