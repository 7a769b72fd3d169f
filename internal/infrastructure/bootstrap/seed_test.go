package bootstrap

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplekit/employee-system/internal/core/domain"
)

type memAccountRepo struct {
	accounts map[string]*domain.Account
	creates  int
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *memAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	a, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func (r *memAccountRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.accounts[username]
	return ok, nil
}

func (r *memAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.creates++
	r.accounts[account.Username] = account
	return account, nil
}

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	repo := newMemAccountRepo()

	if err := SeedAdmin(context.Background(), repo, "admin", "password123", zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	account, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("seeded account missing: %v", err)
	}
	if account.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, account.Role)
	}
	if account.PasswordHash == "password123" {
		t.Fatalf("password stored unhashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("password123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	repo := newMemAccountRepo()

	for i := 0; i < 3; i++ {
		if err := SeedAdmin(context.Background(), repo, "admin", "password123", zerolog.Nop()); err != nil {
			t.Fatalf("seed run %d failed: %v", i, err)
		}
	}
	if repo.creates != 1 {
		t.Fatalf("expected exactly one create, got %d", repo.creates)
	}
}
