package ports

import (
	"context"

	"github.com/peoplekit/employee-system/internal/core/domain"
)

// EmployeeRepository defines persistence for employee records, keyed by the
// assigned id with a secondary uniqueness constraint on email.
//
// Implementations must enforce the email constraint atomically (a unique
// index or equivalent) and return domain.ErrEmailTaken when an insert or
// update would violate it; the service-level existence check alone cannot
// close the check-then-act race between concurrent writers.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create assigns an id and persists the record, returning the stored copy.
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
