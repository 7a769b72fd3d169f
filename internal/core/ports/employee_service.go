package ports

import (
	"context"

	"github.com/peoplekit/employee-system/internal/core/domain"
)

// EmployeeInput carries the caller-supplied fields for create and update.
// The id is never part of the input: it is assigned on create and immutable
// afterwards.
type EmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	Salary    float64
	// Actor is the authenticated subject performing the operation,
	// recorded in the audit trail.
	Actor string
}

// EmployeeService defines CRUD over employee records with the email
// uniqueness invariant enforced at the service boundary.
type EmployeeService interface {
	// List returns all records in storage order; callers must not depend
	// on any particular ordering.
	List(ctx context.Context) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string, actor string) error
}
