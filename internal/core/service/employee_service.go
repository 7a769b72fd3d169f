package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplekit/employee-system/internal/core/domain"
	"github.com/peoplekit/employee-system/internal/core/ports"
)

// EmployeeCache abstracts the read cache (Redis). Errors and misses are
// treated identically: fall through to the repository.
type EmployeeCache interface {
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Set(ctx context.Context, e *domain.Employee) error
	Invalidate(ctx context.Context, id string) error
}

// EmployeeService enforces the email uniqueness invariant around CRUD. The
// existence check here produces a friendly conflict before the write; the
// repository's unique index is what actually closes the check-then-act race
// between concurrent writers.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	cache  EmployeeCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

// NewEmployeeService wires the service. cache and audit may be nil; both are
// optional collaborators and the service degrades to plain repository access.
func NewEmployeeService(repo ports.EmployeeRepository, cache EmployeeCache, audit ports.AuditSink, logger zerolog.Logger) *EmployeeService {
	if audit == nil {
		audit = noopAuditSink{}
	}
	return &EmployeeService{repo: repo, cache: cache, audit: audit, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.repo.FindAll(ctx)
}

func (s *EmployeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if id == "" {
		return nil, domain.ErrEmployeeNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.logger.Warn().Err(err).Str("employee_id", id).Msg("cache lookup failed, falling back to repository")
		} else if cached != nil {
			return cached, nil
		}
	}

	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, employee); err != nil {
			s.logger.Warn().Err(err).Str("employee_id", id).Msg("failed to populate cache")
		}
	}
	return employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Salary:    input.Salary,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("employee_id", created.ID).Str("email", created.Email).Msg("employee created")
	s.audit.Enqueue(domain.AuditEntry{
		Action:     domain.AuditCreated,
		EmployeeID: created.ID,
		Email:      created.Email,
		Actor:      input.Actor,
		Timestamp:  now,
	})
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An unchanged email never conflicts, even when other fields change.
	if input.Email != existing.Email {
		taken, err := s.repo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Email = input.Email
	existing.Salary = input.Salary
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.ID)

	s.logger.Info().Str("employee_id", updated.ID).Msg("employee updated")
	s.audit.Enqueue(domain.AuditEntry{
		Action:     domain.AuditUpdated,
		EmployeeID: updated.ID,
		Email:      updated.Email,
		Actor:      input.Actor,
		Timestamp:  updated.UpdatedAt,
	})
	return updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string, actor string) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, existing.ID); err != nil {
		return err
	}
	s.invalidate(ctx, existing.ID)

	s.logger.Info().Str("employee_id", existing.ID).Msg("employee deleted")
	s.audit.Enqueue(domain.AuditEntry{
		Action:     domain.AuditDeleted,
		EmployeeID: existing.ID,
		Email:      existing.Email,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
	})
	return nil
}

func (s *EmployeeService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("employee_id", id).Msg("failed to invalidate cache")
	}
}

func validateInput(input ports.EmployeeInput) error {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" {
		return domain.ErrValidation
	}
	return nil
}

// noopAuditSink discards entries; used when no audit pipeline is wired.
type noopAuditSink struct{}

func (noopAuditSink) Enqueue(domain.AuditEntry) {}
