package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/peoplekit/employee-system/internal/core/domain"
	"github.com/peoplekit/employee-system/internal/core/ports"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
	nextID    int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee), nextID: 1}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) FindAll(_ context.Context) ([]*domain.Employee, error) {
	out := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, cloneEmployee(e))
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	// Mirrors the unique index: a conflicting insert fails atomically.
	if taken, _ := r.ExistsByEmail(context.Background(), e.Email); taken {
		return nil, domain.ErrEmailTaken
	}
	stored := cloneEmployee(e)
	stored.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.employees[stored.ID] = cloneEmployee(stored)
	return stored, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, ok := r.employees[e.ID]; !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	for id, other := range r.employees {
		if id != e.ID && other.Email == e.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.employees[e.ID] = cloneEmployee(e)
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

// captureSink records enqueued audit entries synchronously.
type captureSink struct {
	entries []domain.AuditEntry
}

func (s *captureSink) Enqueue(entry domain.AuditEntry) {
	s.entries = append(s.entries, entry)
}

func newTestEmployeeService(repo ports.EmployeeRepository, sink ports.AuditSink) *EmployeeService {
	return NewEmployeeService(repo, nil, sink, zerolog.Nop())
}

func anaInput() ports.EmployeeInput {
	return ports.EmployeeInput{
		FirstName: "Ana",
		LastName:  "Lee",
		Email:     "ana@x.com",
		Salary:    50000,
		Actor:     "admin",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	repo := newStubEmployeeRepo()
	sink := &captureSink{}
	svc := newTestEmployeeService(repo, sink)

	created, err := svc.Create(context.Background(), anaInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.Email != "ana@x.com" {
		t.Fatalf("unexpected email: %q", created.Email)
	}
	if len(sink.entries) != 1 || sink.entries[0].Action != domain.AuditCreated {
		t.Fatalf("expected one created audit entry, got %+v", sink.entries)
	}
	if sink.entries[0].Actor != "admin" {
		t.Fatalf("expected actor admin, got %q", sink.entries[0].Actor)
	}
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc := newTestEmployeeService(newStubEmployeeRepo(), nil)

	for _, input := range []ports.EmployeeInput{
		{LastName: "Lee", Email: "ana@x.com"},
		{FirstName: "Ana", Email: "ana@x.com"},
		{FirstName: "Ana", LastName: "Lee"},
	} {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", input, err)
		}
	}
}

func TestEmployeeService_Create_Conflict_StoreUnchanged(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)

	if _, err := svc.Create(context.Background(), anaInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := anaInput()
	second.FirstName = "Other"
	if _, err := svc.Create(context.Background(), second); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one record after conflict, got %d", len(all))
	}
}

func TestEmployeeService_Update_SameEmailNeverConflicts(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)

	created, err := svc.Create(context.Background(), anaInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	changes := anaInput()
	changes.Salary = 60000
	updated, err := svc.Update(context.Background(), created.ID, changes)
	if err != nil {
		t.Fatalf("update with unchanged email failed: %v", err)
	}
	if updated.Salary != 60000 {
		t.Fatalf("expected salary 60000, got %v", updated.Salary)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must not alter id: %q vs %q", updated.ID, created.ID)
	}
}

func TestEmployeeService_Update_EmailConflict(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)

	ana, _ := svc.Create(context.Background(), anaInput())
	bob := ports.EmployeeInput{FirstName: "Bob", LastName: "Kim", Email: "bob@x.com", Salary: 40000}
	if _, err := svc.Create(context.Background(), bob); err != nil {
		t.Fatalf("create bob failed: %v", err)
	}

	changes := anaInput()
	changes.Email = "bob@x.com"
	if _, err := svc.Update(context.Background(), ana.ID, changes); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := newTestEmployeeService(newStubEmployeeRepo(), nil)

	if _, err := svc.Update(context.Background(), "404", anaInput()); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Delete_ThenGetNotFound(t *testing.T) {
	repo := newStubEmployeeRepo()
	sink := &captureSink{}
	svc := newTestEmployeeService(repo, sink)

	created, err := svc.Create(context.Background(), anaInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, "admin"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "admin"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound on second delete, got %v", err)
	}

	last := sink.entries[len(sink.entries)-1]
	if last.Action != domain.AuditDeleted || last.EmployeeID != created.ID {
		t.Fatalf("unexpected final audit entry: %+v", last)
	}
}

// Full lifecycle: create, conflicting create, email change, delete.
func TestEmployeeService_Lifecycle(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := newTestEmployeeService(repo, nil)

	ana, err := svc.Create(context.Background(), anaInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Create(context.Background(), anaInput()); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate create: expected ErrEmailTaken, got %v", err)
	}
	if all, _ := svc.List(context.Background()); len(all) != 1 {
		t.Fatalf("expected one record, got %d", len(all))
	}

	changes := anaInput()
	changes.Email = "ana2@x.com"
	if _, err := svc.Update(context.Background(), ana.ID, changes); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, err := svc.GetByID(context.Background(), ana.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Email != "ana2@x.com" {
		t.Fatalf("expected updated email, got %q", got.Email)
	}

	if err := svc.Delete(context.Background(), ana.ID, "admin"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), ana.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
