package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/peoplekit/employee-system/internal/core/domain"
	"github.com/peoplekit/employee-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to the
// audit repository. Record reports failures to its caller (the dispatcher),
// which logs and drops them; nothing upstream ever sees an audit error.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, entry domain.AuditEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}
	s.log.Debug().
		Str("action", string(entry.Action)).
		Str("employee_id", entry.EmployeeID).
		Str("actor", entry.Actor).
		Msg("audit entry recorded")
	return nil
}
