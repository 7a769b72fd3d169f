package ports

import (
	"context"

	"github.com/peoplekit/employee-system/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditService processes one audit entry; implementations must never let a
// failure propagate back to the request that produced the entry.
type AuditService interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

// AuditSink is the write side handed to the employee service. The queue
// dispatcher implements it; a nil-safe no-op is used in tests.
type AuditSink interface {
	Enqueue(entry domain.AuditEntry)
}
