package domain

import "time"

// AuditAction identifies the kind of mutation recorded in the audit trail.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

// AuditEntry records a single mutation of the employee collection. Entries
// are written asynchronously and a failed write never fails the request
// that produced it.
type AuditEntry struct {
	ID         string      `json:"id" bson:"_id,omitempty"`
	Action     AuditAction `json:"action" bson:"action"`
	EmployeeID string      `json:"employee_id" bson:"employee_id"`
	Email      string      `json:"email" bson:"email"`
	Actor      string      `json:"actor" bson:"actor"`
	Timestamp  time.Time   `json:"timestamp" bson:"timestamp"`
}
