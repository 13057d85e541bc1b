package models

import "time"

// AuditFields are the creation columns of records written by this service.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
