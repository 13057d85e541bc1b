package domain

import "time"

// AuditFields holds creation information for records written by this service.
// CreatedBy is the subject of the bearer token that triggered the write.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
