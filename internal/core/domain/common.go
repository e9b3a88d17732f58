package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The actor is an opaque identifier taken from the X-Actor-ID request header.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
