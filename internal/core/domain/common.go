package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// These are set once on creation and refreshed on every mutation; they are
// never accepted directly from request payloads.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Touch stamps the audit fields for a mutation performed by actor at now.
// On first use (zero CreatedAt) it also fills the creation fields.
func (a *AuditFields) Touch(actor string, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
		a.CreatedBy = actor
	}
	a.LastUpdatedAt = now
	a.LastUpdatedBy = actor
}
