package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Actor identifies who performs a transition. It is passed into every
// state-changing call instead of being read from ambient state.
type Actor struct {
	UserID  string `json:"userID"`
	Channel string `json:"channel,omitempty"` // e.g. "api", "invoice", "payment"
}

// DefaultCurrencyPrecision is the number of decimal places line amounts are held to
// when no precision is configured.
const DefaultCurrencyPrecision int32 = 2
