// Package admin defines admin-surface types that do not belong to a
// specific entity: the dashboard summary and moderation results.
package admin

// Dashboard is the admin home page summary. All counters degrade to zero
// when the backend misbehaves; the page renders zeros instead of crashing.
type Dashboard struct {
	NewUserCount           int64   `json:"newUserCount"`
	TodayTransactionAmount float64 `json:"todayTransactionAmount"`
	NewOrderCount          int64   `json:"newOrderCount"`
	CompletedOrderCount    int64   `json:"completedOrderCount"`
}

// AuditParams moderate a pending merchant account.
type AuditParams struct {
	ID     int64
	Status string // active to approve, inactive to reject, locked to re-lock
}

// CancelParams cancel an order on a customer's behalf.
type CancelParams struct {
	ID     int64
	Status string
}

// WriteResult is the outcome of an admin write operation. Simulated is
// true when the backend route was missing and the result was synthesized
// by the missing-route compensation; callers that care about genuine
// confirmation must check it.
type WriteResult struct {
	Message   string `json:"message"`
	Simulated bool   `json:"simulated,omitempty"`
}
