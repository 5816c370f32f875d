package core

import "time"

// Outcome labels for recorded operations
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics records ledger activity for observability backends
type Metrics interface {
	// RecordOperation records one engine operation with its outcome and latency
	RecordOperation(operation string, outcome string, duration time.Duration)
	// RecordReleased records how many lock entries a settlement pass pruned
	RecordReleased(entries int)
}
