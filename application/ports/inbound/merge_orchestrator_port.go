package inbound

import "context"

// TrimFailure is one item the trim-all pass gave up on after exhausting
// its retries, or refused because its markers were not locked.
type TrimFailure struct {
	VideoName string
	Attempts  int
	Error     string
}

// TrimReport aggregates a trim-all pass: per-item failures never abort
// the batch.
type TrimReport struct {
	Trimmed  []string
	Skipped  []string
	Failures []TrimFailure
}

// MergeOrchestratorPort runs the cutting-service operations over a session:
// hash-keyed idempotent pairwise and sample merges, bounded-retry trim-all,
// and the body/hook-variant merges feeding final assembly.
type MergeOrchestratorPort interface {
	MergePair(ctx context.Context, sessionKey, firstName, secondName string) (string, error)
	MergeSample(ctx context.Context, sessionKey string) (string, error)
	TrimAll(ctx context.Context, sessionKey string) (*TrimReport, error)
	MergeBody(ctx context.Context, sessionKey string) (string, error)
	MergeHookVariants(ctx context.Context, sessionKey string) (map[string]string, error)
}
