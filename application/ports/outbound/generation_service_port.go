package outbound

import "context"

// GenerationItem is one text+image pair submitted to the video generation
// service under a resolved prompt template.
type GenerationItem struct {
	Text     string
	ImageRef string
}

// GenerationResult is the per-item outcome of a batch submission. Text is
// echoed back by the service and is the only correlation handle: results
// are not guaranteed to come back in submission order.
type GenerationResult struct {
	Text     string
	ImageRef string
	TaskID   string
	Success  bool
	Error    string
}

// TaskStatus is the interpreted outcome of one status poll. Done is false
// while the job is still running or the payload is unrecognized.
type TaskStatus struct {
	Done     bool
	Success  bool
	MediaURL string
	Error    string
}

// GenerationServicePort is the abstract contract of the external
// text+image→video service: submit a batch of at most MaxBatchSize items,
// then poll each returned task id until it resolves.
type GenerationServicePort interface {
	SubmitBatch(ctx context.Context, promptTemplate string, items []GenerationItem) ([]GenerationResult, error)
	PollStatus(ctx context.Context, taskID string) (TaskStatus, error)
}
