package i

import "context"

// SortedQueue is a score-ordered queue shared across process replicas.
type SortedQueue interface {
	// Enqueue adds a member with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// Count returns the number of members in the queue.
	Count(ctx context.Context, queueKey string) int64

	// PopAll removes and returns every member, lowest score first. Draining
	// is exclusive across replicas.
	PopAll(ctx context.Context, queueKey string) ([]string, error)
}
