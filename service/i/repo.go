package i

import (
	"context"

	dmn "github.com/codebabbler/SemesterSaat/domain"
)

// FeedbackRepo defines the interface for feedback persistence operations.
type FeedbackRepo interface {
	// Save inserts a feedback example into the repository.
	Save(ctx context.Context, feedback *dmn.Feedback) error

	// All retrieves every stored feedback example, oldest first.
	All(ctx context.Context) ([]*dmn.Feedback, error)
}
