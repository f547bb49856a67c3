package i

import "context"

// Categorizer classifies expense notes and learns from labeled feedback.
type Categorizer interface {
	// Predict returns the most likely category for the text and the model's
	// confidence in it.
	Predict(text string) (string, float64, error)

	// Feedback records a labeled example and may trigger a retrain once
	// enough examples are pending.
	Feedback(ctx context.Context, text, category string) error

	// Retrain rebuilds the model from the dataset and all stored feedback.
	Retrain(ctx context.Context) error
}
