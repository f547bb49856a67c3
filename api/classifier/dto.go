// Package classifierapi provides structures and utilities for the expense-note classification endpoints.
package classifierapi

// PredictRequest carries the expense note to classify.
type PredictRequest struct {
	Text string `json:"text" binding:"required"`
}

// PredictResponse carries the predicted category and the model's confidence.
type PredictResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// FeedbackRequest carries a user-labeled example.
type FeedbackRequest struct {
	Text     string `json:"text" binding:"required"`
	Category string `json:"category" binding:"required"`
}
