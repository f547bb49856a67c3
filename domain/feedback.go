// Package domain holds the persistent models shared by services and
// repositories.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Feedback is a user-labeled expense note used to improve the classifier.
type Feedback struct {
	ID        uuid.UUID `bson:"_id"`
	Text      string    `bson:"text"`
	Category  string    `bson:"category"`
	CreatedAt time.Time `bson:"createdAt"`
}

// NewFeedback creates a Feedback with a fresh ID and creation time.
func NewFeedback(text, category string) (*Feedback, error) {
	text = strings.TrimSpace(text)
	category = strings.TrimSpace(category)
	if text == "" {
		return nil, errors.New("feedback text must not be empty")
	}
	if category == "" {
		return nil, errors.New("feedback category must not be empty")
	}

	return &Feedback{
		ID:        uuid.New(),
		Text:      text,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}, nil
}
