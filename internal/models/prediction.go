package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is one stored analyze result.
type Prediction struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	CategoryID   int       `json:"category_id"`
	Ratio        float64   `json:"ratio"`
	CreatedAt    time.Time `json:"created_at"`
}
