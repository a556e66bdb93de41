package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/trendcraft/trendcraft-server/internal/models"
)

type PostgresPredictionStore struct {
	db *sql.DB
}

func NewPostgresPredictionStore(db *sql.DB) *PostgresPredictionStore {
	if db == nil {
		panic("db cannot be nil for PostgresPredictionStore")
	}
	return &PostgresPredictionStore{db: db}
}

type PredictionStore interface {
	CreatePrediction(prediction *models.Prediction) error
	GetRecentPredictions(limit int) ([]models.Prediction, error)
}

func (pg *PostgresPredictionStore) CreatePrediction(prediction *models.Prediction) error {
	if prediction.ID == uuid.Nil {
		prediction.ID = uuid.New()
	}

	query := `
		INSERT INTO predictions (id, title, channel_title, category_id, ratio)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;
	`

	err := pg.db.QueryRow(query,
		prediction.ID,
		prediction.Title,
		prediction.ChannelTitle,
		prediction.CategoryID,
		prediction.Ratio,
	).Scan(&prediction.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating prediction: %w", err)
	}

	return nil
}

func (pg *PostgresPredictionStore) GetRecentPredictions(limit int) ([]models.Prediction, error) {
	query := `
		SELECT id, title, channel_title, category_id, ratio, created_at
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1;
	`

	rows, err := pg.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("error getting predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		err := rows.Scan(&p.ID, &p.Title, &p.ChannelTitle, &p.CategoryID, &p.Ratio, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning prediction: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating predictions: %w", err)
	}

	return predictions, nil
}
