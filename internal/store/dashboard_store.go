package store

import (
	"database/sql"
	"fmt"
)

type Dashboard struct {
	TotalPredictions int     `json:"total_predictions"`
	PredictionsToday int     `json:"predictions_today"`
	AverageRatio     float64 `json:"average_ratio"`
}

type PostgresDashboardStore struct {
	db *sql.DB
}

func NewPostgresDashboardStore(db *sql.DB) *PostgresDashboardStore {
	return &PostgresDashboardStore{db: db}
}

type DashboardStore interface {
	GetDashboardMetrics() (*Dashboard, error)
}

func (pg *PostgresDashboardStore) GetDashboardMetrics() (*Dashboard, error) {

	var dashboard Dashboard

	query := `
		SELECT
			(SELECT COUNT(*) FROM predictions) as total_predictions,
			(SELECT COUNT(*) FROM predictions WHERE created_at >= date_trunc('day', now())) as predictions_today,
			(SELECT COALESCE(AVG(ratio), 0) FROM predictions) as average_ratio;
	`

	err := pg.db.QueryRow(query).Scan(&dashboard.TotalPredictions, &dashboard.PredictionsToday, &dashboard.AverageRatio)
	if err != nil {
		return nil, fmt.Errorf("error getting dashboard metrics: %w", err)
	}

	return &dashboard, nil
}
