package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/trendcraft/trendcraft-server/internal/models"
)

type ClickhouseObservationStore struct {
	conn driver.Conn
}

func NewClickhouseObservationStore(conn driver.Conn) *ClickhouseObservationStore {
	return &ClickhouseObservationStore{conn: conn}
}

// CategorySnapshot aggregates one ingestion day for a category.
type CategorySnapshot struct {
	Day          time.Time `json:"day"`
	Videos       uint64    `json:"videos"`
	AverageRatio float64   `json:"average_ratio"`
	TotalViews   int64     `json:"total_views"`
}

type ObservationStore interface {
	InsertObservations(ctx context.Context, observations []models.Observation) error
	GetCategoryTimeline(ctx context.Context, categoryID int) ([]CategorySnapshot, error)
}

func (c *ClickhouseObservationStore) InsertObservations(ctx context.Context, observations []models.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	batch, err := c.conn.PrepareBatch(ctx, `
		INSERT INTO trending_observations
			(video_id, category_id, title, channel_title, view_count, like_count, target, trending_date)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare observation batch: %w", err)
	}

	for _, obs := range observations {
		err := batch.Append(
			obs.VideoID,
			obs.CategoryID,
			obs.Title,
			obs.ChannelTitle,
			obs.ViewCount,
			obs.LikeCount,
			obs.Target,
			obs.TrendingDate,
		)
		if err != nil {
			return fmt.Errorf("failed to append observation: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send observation batch: %w", err)
	}

	return nil
}

func (c *ClickhouseObservationStore) GetCategoryTimeline(ctx context.Context, categoryID int) ([]CategorySnapshot, error) {

	query := `
		SELECT
			toStartOfDay(trending_date) AS day,
			count() AS videos,
			avg(target) AS average_ratio,
			sum(view_count) AS total_views
		FROM trending_observations
		WHERE category_id = ?
		GROUP BY day
		ORDER BY day DESC
	`

	rows, err := c.conn.Query(ctx, query, int32(categoryID))
	if err != nil {
		return nil, fmt.Errorf("failed to get category timeline: %w", err)
	}
	defer rows.Close()

	var snapshots []CategorySnapshot

	for rows.Next() {
		var snapshot CategorySnapshot

		err := rows.Scan(
			&snapshot.Day,
			&snapshot.Videos,
			&snapshot.AverageRatio,
			&snapshot.TotalViews,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}
