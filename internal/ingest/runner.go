package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/trendcraft/trendcraft-server/internal/features"
	"github.com/trendcraft/trendcraft-server/internal/models"
	"github.com/trendcraft/trendcraft-server/internal/store/analytics"
	"github.com/trendcraft/trendcraft-server/internal/youtube"
)

// Fetcher is the slice of the catalog client the runner needs.
type Fetcher interface {
	FetchCategory(ctx context.Context, categoryID int) (*youtube.PopularResponse, error)
}

// Runner executes one ingestion pass: fetch every configured category,
// extract records, write the dated dataset file, and mirror the records
// into the analytics store.
type Runner struct {
	Fetcher      Fetcher
	Observations analytics.ObservationStore // optional
	Logger       *log.Logger
	DataDir      string
	CategoryFrom int
	CategoryTo   int
}

func (r *Runner) Run(ctx context.Context) error {
	var records []models.VideoRecord
	now := time.Now().UTC()

	for category := r.CategoryFrom; category <= r.CategoryTo; category++ {
		resp, err := r.Fetcher.FetchCategory(ctx, category)
		if err != nil {
			var fetchErr *youtube.FetchError
			if errors.As(err, &fetchErr) && !fetchErr.Transient {
				r.Logger.Printf("Skipping category %d, configuration problem: %v", category, err)
			} else {
				r.Logger.Printf("Skipping category %d, transient failure: %v", category, err)
			}
			continue
		}

		processed := ProcessResponse(resp, now)
		r.Logger.Printf("Fetched data for categoryid = %d (%d usable items)", category, len(processed))
		records = append(records, processed...)
	}

	path, err := Persist(r.DataDir, records, now)
	if err != nil {
		return err
	}
	r.Logger.Printf("Done. Data saved successfully to %s (%d rows)", path, len(records))

	if r.Observations != nil {
		observations := make([]models.Observation, 0, len(records))
		for _, rec := range records {
			observations = append(observations, ToObservation(rec))
		}
		if err := r.Observations.InsertObservations(ctx, observations); err != nil {
			return fmt.Errorf("failed to store observations: %w", err)
		}
		r.Logger.Printf("Stored %d observations", len(observations))
	}

	return nil
}

// ToObservation converts a dataset record into its analytics-store row.
func ToObservation(rec models.VideoRecord) models.Observation {
	trendingDate, ok := features.ParseTimestamp(rec.TrendingDate)
	if !ok {
		trendingDate = time.Now().UTC()
	}
	return models.Observation{
		VideoID:      rec.VideoID,
		CategoryID:   int32(rec.CategoryID),
		Title:        rec.Title,
		ChannelTitle: rec.ChannelTitle,
		ViewCount:    rec.ViewCount,
		LikeCount:    rec.LikeCount,
		Target:       rec.Target,
		TrendingDate: trendingDate,
	}
}
