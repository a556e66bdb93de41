package ingest

import (
	"strconv"
	"time"

	"github.com/trendcraft/trendcraft-server/internal/models"
	"github.com/trendcraft/trendcraft-server/internal/youtube"
)

// ProcessResponse extracts video records from a catalog listing. Items
// without both a view count and a positive like/view denominator are
// silently excluded; the measurement timestamp is stamped with now in UTC.
func ProcessResponse(resp *youtube.PopularResponse, now time.Time) []models.VideoRecord {
	trendingDate := now.UTC().Format("2006-01-02T15:04:05Z")

	var records []models.VideoRecord
	for _, item := range resp.Items {
		views, err := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		if err != nil || views <= 0 {
			continue
		}
		likes, err := strconv.ParseInt(item.Statistics.LikeCount, 10, 64)
		if err != nil {
			continue
		}

		categoryID, _ := strconv.Atoi(item.Snippet.CategoryID)

		records = append(records, models.VideoRecord{
			VideoID:      item.ID,
			PublishedAt:  item.Snippet.PublishedAt,
			ChannelID:    item.Snippet.ChannelID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			CategoryID:   categoryID,
			Tags:         models.FormatTags(item.Snippet.Tags),
			Duration:     item.ContentDetails.Duration,
			ViewCount:    views,
			LikeCount:    likes,
			Target:       float64(likes) / float64(views),
			TrendingDate: trendingDate,
		})
	}
	return records
}
