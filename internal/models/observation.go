package models

import "time"

// Observation is one trending-video measurement as stored in ClickHouse by
// the ingestion run.
type Observation struct {
	VideoID      string    `ch:"video_id"`
	CategoryID   int32     `ch:"category_id"`
	Title        string    `ch:"title"`
	ChannelTitle string    `ch:"channel_title"`
	ViewCount    int64     `ch:"view_count"`
	LikeCount    int64     `ch:"like_count"`
	Target       float64   `ch:"target"`
	TrendingDate time.Time `ch:"trending_date"`
}
