package models

import (
	"strconv"
	"strings"
)

// VideoRecord is one observation of a video: either an item pulled from the
// catalog API during ingestion, or the user's prospective video built by the
// analyze handler with placeholder identifiers and zero counts.
type VideoRecord struct {
	VideoID      string  `json:"videoId"`
	PublishedAt  string  `json:"publishedAt"`
	ChannelID    string  `json:"channelId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ChannelTitle string  `json:"channelTitle"`
	CategoryID   int     `json:"categoryId"`
	Tags         string  `json:"tags"`
	Duration     string  `json:"duration"`
	ViewCount    int64   `json:"viewCount"`
	LikeCount    int64   `json:"likeCount"`
	Target       float64 `json:"target"`
	TrendingDate string  `json:"trending_date"`
}

// DatasetColumns is the exact column order of the dataset CSV consumed by the
// offline training pipeline.
var DatasetColumns = []string{
	"videoId",
	"publishedAt",
	"channelId",
	"title",
	"description",
	"channelTitle",
	"categoryId",
	"tags",
	"duration",
	"viewCount",
	"likeCount",
	"target",
	"trending_date",
}

// CSVRow renders the record in DatasetColumns order.
func (v VideoRecord) CSVRow() []string {
	return []string{
		v.VideoID,
		v.PublishedAt,
		v.ChannelID,
		v.Title,
		v.Description,
		v.ChannelTitle,
		strconv.Itoa(v.CategoryID),
		v.Tags,
		v.Duration,
		strconv.FormatInt(v.ViewCount, 10),
		strconv.FormatInt(v.LikeCount, 10),
		strconv.FormatFloat(v.Target, 'g', -1, 64),
		v.TrendingDate,
	}
}

// FormatTags renders an API tag list in the dataset's list-literal form,
// e.g. ['tech', 'apple']. The feature pipeline strips the punctuation again
// on the way in.
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = "'" + t + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
