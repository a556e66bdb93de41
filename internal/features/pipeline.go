package features

import (
	"github.com/trendcraft/trendcraft-server/internal/models"
)

// Transform turns raw video records into the regressor's feature frame.
// Duplicate video ids keep their first occurrence; records whose duration or
// timestamps cannot be parsed are dropped from the output, never surfaced as
// errors. Identifier and raw-text fields do not enter the frame — the
// composite text is carried separately for vectorization.
func Transform(records []models.VideoRecord) *Frame {
	frame := &Frame{Columns: append([]string(nil), BaseColumns...)}

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if seen[rec.VideoID] {
			continue
		}
		seen[rec.VideoID] = true

		seconds, ok := DurationSeconds(rec.Duration)
		if !ok {
			continue
		}
		published, ok := ParseTimestamp(rec.PublishedAt)
		if !ok {
			continue
		}
		trending, ok := ParseTimestamp(rec.TrendingDate)
		if !ok {
			continue
		}

		description := SanitizeDescription(rec.Description)
		tags := NormalizeTags(rec.Tags)
		text := CompositeText(rec.Title, description, rec.ChannelTitle, tags)

		pubDay := DayOfWeek(published)
		trendDay := DayOfWeek(trending)

		row := []float64{
			float64(rec.CategoryID),
			float64(seconds),
			rec.Target,
			float64(WordCount(text)),
			float64(CharCount(text)),
			float64(published.Year()),
			float64(ISOWeek(published)),
			float64(published.Month()),
			float64(pubDay),
			boolFlag(IsWeekend(published)),
			float64(trending.Year()),
			float64(ISOWeek(trending)),
			float64(trending.Month()),
			float64(trendDay),
			boolFlag(IsWeekend(trending)),
			float64(WholeDays(published, trending)),
			boolFlag(trendDay == 4),
			boolFlag(trendDay == 3),
			boolFlag(pubDay == 4),
			boolFlag(pubDay == 6),
		}

		frame.Rows = append(frame.Rows, row)
		frame.Texts = append(frame.Texts, text)
	}

	return frame
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
