package features

import "fmt"

// BaseColumns is the categorical/numeric block of the feature frame, in the
// exact order the regressor was fit on. Embedding columns (cat_0..cat_{k-1})
// are appended after it.
var BaseColumns = []string{
	"categoryId",
	"duration",
	"target",
	"num_words",
	"num_characters",
	"publishedAt_year",
	"publishedAt_weekofyear",
	"publishedAt_month",
	"publishedAt_dayofweek",
	"publishedAt_weekend",
	"trending_date_year",
	"trending_date_weekofyear",
	"trending_date_month",
	"trending_date_dayofweek",
	"trending_date_weekend",
	"video_age",
	"Friday_Trending",
	"Thursday_Trending",
	"Friday_Published",
	"Sunday_Published",
}

// Frame is the transformed representation of a batch of records: one value
// row per surviving record, plus the composite text carried separately for
// vectorization.
type Frame struct {
	Columns []string
	Rows    [][]float64
	Texts   []string
}

// ColumnIndex returns the position of a column, or -1.
func (f *Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// WithColumns returns a copy of f with extra columns appended to every row.
// extra must hold one value slice per row, each of len(names).
func (f *Frame) WithColumns(names []string, extra [][]float64) (*Frame, error) {
	if len(extra) != len(f.Rows) {
		return nil, fmt.Errorf("column block has %d rows, frame has %d", len(extra), len(f.Rows))
	}

	out := &Frame{
		Columns: append(append([]string(nil), f.Columns...), names...),
		Rows:    make([][]float64, len(f.Rows)),
		Texts:   f.Texts,
	}
	for i, row := range f.Rows {
		if len(extra[i]) != len(names) {
			return nil, fmt.Errorf("row %d: column block has %d values, want %d", i, len(extra[i]), len(names))
		}
		out.Rows[i] = append(append([]float64(nil), row...), extra[i]...)
	}
	return out, nil
}
