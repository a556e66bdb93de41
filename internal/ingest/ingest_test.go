package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trendcraft/trendcraft-server/internal/models"
	"github.com/trendcraft/trendcraft-server/internal/youtube"
)

func popularItem(id string, views, likes string) youtube.Item {
	return youtube.Item{
		ID: id,
		Snippet: youtube.Snippet{
			PublishedAt:  "2024-01-05T10:00:00Z",
			ChannelID:    "chan",
			Title:        "title " + id,
			Description:  "desc",
			ChannelTitle: "channel",
			CategoryID:   "10",
			Tags:         []string{"tech", "apple"},
		},
		ContentDetails: youtube.ContentDetails{Duration: "PT5M"},
		Statistics:     youtube.Statistics{ViewCount: views, LikeCount: likes},
	}
}

func TestProcessResponse(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 30, 0, 0, time.UTC)
	resp := &youtube.PopularResponse{Items: []youtube.Item{
		popularItem("a", "100", "10"),
		popularItem("b", "", "10"),  // missing view count: excluded
		popularItem("c", "100", ""), // missing like count: excluded
		popularItem("d", "0", "10"), // zero views: excluded
	}}

	records := ProcessResponse(resp, now)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.VideoID != "a" || rec.Target != 0.1 {
		t.Errorf("record = %+v", rec)
	}
	if rec.CategoryID != 10 {
		t.Errorf("categoryId = %d, want 10", rec.CategoryID)
	}
	if rec.Tags != "['tech', 'apple']" {
		t.Errorf("tags = %q", rec.Tags)
	}
	if rec.TrendingDate != "2024-02-01T12:30:00Z" {
		t.Errorf("trending date = %q", rec.TrendingDate)
	}
}

func TestPersistWritesDatedCSV(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	records := ProcessResponse(&youtube.PopularResponse{
		Items: []youtube.Item{popularItem("a", "100", "10")},
	}, now)

	path, err := Persist(dir, records, now)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "data_2024_02_01.csv" {
		t.Errorf("dataset filename = %s", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d csv rows, want 2", len(rows))
	}

	if len(rows[0]) != len(models.DatasetColumns) {
		t.Fatalf("header has %d columns, want %d", len(rows[0]), len(models.DatasetColumns))
	}
	for i, col := range models.DatasetColumns {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	if rows[1][0] != "a" || rows[1][11] != "0.1" {
		t.Errorf("data row = %v", rows[1])
	}
}

func TestPersistOverwritesSameDay(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

	first := ProcessResponse(&youtube.PopularResponse{Items: []youtube.Item{
		popularItem("a", "100", "10"),
		popularItem("b", "200", "10"),
	}}, now)
	if _, err := Persist(dir, first, now); err != nil {
		t.Fatal(err)
	}

	second := ProcessResponse(&youtube.PopularResponse{Items: []youtube.Item{
		popularItem("c", "100", "10"),
	}}, now.Add(2*time.Hour))
	path, err := Persist(dir, second, now.Add(2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Errorf("same-day rerun did not replace the file: %d rows", len(rows))
	}
}

type fakeFetcher struct {
	responses map[int]*youtube.PopularResponse
	errs      map[int]error
	calls     []int
}

func (f *fakeFetcher) FetchCategory(ctx context.Context, categoryID int) (*youtube.PopularResponse, error) {
	f.calls = append(f.calls, categoryID)
	if err, ok := f.errs[categoryID]; ok {
		return nil, err
	}
	return f.responses[categoryID], nil
}

func TestRunnerSkipsFailedCategories(t *testing.T) {
	fetcher := &fakeFetcher{
		responses: map[int]*youtube.PopularResponse{
			1: {Items: []youtube.Item{popularItem("a", "100", "10")}},
			3: {Items: []youtube.Item{popularItem("b", "100", "20")}},
		},
		errs: map[int]error{
			2: &youtube.FetchError{CategoryID: 2, StatusCode: 403, Err: fmt.Errorf("forbidden")},
		},
	}

	dir := t.TempDir()
	r := &Runner{
		Fetcher:      fetcher,
		Logger:       log.New(io.Discard, "", 0),
		DataDir:      dir,
		CategoryFrom: 1,
		CategoryTo:   3,
	}

	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(fetcher.calls) != 3 {
		t.Errorf("fetched %v, want all three categories", fetcher.calls)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d dataset files, want 1", len(entries))
	}

	f, err := os.Open(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header + two rows from the surviving categories.
	if len(rows) != 3 {
		t.Errorf("got %d csv rows, want 3", len(rows))
	}
}
