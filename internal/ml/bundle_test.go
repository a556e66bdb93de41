package ml

import (
	"strings"
	"testing"

	"github.com/trendcraft/trendcraft-server/internal/features"
)

// stubRegressor returns a fixed score and records the feature vector it saw.
type stubRegressor struct {
	nFeatures int
	score     float64
	seen      []float64
}

func (s *stubRegressor) PredictSingle(fvals []float64, nEstimators int) float64 {
	s.seen = append([]float64(nil), fvals...)
	return s.score
}

func (s *stubRegressor) NFeatures() int { return s.nFeatures }

func testManifest() *Manifest {
	columns := make([]string, 0, len(features.BaseColumns)+1)
	for _, c := range features.BaseColumns {
		if c == "target" {
			continue
		}
		columns = append(columns, c)
	}
	columns = append(columns, "cat_0", "cat_1")
	return &Manifest{
		Columns: columns,
		Categorical: []string{
			"categoryId", "Friday_Trending", "Thursday_Trending",
			"Friday_Published", "Sunday_Published",
		},
	}
}

func testFrame(t *testing.T) *features.Frame {
	t.Helper()
	frame := &features.Frame{Columns: append([]string(nil), features.BaseColumns...)}
	row := make([]float64, len(features.BaseColumns))
	for i := range row {
		row[i] = float64(i)
	}
	frame.Rows = [][]float64{row}
	frame.Texts = []string{"some text"}

	frame, err := frame.WithColumns([]string{"cat_0", "cat_1"}, [][]float64{{0.5, -0.5}})
	if err != nil {
		t.Fatal(err)
	}
	return frame
}

func TestPredictRoundsToTwoDecimals(t *testing.T) {
	stub := &stubRegressor{score: 0.056789}
	b := &Bundle{Manifest: testManifest(), model: stub}

	got, err := b.Predict(testFrame(t))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.06 {
		t.Errorf("Predict = %v, want 0.06", got)
	}
	if len(stub.seen) != len(b.Manifest.Columns) {
		t.Errorf("regressor saw %d features, want %d", len(stub.seen), len(b.Manifest.Columns))
	}
}

func TestPredictBuildsVectorInManifestOrder(t *testing.T) {
	stub := &stubRegressor{}
	b := &Bundle{Manifest: testManifest(), model: stub}
	frame := testFrame(t)

	if _, err := b.Predict(frame); err != nil {
		t.Fatal(err)
	}
	for j, col := range b.Manifest.Columns {
		want := frame.Rows[0][frame.ColumnIndex(col)]
		if stub.seen[j] != want {
			t.Errorf("feature %d (%s) = %v, want %v", j, col, stub.seen[j], want)
		}
	}
}

func TestPredictEmptyFrame(t *testing.T) {
	b := &Bundle{Manifest: testManifest(), model: &stubRegressor{}}
	frame := &features.Frame{Columns: append([]string(nil), features.BaseColumns...)}

	if _, err := b.Predict(frame); err == nil {
		t.Fatal("expected error for empty frame")
	}
}

func TestPredictSchemaMismatch(t *testing.T) {
	b := &Bundle{Manifest: testManifest(), model: &stubRegressor{}}

	// Frame without the embedding columns: missing cat_0/cat_1.
	frame := &features.Frame{Columns: append([]string(nil), features.BaseColumns...)}
	frame.Rows = [][]float64{make([]float64, len(features.BaseColumns))}

	_, err := b.Predict(frame)
	if err == nil {
		t.Fatal("expected schema mismatch error")
	}
	if !strings.Contains(err.Error(), "cat_0") {
		t.Errorf("error does not name the missing column: %v", err)
	}
}

func TestLoadManifestRejectsUnknownCategorical(t *testing.T) {
	path := writeArtifact(t, ManifestFile, `{
		"columns": ["a", "b"],
		"categorical": ["c"]
	}`)

	if _, err := loadManifest(path); err == nil {
		t.Fatal("expected error for categorical column outside the column list")
	}
}

func TestEmbedAppendsComponents(t *testing.T) {
	vecPath := writeArtifact(t, VectorizerFile, `{
		"vocabulary": {"text": 0, "some": 1},
		"idf": [1.0, 1.0],
		"lowercase": true
	}`)
	v, err := LoadVectorizer(vecPath)
	if err != nil {
		t.Fatal(err)
	}

	pcaPath := writeArtifact(t, PCAFile, `{
		"mean": [0.0, 0.0],
		"components": [[1.0, 0.0], [0.0, 1.0]]
	}`)
	p, err := LoadPCA(pcaPath)
	if err != nil {
		t.Fatal(err)
	}

	b := &Bundle{Vectorizer: v, PCA: p}

	frame := &features.Frame{
		Columns: append([]string(nil), features.BaseColumns...),
		Rows:    [][]float64{make([]float64, len(features.BaseColumns))},
		Texts:   []string{"some text"},
	}

	out, err := b.Embed(frame)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(out.Columns); got != len(features.BaseColumns)+2 {
		t.Fatalf("got %d columns, want %d", got, len(features.BaseColumns)+2)
	}
	if out.Columns[len(out.Columns)-2] != "cat_0" || out.Columns[len(out.Columns)-1] != "cat_1" {
		t.Errorf("embedding columns misnamed: %v", out.Columns[len(out.Columns)-2:])
	}
}
