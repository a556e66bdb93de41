package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmitryikh/leaves"

	"github.com/trendcraft/trendcraft-server/internal/features"
)

// Artifact filenames inside the model directory.
const (
	VectorizerFile = "vectorizer_model.json"
	PCAFile        = "pca_model.json"
	ManifestFile   = "cat_cols.json"
	RegressorFile  = "regressor_model.txt"
)

// Manifest is the column manifest saved alongside the regressor: the feature
// columns in the order the model was fit on, and the subset declared
// categorical.
type Manifest struct {
	Columns     []string `json:"columns"`
	Categorical []string `json:"categorical"`
}

type regressor interface {
	PredictSingle(fvals []float64, nEstimators int) float64
	NFeatures() int
}

// Bundle holds every pretrained artifact, loaded once per process and shared
// read-only across requests.
type Bundle struct {
	Vectorizer *Vectorizer
	PCA        *PCA
	Manifest   *Manifest

	model regressor
}

// LoadBundle reads all artifacts from dir. Any load failure is fatal to the
// caller; nothing is retried or lazily reloaded.
func LoadBundle(dir string) (*Bundle, error) {
	vectorizer, err := LoadVectorizer(filepath.Join(dir, VectorizerFile))
	if err != nil {
		return nil, err
	}

	pca, err := LoadPCA(filepath.Join(dir, PCAFile))
	if err != nil {
		return nil, err
	}
	if len(pca.Mean) != vectorizer.Dim() {
		return nil, fmt.Errorf("pca was fit on %d features, vectorizer produces %d", len(pca.Mean), vectorizer.Dim())
	}

	manifest, err := loadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}

	model, err := leaves.LGEnsembleFromFile(filepath.Join(dir, RegressorFile), true)
	if err != nil {
		return nil, fmt.Errorf("failed to load regressor: %w", err)
	}
	if model.NFeatures() != len(manifest.Columns) {
		return nil, fmt.Errorf("regressor expects %d features, manifest lists %d columns", model.NFeatures(), len(manifest.Columns))
	}

	return &Bundle{
		Vectorizer: vectorizer,
		PCA:        pca,
		Manifest:   manifest,
		model:      model,
	}, nil
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse column manifest: %w", err)
	}
	if len(m.Columns) == 0 {
		return nil, fmt.Errorf("column manifest lists no feature columns")
	}

	cols := make(map[string]bool, len(m.Columns))
	for _, c := range m.Columns {
		cols[c] = true
	}
	for _, c := range m.Categorical {
		if !cols[c] {
			return nil, fmt.Errorf("categorical column %q is not in the manifest column list", c)
		}
	}

	return &m, nil
}

// EmbeddingColumns returns the names of the reduced text-embedding columns.
func (b *Bundle) EmbeddingColumns() []string {
	names := make([]string, b.PCA.NumComponents())
	for i := range names {
		names[i] = fmt.Sprintf("cat_%d", i)
	}
	return names
}

// Embed vectorizes the frame's composite texts, projects them, and returns a
// frame with the embedding columns appended after the categorical/numeric
// block.
func (b *Bundle) Embed(frame *features.Frame) (*features.Frame, error) {
	embedded := make([][]float64, len(frame.Texts))
	for i, text := range frame.Texts {
		projected, err := b.PCA.Project(b.Vectorizer.Transform(text))
		if err != nil {
			return nil, err
		}
		embedded[i] = projected
	}
	return frame.WithColumns(b.EmbeddingColumns(), embedded)
}

// Predict validates the frame against the manifest, scores the first row and
// returns the predicted like-to-view ratio rounded to two decimals. A column
// set that does not match the manifest is a descriptive error, never a
// silently misaligned score.
func (b *Bundle) Predict(frame *features.Frame) (float64, error) {
	if len(frame.Rows) == 0 {
		return 0, fmt.Errorf("no rows survived preprocessing")
	}
	if err := b.checkSchema(frame); err != nil {
		return 0, err
	}

	fvals := make([]float64, len(b.Manifest.Columns))
	for j, col := range b.Manifest.Columns {
		fvals[j] = frame.Rows[0][frame.ColumnIndex(col)]
	}

	pred := b.model.PredictSingle(fvals, 0)
	return math.Round(pred*100) / 100, nil
}

// checkSchema requires the frame's columns, minus the label, to be exactly
// the manifest's column set.
func (b *Bundle) checkSchema(frame *features.Frame) error {
	want := make(map[string]bool, len(b.Manifest.Columns))
	for _, c := range b.Manifest.Columns {
		want[c] = true
	}

	var extra []string
	got := make(map[string]bool, len(frame.Columns))
	for _, c := range frame.Columns {
		if c == "target" {
			continue
		}
		got[c] = true
		if !want[c] {
			extra = append(extra, c)
		}
	}

	var missing []string
	for _, c := range b.Manifest.Columns {
		if !got[c] {
			missing = append(missing, c)
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return fmt.Errorf("feature frame does not match model manifest (missing: [%s], unexpected: [%s])",
			strings.Join(missing, " "), strings.Join(extra, " "))
	}
	return nil
}
