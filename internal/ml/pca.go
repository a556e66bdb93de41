package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// PCA applies a fitted dimensionality-reduction projection: center on the
// training mean, multiply by the component matrix.
type PCA struct {
	Mean       []float64   `json:"mean"`
	Components [][]float64 `json:"components"` // k rows of Dim() values

	projection *mat.Dense
}

// LoadPCA reads the projector artifact from path.
func LoadPCA(path string) (*PCA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pca artifact: %w", err)
	}

	var p PCA
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pca artifact: %w", err)
	}

	if len(p.Components) == 0 {
		return nil, fmt.Errorf("pca artifact has no components")
	}
	n := len(p.Mean)
	flat := make([]float64, 0, len(p.Components)*n)
	for i, row := range p.Components {
		if len(row) != n {
			return nil, fmt.Errorf("pca component %d has %d values, want %d", i, len(row), n)
		}
		flat = append(flat, row...)
	}
	p.projection = mat.NewDense(len(p.Components), n, flat)

	return &p, nil
}

// NumComponents is the width of the projected output.
func (p *PCA) NumComponents() int {
	return len(p.Components)
}

// Project reduces a vectorizer output to the fixed component space.
func (p *PCA) Project(vec []float64) ([]float64, error) {
	if len(vec) != len(p.Mean) {
		return nil, fmt.Errorf("pca input has %d values, projector was fit on %d", len(vec), len(p.Mean))
	}

	centered := make([]float64, len(vec))
	for i, v := range vec {
		centered[i] = v - p.Mean[i]
	}

	var out mat.VecDense
	out.MulVec(p.projection, mat.NewVecDense(len(centered), centered))

	result := make([]float64, p.NumComponents())
	for i := range result {
		result[i] = out.AtVec(i)
	}
	return result, nil
}
