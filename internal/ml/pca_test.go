package ml

import (
	"math"
	"testing"
)

func TestPCAProject(t *testing.T) {
	path := writeArtifact(t, PCAFile, `{
		"mean": [1.0, 2.0],
		"components": [[1.0, 0.0], [0.0, -1.0]]
	}`)

	p, err := LoadPCA(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.NumComponents() != 2 {
		t.Fatalf("NumComponents = %d, want 2", p.NumComponents())
	}

	got, err := p.Project([]float64{3.0, 5.0})
	if err != nil {
		t.Fatal(err)
	}
	// Centered: [2, 3]; projected: [2, -3].
	want := []float64{2, -3}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("projected[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPCAProjectDimensionMismatch(t *testing.T) {
	path := writeArtifact(t, PCAFile, `{
		"mean": [0.0, 0.0],
		"components": [[1.0, 1.0]]
	}`)

	p, err := LoadPCA(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Project([]float64{1.0}); err == nil {
		t.Fatal("expected error for input narrower than the fitted space")
	}
}

func TestLoadPCARejectsRaggedComponents(t *testing.T) {
	path := writeArtifact(t, PCAFile, `{
		"mean": [0.0, 0.0],
		"components": [[1.0]]
	}`)

	if _, err := LoadPCA(path); err == nil {
		t.Fatal("expected error for component row width mismatch")
	}
}
