package ml

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadVectorizerAndTransform(t *testing.T) {
	path := writeArtifact(t, VectorizerFile, `{
		"vocabulary": {"vision": 0, "pro": 1, "review": 2},
		"idf": [1.0, 2.0, 1.0],
		"lowercase": true
	}`)

	v, err := LoadVectorizer(path)
	if err != nil {
		t.Fatal(err)
	}
	if v.Dim() != 3 {
		t.Fatalf("Dim = %d, want 3", v.Dim())
	}

	vec := v.Transform("Vision Pro pro unseen")
	// Raw tf*idf: vision=1*1, pro=2*2, review=0 → l2 norm = sqrt(17).
	norm := math.Sqrt(17)
	want := []float64{1 / norm, 4 / norm, 0}
	for i := range want {
		if math.Abs(vec[i]-want[i]) > 1e-12 {
			t.Errorf("vec[%d] = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestVectorizerZeroVector(t *testing.T) {
	path := writeArtifact(t, VectorizerFile, `{
		"vocabulary": {"term": 0},
		"idf": [1.5],
		"lowercase": true
	}`)

	v, err := LoadVectorizer(path)
	if err != nil {
		t.Fatal(err)
	}
	vec := v.Transform("nothing in vocabulary")
	if vec[0] != 0 {
		t.Errorf("vec = %v, want all zeros", vec)
	}
}

func TestLoadVectorizerRejectsBadIndex(t *testing.T) {
	path := writeArtifact(t, VectorizerFile, `{
		"vocabulary": {"term": 5},
		"idf": [1.0]
	}`)

	if _, err := LoadVectorizer(path); err == nil {
		t.Fatal("expected error for vocabulary index outside idf weights")
	}
}

func TestVectorizerTokenPattern(t *testing.T) {
	// Default pattern drops single-character tokens.
	path := writeArtifact(t, VectorizerFile, `{
		"vocabulary": {"a": 0, "ab": 1},
		"idf": [1.0, 1.0],
		"lowercase": true
	}`)

	v, err := LoadVectorizer(path)
	if err != nil {
		t.Fatal(err)
	}
	vec := v.Transform("a ab")
	if vec[0] != 0 {
		t.Errorf("single-character token matched: %v", vec)
	}
	if vec[1] == 0 {
		t.Errorf("two-character token missed: %v", vec)
	}
}
