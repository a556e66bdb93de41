package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
)

const defaultTokenPattern = `\b\w\w+\b`

// Vectorizer applies a fitted TF-IDF text vectorizer: fixed vocabulary,
// per-term idf weights, l2 row normalization. The artifact is produced by
// the offline training pipeline and loaded read-only.
type Vectorizer struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	TokenPattern string         `json:"token_pattern"`
	Lowercase    bool           `json:"lowercase"`

	pattern *regexp.Regexp
}

// LoadVectorizer reads the vectorizer artifact from path.
func LoadVectorizer(path string) (*Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vectorizer artifact: %w", err)
	}

	var v Vectorizer
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vectorizer artifact: %w", err)
	}

	if v.TokenPattern == "" {
		v.TokenPattern = defaultTokenPattern
	}
	v.pattern, err = regexp.Compile(v.TokenPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid token pattern %q: %w", v.TokenPattern, err)
	}

	if len(v.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer artifact has an empty vocabulary")
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return nil, fmt.Errorf("vocabulary term %q has index %d outside idf weights (len %d)", term, idx, len(v.IDF))
		}
	}

	return &v, nil
}

// Dim is the width of the produced vectors.
func (v *Vectorizer) Dim() int {
	return len(v.IDF)
}

// Transform produces the fixed-vocabulary tf-idf vector for text.
func (v *Vectorizer) Transform(text string) []float64 {
	if v.Lowercase {
		text = strings.ToLower(text)
	}

	vec := make([]float64, v.Dim())
	for _, token := range v.pattern.FindAllString(text, -1) {
		if idx, ok := v.Vocabulary[token]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}
