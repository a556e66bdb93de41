package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestPromptsEmbedInputsVerbatim(t *testing.T) {
	title := "Vision Pro Review"
	description := "Check http://example.com now"

	for name, prompt := range map[string]string{
		"title":       TitlePrompt(title, description),
		"description": DescriptionPrompt(title, description),
		"hashtags":    HashtagsPrompt(title, description),
	} {
		if !strings.Contains(prompt, "Video title: "+title) {
			t.Errorf("%s prompt does not embed the title verbatim", name)
		}
		if !strings.Contains(prompt, "Description: "+description) {
			t.Errorf("%s prompt does not embed the description verbatim", name)
		}
	}
}

func TestSuggesterUsesDistinctPrompts(t *testing.T) {
	fake := &fakeGenerator{reply: "text"}
	s := NewSuggester(fake)
	ctx := context.Background()

	if _, err := s.RewriteTitle(ctx, "t", "d"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RewriteDescription(ctx, "t", "d"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SuggestHashtags(ctx, "t", "d"); err != nil {
		t.Fatal(err)
	}

	if len(fake.prompts) != 3 {
		t.Fatalf("got %d prompts, want 3", len(fake.prompts))
	}
	if !strings.Contains(fake.prompts[0], "rewriting the title") {
		t.Errorf("first prompt is not the title rewrite: %q", fake.prompts[0][:60])
	}
	if !strings.Contains(fake.prompts[1], "rewriting the description") {
		t.Errorf("second prompt is not the description rewrite: %q", fake.prompts[1][:60])
	}
	if !strings.Contains(fake.prompts[2], "hashtags") {
		t.Errorf("third prompt is not the hashtag suggestion: %q", fake.prompts[2][:60])
	}
}

func TestSuggesterPropagatesGeneratorError(t *testing.T) {
	wantErr := errors.New("endpoint unavailable")
	s := NewSuggester(&fakeGenerator{err: wantErr})

	if _, err := s.RewriteTitle(context.Background(), "t", "d"); !errors.Is(err, wantErr) {
		t.Errorf("error not propagated: %v", err)
	}
}
