package llm

import "context"

// Suggester wraps a Generator with the three suggestion operations. The
// response text is trusted as-is; no validation of hashtag counts or title
// length is attempted.
type Suggester struct {
	generator Generator
}

func NewSuggester(generator Generator) *Suggester {
	return &Suggester{generator: generator}
}

func (s *Suggester) RewriteTitle(ctx context.Context, title, description string) (string, error) {
	return s.generator.Generate(ctx, TitlePrompt(title, description))
}

func (s *Suggester) RewriteDescription(ctx context.Context, title, description string) (string, error) {
	return s.generator.Generate(ctx, DescriptionPrompt(title, description))
}

func (s *Suggester) SuggestHashtags(ctx context.Context, title, description string) (string, error) {
	return s.generator.Generate(ctx, HashtagsPrompt(title, description))
}
