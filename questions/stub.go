package questions

import (
	"context"
	"fmt"

	"github.com/supertruth/violet/core"
)

// StubFetcher generates deterministic placeholder questions for a term.
// Useful for development and tests without a live search source.
type StubFetcher struct{}

// NewStubFetcher returns a stub question source.
func NewStubFetcher() *StubFetcher {
	return &StubFetcher{}
}

// FetchQuestions returns a fixed question set templated on the term text.
func (f *StubFetcher) FetchQuestions(ctx context.Context, term *core.Term) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []Item{
		{
			Question:    fmt.Sprintf("What are the early symptoms of %s?", term.Text),
			Snippet:     fmt.Sprintf("Early signs of %s can be subtle and vary by age.", term.Text),
			SourceTitle: "Patient Education Library",
			SourceURL:   "https://example.org/library/" + core.NormalizeTermText(term.Text),
			SourceKind:  core.QuestionPeopleAlsoAsk,
		},
		{
			Question:    fmt.Sprintf("How is %s treated?", term.Text),
			Snippet:     fmt.Sprintf("Treatment for %s depends on stage and risk group.", term.Text),
			SourceTitle: "Treatment Overview",
			SourceURL:   "https://example.org/treatment/" + core.NormalizeTermText(term.Text),
			SourceKind:  core.QuestionPeopleAlsoAsk,
		},
		{
			Question:   fmt.Sprintf("%s survival rate", term.Text),
			SourceKind: core.QuestionAutocomplete,
		},
	}, nil
}
