package news

import "testing"

func sampleArticles() []Article {
	return []Article{
		{Title: "Mars rover finds ice", Abstract: "A discovery on the red planet"},
		{Title: "Markets rally", Abstract: "Stocks climb on earnings"},
		{Title: "Local election results", Abstract: "Ice storms delayed several counts"},
	}
}

func TestFilter_EmptyTermReturnsInput(t *testing.T) {
	articles := sampleArticles()

	got := Filter(articles, "")
	if len(got) != len(articles) {
		t.Fatalf("expected %d articles, got %d", len(articles), len(got))
	}

	got = Filter(articles, "   ")
	if len(got) != len(articles) {
		t.Errorf("whitespace-only term should behave like empty, got %d articles", len(got))
	}
}

func TestFilter_MatchesTitleOrAbstract(t *testing.T) {
	articles := sampleArticles()

	got := Filter(articles, "ice")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	// Relative order is preserved.
	if got[0].Title != "Mars rover finds ice" || got[1].Title != "Local election results" {
		t.Errorf("filter reordered results: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	articles := sampleArticles()

	upper := Filter(articles, "MARS")
	lower := Filter(articles, "mars")
	if len(upper) != 1 || len(lower) != 1 {
		t.Fatalf("expected 1 match for both cases, got %d and %d", len(upper), len(lower))
	}
	if upper[0].Title != lower[0].Title {
		t.Errorf("case changed the match: %q vs %q", upper[0].Title, lower[0].Title)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(sampleArticles(), "zebra")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	articles := sampleArticles()
	before := articles[1].Title

	_ = Filter(articles, "ice")

	if articles[1].Title != before {
		t.Error("filter mutated the input slice")
	}
	if len(articles) != 3 {
		t.Errorf("filter changed input length to %d", len(articles))
	}
}
