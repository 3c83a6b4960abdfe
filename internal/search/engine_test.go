package search

import (
	"testing"

	"github.com/eabolaji/worldnews/internal/news"
)

func testBatch() []news.Article {
	return []news.Article{
		{Title: "Rover lands on Mars", Abstract: "NASA confirms touchdown", Byline: "By Jane Doe"},
		{Title: "Markets slide", Abstract: "Tech stocks drag indexes lower", Byline: "By John Roe"},
		{Title: "Mars mission budget grows", Abstract: "Congress debates funding", Byline: "By Jane Doe"},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if err := engine.Index(testBatch()); err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	return engine
}

func TestEngine_SearchTitle(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("mars", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 hits for mars, got %d", len(results))
	}
	for _, r := range results {
		if r.Score <= 0 {
			t.Errorf("hit %q has non-positive score", r.Article.Title)
		}
	}
}

func TestEngine_SearchAbstract(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("stocks", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 hit for stocks, got %d", len(results))
	}
	if results[0].Article.Title != "Markets slide" {
		t.Errorf("unexpected hit %q", results[0].Article.Title)
	}
}

func TestEngine_ShortQueryReturnsNothing(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.Search("m", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("single-character query should return no hits, got %d", len(results))
	}
}

func TestEngine_ReindexReplacesBatch(t *testing.T) {
	engine := newTestEngine(t)

	if err := engine.Index([]news.Article{
		{Title: "Fresh electons coverage", Abstract: "Polling day"},
	}); err != nil {
		t.Fatalf("Index() error = %v", err)
	}

	results, err := engine.Search("mars", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("old batch should be gone after reindex, got %d hits", len(results))
	}

	count, err := engine.DocCount()
	if err != nil {
		t.Fatalf("DocCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 indexed doc, got %d", count)
	}
}

func TestEngine_LimitRespected(t *testing.T) {
	engine, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}

	batch := make([]news.Article, 30)
	for i := range batch {
		batch[i] = news.Article{Title: "Weather update", Abstract: "Heavy rain expected"}
	}
	if err := engine.Index(batch); err != nil {
		t.Fatal(err)
	}

	results, err := engine.Search("weather", 5)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) > 5 {
		t.Errorf("expected at most 5 hits, got %d", len(results))
	}
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("mars, rover! 2026")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if tokens[0] != "mars" || tokens[1] != "rover" || tokens[2] != "2026" {
		t.Errorf("unexpected tokens %v", tokens)
	}
}
