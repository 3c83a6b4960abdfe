package search

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/eabolaji/worldnews/internal/news"
)

// Result is one search hit with its relevance score.
type Result struct {
	Article news.Article
	Score   float64
}

// Engine indexes the currently fetched batch in memory. Articles are
// session state only, so the whole index is rebuilt on every fetch and
// nothing touches disk.
type Engine struct {
	mu       sync.RWMutex
	idx      bleve.Index
	articles []news.Article
}

func NewEngine() (*Engine, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}
	return &Engine{idx: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = true
	title.IncludeTermVectors = true

	abstract := bleve.NewTextFieldMapping()
	abstract.Analyzer = standard.Name
	abstract.Store = true

	byline := bleve.NewTextFieldMapping()
	byline.Analyzer = standard.Name
	byline.Store = false

	dm.AddFieldMappingsAt("title", title)
	dm.AddFieldMappingsAt("abstract", abstract)
	dm.AddFieldMappingsAt("byline", byline)

	im.DefaultMapping = dm
	return im
}

// Index replaces the indexed batch. Doc IDs are positional; the API
// guarantees no stable article identifier.
func (e *Engine) Index(articles []news.Article) error {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("rebuilding search index: %w", err)
	}

	batch := idx.NewBatch()
	for i, a := range articles {
		_ = batch.Index(strconv.Itoa(i), map[string]any{
			"title":    a.Title,
			"abstract": a.Abstract,
			"byline":   a.Byline,
		})
	}
	if err := idx.Batch(batch); err != nil {
		return fmt.Errorf("indexing articles: %w", err)
	}

	e.mu.Lock()
	old := e.idx
	e.idx = idx
	e.articles = append([]news.Article(nil), articles...)
	e.mu.Unlock()

	if old != nil {
		_ = old.Close()
	}
	return nil
}

// Search runs boosted match and prefix queries over title, abstract and
// byline, returning up to limit hits by descending score.
func (e *Engine) Search(query string, limit int) ([]Result, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []Result{}, nil
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return []Result{}, nil
	}

	var qs []bleveQuery.Query
	for _, tok := range tokens {
		qt := bleve.NewMatchQuery(tok)
		qt.SetField("title")
		qt.SetBoost(4.0)
		qs = append(qs, qt)

		qtp := bleve.NewPrefixQuery(strings.ToLower(tok))
		qtp.SetField("title")
		qtp.SetBoost(3.5)
		qs = append(qs, qtp)

		qa := bleve.NewMatchQuery(tok)
		qa.SetField("abstract")
		qa.SetBoost(2.0)
		qs = append(qs, qa)

		qap := bleve.NewPrefixQuery(strings.ToLower(tok))
		qap.SetField("abstract")
		qap.SetBoost(1.8)
		qs = append(qs, qap)

		qb := bleve.NewMatchQuery(tok)
		qb.SetField("byline")
		qb.SetBoost(1.0)
		qs = append(qs, qb)
	}

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(qs...))
	if limit <= 0 {
		limit = 20
	}
	req.Size = limit

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.idx == nil {
		return []Result{}, nil
	}
	res, err := e.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		pos, convErr := strconv.Atoi(hit.ID)
		if convErr != nil || pos < 0 || pos >= len(e.articles) {
			continue
		}
		results = append(results, Result{Article: e.articles[pos], Score: hit.Score})
	}
	return results, nil
}

// DocCount reports the number of indexed articles.
func (e *Engine) DocCount() (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.idx == nil {
		return 0, nil
	}
	n, err := e.idx.DocCount()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.idx == nil {
		return nil
	}
	err := e.idx.Close()
	e.idx = nil
	return err
}

func tokenize(query string) []string {
	fields := strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
