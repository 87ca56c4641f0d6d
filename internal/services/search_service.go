package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/justsurfingit/job-portal-search/internal/catalog"
	"github.com/justsurfingit/job-portal-search/internal/models"
	"github.com/justsurfingit/job-portal-search/internal/selection"
)

// SearchService answers a query/filter pair from the catalog. The query is
// echoed back; it does not rank or narrow the results.
type SearchService struct {
	Provider catalog.Provider
	Selector *selection.Selector
	Logger   *slog.Logger
}

func NewSearchService(p catalog.Provider, sel *selection.Selector, logger *slog.Logger) *SearchService {
	if sel == nil {
		sel = selection.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{Provider: p, Selector: sel, Logger: logger}
}

// SearchResult is a selection together with the query it was made for.
type SearchResult struct {
	Query string
	selection.Result
}

// Search snapshots the catalog and selects the list for filter.
func (s *SearchService) Search(ctx context.Context, query string, filter models.Filter) (SearchResult, error) {
	sets, err := catalog.Snapshot(ctx, s.Provider)
	if err != nil {
		s.Logger.Error("catalog snapshot failed", "error", err)
		return SearchResult{}, err
	}

	res, err := s.Selector.Select(filter, sets)
	if err != nil {
		return SearchResult{}, err
	}
	if res.Fallback {
		s.Logger.Warn("unknown filter, applied fallback",
			"filter", filter, "policy", s.Selector.Fallback(), "count", res.Count)
	}
	s.Logger.Debug("search completed", "query", query, "filter", res.Applied, "count", res.Count)
	return SearchResult{Query: query, Result: res}, nil
}

// Facets returns every category with its current size.
func (s *SearchService) Facets(ctx context.Context) ([]selection.Facet, error) {
	sets, err := catalog.Snapshot(ctx, s.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to load facets: %w", err)
	}
	return s.Selector.Facets(sets), nil
}
