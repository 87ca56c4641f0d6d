// Package catalog supplies the candidate sets search selects from.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

// Provider returns the candidates of one category in display order.
type Provider interface {
	FetchCategorySet(ctx context.Context, category models.Category) (models.CategorySet, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, category models.Category) (models.CategorySet, error)

func (f ProviderFunc) FetchCategorySet(ctx context.Context, category models.Category) (models.CategorySet, error) {
	return f(ctx, category)
}

// Snapshot fetches the given categories (all of them when none are named)
// concurrently and returns the first error encountered.
func Snapshot(ctx context.Context, p Provider, categories ...models.Category) (models.Sets, error) {
	if len(categories) == 0 {
		categories = models.Categories()
	}

	var mu sync.Mutex
	sets := make(models.Sets, len(categories))

	g, ctx := errgroup.WithContext(ctx)
	for _, c := range categories {
		g.Go(func() error {
			set, err := p.FetchCategorySet(ctx, c)
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", c, err)
			}
			mu.Lock()
			sets[c] = set
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
