package catalog

import (
	"context"
	"maps"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

// MemoryProvider serves fixed, compiled-in sets. It never fails.
type MemoryProvider struct {
	sets models.Sets
}

// NewMemoryProvider copies sets; later changes to the map do not leak in.
func NewMemoryProvider(sets models.Sets) *MemoryProvider {
	return &MemoryProvider{sets: maps.Clone(sets)}
}

// NewSeededProvider serves the embedded seed catalog.
func NewSeededProvider() (*MemoryProvider, error) {
	sets, err := LoadSeed()
	if err != nil {
		return nil, err
	}
	return NewMemoryProvider(sets), nil
}

// FetchCategorySet returns the stored set, or an empty one for categories it does not hold.
func (m *MemoryProvider) FetchCategorySet(_ context.Context, category models.Category) (models.CategorySet, error) {
	return m.sets.Get(category), nil
}
