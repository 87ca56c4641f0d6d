package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

// Store serves the catalog from Postgres. It satisfies catalog.Provider.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// FetchCategorySet loads one category ordered by position.
func (s *Store) FetchCategorySet(ctx context.Context, category models.Category) (models.CategorySet, error) {
	var entries []models.CatalogEntry
	err := s.DB.WithContext(ctx).
		Where("category = ?", category).
		Order("position ASC").
		Find(&entries).Error
	if err != nil {
		return models.CategorySet{}, fmt.Errorf("failed to load %s: %w", category, err)
	}

	items := make([]models.Candidate, 0, len(entries))
	for _, e := range entries {
		c, err := e.Candidate()
		if err != nil {
			return models.CategorySet{}, fmt.Errorf("entry %s/%s: %w", e.Category, e.ID, err)
		}
		items = append(items, c)
	}
	return models.NewCategorySet(category, items...)
}

// Seed replaces the stored rows of every category present in sets.
// All categories are rewritten in a single transaction; positions follow slice order.
func (s *Store) Seed(ctx context.Context, sets models.Sets) (int, error) {
	written := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range models.Categories() {
			set, ok := sets[c]
			if !ok {
				continue
			}
			if err := tx.Where("category = ?", c).Delete(&models.CatalogEntry{}).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", c, err)
			}
			if set.Len() == 0 {
				continue
			}

			entries := make([]models.CatalogEntry, 0, set.Len())
			for i, item := range set.Items() {
				e, err := models.NewCatalogEntry(item, i)
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}
			if err := tx.Create(&entries).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", c, err)
			}
			written += len(entries)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

// Counts returns the number of stored rows per category.
func (s *Store) Counts(ctx context.Context) (map[models.Category]int64, error) {
	var rows []struct {
		Category models.Category
		Count    int64
	}
	err := s.DB.WithContext(ctx).
		Model(&models.CatalogEntry{}).
		Select("category, count(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}

	out := make(map[models.Category]int64, len(models.Categories()))
	for _, c := range models.Categories() {
		out[c] = 0
	}
	for _, r := range rows {
		out[r.Category] = r.Count
	}
	return out, nil
}
