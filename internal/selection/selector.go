// Package selection projects a category-partitioned catalog onto the result
// list shown for one filter identifier.
package selection

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

// ErrUnknownFilter is returned for an unknown filter id under FallbackReject.
var ErrUnknownFilter = errors.New("unknown filter")

// FallbackPolicy decides what an unknown filter id selects.
type FallbackPolicy string

const (
	// FallbackAll treats an unknown id as "all".
	FallbackAll FallbackPolicy = "all"
	// FallbackPreview shows the first few candidates of the preview categories.
	FallbackPreview FallbackPolicy = "preview"
	// FallbackReject returns ErrUnknownFilter.
	FallbackReject FallbackPolicy = "reject"
)

// AppliedPreview is reported as Result.Applied when FallbackPreview served a
// sample. It is not a selectable filter.
const AppliedPreview models.Filter = "preview"

// ParseFallbackPolicy validates a configured policy name.
func ParseFallbackPolicy(raw string) (FallbackPolicy, error) {
	switch p := FallbackPolicy(raw); p {
	case FallbackAll, FallbackPreview, FallbackReject:
		return p, nil
	default:
		return "", fmt.Errorf("invalid fallback policy %q (want all, preview or reject)", raw)
	}
}

// Facet is the size of one category's set, independent of the applied filter.
type Facet struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
}

// Result is the visible list for a filter.
type Result struct {
	// Filter is the id that was asked for.
	Filter models.Filter
	// Applied is what the selection actually used; differs from Filter after a fallback.
	Applied  models.Filter
	Fallback bool
	Items    []models.Candidate
	Count    int
	Facets   []Facet
}

// Empty reports the zero-result case the caller must render as "no results".
func (r Result) Empty() bool { return r.Count == 0 }

// Selector is safe for concurrent use; it holds no mutable state.
type Selector struct {
	order              []models.Category
	fallback           FallbackPolicy
	previewCategories  []models.Category
	previewPerCategory int
}

// Option configures a Selector.
type Option func(*Selector)

// WithFallback sets the unknown-filter policy. An empty policy keeps the default.
func WithFallback(p FallbackPolicy) Option {
	return func(s *Selector) {
		if p != "" {
			s.fallback = p
		}
	}
}

// WithOrder overrides the concatenation order used for "all".
func WithOrder(order ...models.Category) Option {
	return func(s *Selector) {
		if len(order) > 0 {
			s.order = append([]models.Category(nil), order...)
		}
	}
}

// WithPreview sets how many candidates of which categories FallbackPreview shows.
func WithPreview(perCategory int, categories ...models.Category) Option {
	return func(s *Selector) {
		if perCategory > 0 {
			s.previewPerCategory = perCategory
		}
		if len(categories) > 0 {
			s.previewCategories = append([]models.Category(nil), categories...)
		}
	}
}

// New returns a Selector using the fixed category order and FallbackAll.
func New(opts ...Option) *Selector {
	s := &Selector{
		order:    models.Categories(),
		fallback: FallbackAll,
		previewCategories: []models.Category{
			models.CategoryJob,
			models.CategoryCompany,
			models.CategoryPost,
		},
		previewPerCategory: 2,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fallback returns the configured unknown-filter policy.
func (s *Selector) Fallback() FallbackPolicy { return s.fallback }

// Select computes the visible list for filter. The returned slices never
// alias the input sets.
func (s *Selector) Select(filter models.Filter, sets models.Sets) (Result, error) {
	res := Result{
		Filter:  filter,
		Applied: filter,
		Facets:  s.Facets(sets),
	}

	switch {
	case filter.IsAll():
		res.Items = s.concat(sets)
	case filter.Valid():
		c, _ := filter.Category()
		res.Items = sets.Get(c).Items()
	default:
		switch s.fallback {
		case FallbackReject:
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
		case FallbackPreview:
			res.Items = s.preview(sets)
			res.Applied = AppliedPreview
		default:
			res.Items = s.concat(sets)
			res.Applied = models.FilterAll
		}
		res.Fallback = true
	}

	res.Count = len(res.Items)
	return res, nil
}

// Facets lists every category of the configured order with its size.
func (s *Selector) Facets(sets models.Sets) []Facet {
	return lo.Map(s.order, func(c models.Category, _ int) Facet {
		return Facet{Category: c, Label: c.Label(), Count: sets.Get(c).Len()}
	})
}

func (s *Selector) concat(sets models.Sets) []models.Candidate {
	items := lo.FlatMap(s.order, func(c models.Category, _ int) []models.Candidate {
		return sets.Get(c).Items()
	})
	if items == nil {
		items = []models.Candidate{}
	}
	return items
}

func (s *Selector) preview(sets models.Sets) []models.Candidate {
	items := lo.FlatMap(s.previewCategories, func(c models.Category, _ int) []models.Candidate {
		all := sets.Get(c).Items()
		return all[:min(len(all), s.previewPerCategory)]
	})
	if items == nil {
		items = []models.Candidate{}
	}
	return items
}

var defaultSelector = New()

// Select runs the default selector: fixed order, unknown ids treated as "all".
func Select(filter models.Filter, sets models.Sets) Result {
	res, _ := defaultSelector.Select(filter, sets)
	return res
}
