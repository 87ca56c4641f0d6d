package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned when a set is built for a category outside the enumeration.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrCategoryMismatch is returned when a candidate is added to a set of another category.
	ErrCategoryMismatch = errors.New("candidate category does not match set")

	// ErrDuplicateID is returned when two candidates of one set share an id.
	ErrDuplicateID = errors.New("duplicate candidate id")
)

// CategorySet is the ordered list of candidates of exactly one category.
// Insertion order is display order.
type CategorySet struct {
	category Category
	items    []Candidate
}

// NewCategorySet builds a set, rejecting foreign categories and duplicate ids.
func NewCategorySet(category Category, items ...Candidate) (CategorySet, error) {
	if !category.Valid() {
		return CategorySet{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]Candidate, 0, len(items))
	for i, item := range items {
		if item == nil {
			return CategorySet{}, fmt.Errorf("%s[%d]: nil candidate", category, i)
		}
		if item.Category() != category {
			return CategorySet{}, fmt.Errorf("%w: %s[%d] is %s", ErrCategoryMismatch, category, i, item.Category())
		}
		id := item.CandidateID()
		if _, dup := seen[id]; dup {
			return CategorySet{}, fmt.Errorf("%w: %s id %q", ErrDuplicateID, category, id)
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return CategorySet{category: category, items: out}, nil
}

// MustCategorySet is NewCategorySet for literals known to be valid; it panics otherwise.
func MustCategorySet(category Category, items ...Candidate) CategorySet {
	set, err := NewCategorySet(category, items...)
	if err != nil {
		panic(err)
	}
	return set
}

// EmptySet returns a set with no candidates.
func EmptySet(category Category) CategorySet {
	return CategorySet{category: category}
}

func (s CategorySet) Category() Category { return s.category }

func (s CategorySet) Len() int { return len(s.items) }

// Items returns a copy of the candidates in stored order.
func (s CategorySet) Items() []Candidate {
	out := make([]Candidate, len(s.items))
	copy(out, s.items)
	return out
}

// Sets maps each category to its candidates. A missing key reads as an empty set.
type Sets map[Category]CategorySet

// Get returns the set for c, or an empty one.
func (s Sets) Get(c Category) CategorySet {
	if set, ok := s[c]; ok {
		return set
	}
	return EmptySet(c)
}

// Total is the number of candidates across every category.
func (s Sets) Total() int {
	n := 0
	for _, set := range s {
		n += set.Len()
	}
	return n
}
