// Package search holds the per-view search state and the transitions user
// actions apply to it.
//
// Transitions never fail. An action whose precondition does not hold (a blank
// query, an unknown filter id) leaves the state as it was, so SelectedFilter is
// always a category id or "all".
package search

import (
	"strings"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

// State is what a search view shows: the submitted query, the selected filter
// chip and whether the results panel is expanded.
type State struct {
	Query          string        `json:"query"`
	SelectedFilter models.Filter `json:"selectedFilter"`
	IsExpanded     bool          `json:"isExpanded"`
}

// Mount returns the state a view starts with.
func Mount() State {
	return State{Query: "", SelectedFilter: models.FilterAll, IsExpanded: false}
}

// Action is a user event applied by Reduce.
type Action interface {
	apply(State) State
}

// SubmitQuery sets the query and expands the panel when Query is not blank.
type SubmitQuery struct {
	Query string
}

// SelectFilter changes the filter chip; query and expansion are untouched.
type SelectFilter struct {
	Filter models.Filter
}

// Clear resets the view to its mount state.
type Clear struct{}

func (a SubmitQuery) apply(s State) State {
	if strings.TrimSpace(a.Query) == "" {
		return s
	}
	s.Query = a.Query
	s.IsExpanded = true
	return s
}

func (a SelectFilter) apply(s State) State {
	if !a.Filter.Valid() {
		return s
	}
	s.SelectedFilter = a.Filter
	return s
}

func (Clear) apply(State) State {
	return Mount()
}

// Reduce applies a to s and returns the new state. A nil action is a no-op.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// Replay folds actions over the mount state.
func Replay(actions ...Action) State {
	s := Mount()
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func (s State) SubmitQuery(q string) State { return Reduce(s, SubmitQuery{Query: q}) }

func (s State) SelectFilter(f models.Filter) State { return Reduce(s, SelectFilter{Filter: f}) }

func (s State) Clear() State { return Reduce(s, Clear{}) }

// HasQuery reports whether a query has been submitted; results are only shown then.
func (s State) HasQuery() bool { return s.Query != "" }
