package search

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrInvalidRefinement is returned for out-of-range or unknown refinement values.
var ErrInvalidRefinement = errors.New("invalid refinement")

// SortOption is the order a job listing asks for.
type SortOption string

const (
	SortRelevance SortOption = "relevance"
	SortDate      SortOption = "date"
	SortSalary    SortOption = "salary"
	SortCompany   SortOption = "company"
)

// Salary slider bounds, in whole currency units per year.
const (
	SalaryFloor      = 20000
	SalaryCeiling    = 200000
	SalaryStep       = 5000
	DefaultSalaryMin = 30000
	DefaultSalaryMax = 150000
)

// FacetGroup names a multi-select refinement list.
type FacetGroup string

const (
	FacetJobType    FacetGroup = "jobType"
	FacetExperience FacetGroup = "experienceLevel"
	FacetIndustry   FacetGroup = "industry"
)

var (
	JobTypes         = []string{"Full-time", "Part-time", "Contract", "Internship", "Freelance"}
	ExperienceLevels = []string{"Fresher", "Mid-level", "Senior", "Lead", "Executive"}
	Industries       = []string{"Technology", "Healthcare", "Finance", "Education", "Marketing", "Sales", "Design", "Operations"}
	SortOptions      = []SortOption{SortRelevance, SortDate, SortSalary, SortCompany}
)

// Refinement is the secondary job filter set. It travels with a search
// session but is not applied to result selection.
type Refinement struct {
	SalaryRange      [2]int     `json:"salaryRange"`
	JobTypes         []string   `json:"jobType"`
	ExperienceLevels []string   `json:"experienceLevel"`
	Location         string     `json:"location"`
	Industries       []string   `json:"industry"`
	Remote           bool       `json:"remote"`
	SortBy           SortOption `json:"sortBy"`
}

// DefaultRefinement is the state after "clear all filters".
func DefaultRefinement() Refinement {
	return Refinement{
		SalaryRange:      [2]int{DefaultSalaryMin, DefaultSalaryMax},
		JobTypes:         []string{},
		ExperienceLevels: []string{},
		Location:         "",
		Industries:       []string{},
		Remote:           false,
		SortBy:           SortRelevance,
	}
}

// ClearAll drops every selection.
func (Refinement) ClearAll() Refinement {
	return DefaultRefinement()
}

// Clone returns a deep copy.
func (r Refinement) Clone() Refinement {
	r.JobTypes = slices.Clone(r.JobTypes)
	r.ExperienceLevels = slices.Clone(r.ExperienceLevels)
	r.Industries = slices.Clone(r.Industries)
	return r
}

// Toggle adds value to the group's list, or removes it if already selected.
// Selection order is kept.
func (r Refinement) Toggle(group FacetGroup, value string) (Refinement, error) {
	allowed, err := facetValues(group)
	if err != nil {
		return r, err
	}
	if !slices.Contains(allowed, value) {
		return r, fmt.Errorf("%w: %s %q", ErrInvalidRefinement, group, value)
	}

	out := r.Clone()
	list := out.list(group)
	if lo.Contains(*list, value) {
		*list = lo.Without(*list, value)
	} else {
		*list = append(*list, value)
	}
	return out, nil
}

// WithSalaryRange sets the slider after checking bounds and step.
func (r Refinement) WithSalaryRange(low, high int) (Refinement, error) {
	out := r.Clone()
	out.SalaryRange = [2]int{low, high}
	if err := validateSalary(out.SalaryRange); err != nil {
		return r, err
	}
	return out, nil
}

// Validate checks every field against the allowed values.
func (r Refinement) Validate() error {
	if err := validateSalary(r.SalaryRange); err != nil {
		return err
	}
	for _, group := range []FacetGroup{FacetJobType, FacetExperience, FacetIndustry} {
		allowed, _ := facetValues(group)
		selected := *r.list(group)
		for _, v := range selected {
			if !slices.Contains(allowed, v) {
				return fmt.Errorf("%w: %s %q", ErrInvalidRefinement, group, v)
			}
		}
		if len(lo.Uniq(selected)) != len(selected) {
			return fmt.Errorf("%w: %s has duplicate values", ErrInvalidRefinement, group)
		}
	}
	if !slices.Contains(SortOptions, r.SortBy) {
		return fmt.Errorf("%w: sortBy %q", ErrInvalidRefinement, r.SortBy)
	}
	return nil
}

// Normalize fills nil lists and an empty sort option with defaults.
func (r Refinement) Normalize() Refinement {
	out := r.Clone()
	if out.JobTypes == nil {
		out.JobTypes = []string{}
	}
	if out.ExperienceLevels == nil {
		out.ExperienceLevels = []string{}
	}
	if out.Industries == nil {
		out.Industries = []string{}
	}
	if out.SortBy == "" {
		out.SortBy = SortRelevance
	}
	return out
}

func (r *Refinement) list(group FacetGroup) *[]string {
	switch group {
	case FacetJobType:
		return &r.JobTypes
	case FacetExperience:
		return &r.ExperienceLevels
	default:
		return &r.Industries
	}
}

func facetValues(group FacetGroup) ([]string, error) {
	switch group {
	case FacetJobType:
		return JobTypes, nil
	case FacetExperience:
		return ExperienceLevels, nil
	case FacetIndustry:
		return Industries, nil
	default:
		return nil, fmt.Errorf("%w: unknown facet group %q", ErrInvalidRefinement, group)
	}
}

func validateSalary(r [2]int) error {
	low, high := r[0], r[1]
	switch {
	case low < SalaryFloor || high > SalaryCeiling:
		return fmt.Errorf("%w: salary range must be within %d..%d", ErrInvalidRefinement, SalaryFloor, SalaryCeiling)
	case low > high:
		return fmt.Errorf("%w: salary min %d exceeds max %d", ErrInvalidRefinement, low, high)
	case low%SalaryStep != 0 || high%SalaryStep != 0:
		return fmt.Errorf("%w: salary values must be multiples of %d", ErrInvalidRefinement, SalaryStep)
	}
	return nil
}
