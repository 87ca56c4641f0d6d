package dtos

import (
	"time"

	"github.com/justsurfingit/job-portal-search/internal/models"
	"github.com/justsurfingit/job-portal-search/internal/search"
	"github.com/justsurfingit/job-portal-search/internal/selection"
	"github.com/justsurfingit/job-portal-search/internal/services"
)

type SearchQuery struct {
	Query  string `form:"q" binding:"max=256"`
	Filter string `form:"filter" binding:"omitempty,max=32"`
}

type SubmitQueryRequest struct {
	Query string `json:"query" binding:"max=256"`
}

type SelectFilterRequest struct {
	Filter string `json:"filter" binding:"required,filter"`
}

type RefinementRequest struct {
	SalaryRange      [2]int   `json:"salaryRange"`
	JobTypes         []string `json:"jobType" binding:"omitempty,dive,oneof=Full-time Part-time Contract Internship Freelance"`
	ExperienceLevels []string `json:"experienceLevel" binding:"omitempty,dive,oneof=Fresher Mid-level Senior Lead Executive"`
	Location         string   `json:"location" binding:"max=128"`
	Industries       []string `json:"industry" binding:"omitempty,dive,oneof=Technology Healthcare Finance Education Marketing Sales Design Operations"`
	Remote           bool     `json:"remote"`
	SortBy           string   `json:"sortBy" binding:"omitempty,oneof=relevance date salary company"`
}

// Refinement converts the request. An omitted salary range means the default
// slider position; range and duplicate checks happen in search.Refinement.Validate.
func (r RefinementRequest) Refinement() search.Refinement {
	salary := r.SalaryRange
	if salary == [2]int{} {
		salary = search.DefaultRefinement().SalaryRange
	}
	return search.Refinement{
		SalaryRange:      salary,
		JobTypes:         r.JobTypes,
		ExperienceLevels: r.ExperienceLevels,
		Location:         r.Location,
		Industries:       r.Industries,
		Remote:           r.Remote,
		SortBy:           search.SortOption(r.SortBy),
	}
}

type ResultsResponse struct {
	Query    string            `json:"query"`
	Filter   models.Filter     `json:"filter"`
	Applied  models.Filter     `json:"appliedFilter"`
	Fallback bool              `json:"fallback"`
	Count    int               `json:"count"`
	Empty    bool              `json:"empty"`
	Message  string            `json:"message,omitempty"`
	Items    []models.Envelope `json:"items"`
	Facets   []selection.Facet `json:"facets"`
}

const NoResultsMessage = "No results found"

func NewResultsResponse(res services.SearchResult) ResultsResponse {
	out := ResultsResponse{
		Query:    res.Query,
		Filter:   res.Filter,
		Applied:  res.Applied,
		Fallback: res.Fallback,
		Count:    res.Count,
		Empty:    res.Empty(),
		Items:    models.Wrap(res.Items),
		Facets:   res.Facets,
	}
	if out.Empty {
		out.Message = NoResultsMessage
	}
	return out
}

type FilterChip struct {
	ID    models.Filter `json:"id"`
	Label string        `json:"label"`
	Count int           `json:"count"`
}

type CategoriesResponse struct {
	Filters []FilterChip `json:"filters"`
}

func NewCategoriesResponse(facets []selection.Facet) CategoriesResponse {
	total := 0
	chips := make([]FilterChip, 0, len(facets)+1)
	for _, f := range facets {
		total += f.Count
	}
	chips = append(chips, FilterChip{ID: models.FilterAll, Label: models.FilterAll.Label(), Count: total})
	for _, f := range facets {
		chips = append(chips, FilterChip{ID: models.Filter(f.Category), Label: f.Label, Count: f.Count})
	}
	return CategoriesResponse{Filters: chips}
}

type SessionResponse struct {
	ID         string            `json:"id"`
	State      search.State      `json:"state"`
	Refinement search.Refinement `json:"refinement"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
	Results    *ResultsResponse  `json:"results"`
}

func NewSessionResponse(v services.SessionView) SessionResponse {
	out := SessionResponse{
		ID:         v.Session.ID.String(),
		State:      v.Session.State,
		Refinement: v.Session.Refinement,
		CreatedAt:  v.Session.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  v.Session.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if v.Results != nil {
		r := NewResultsResponse(*v.Results)
		out.Results = &r
	}
	return out
}
