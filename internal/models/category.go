package models

import "strings"

// Category identifies one kind of search result.
type Category string

const (
	CategoryJob     Category = "jobs"
	CategoryCompany Category = "companies"
	CategoryPost    Category = "posts"
	CategoryPerson  Category = "people"
	CategoryService Category = "services"
	CategoryGroup   Category = "groups"
	CategoryEvent   Category = "events"
	CategoryCourse  Category = "courses"
)

// categoryOrder is the fixed priority used whenever every category is listed.
var categoryOrder = []Category{
	CategoryJob,
	CategoryPost,
	CategoryCompany,
	CategoryPerson,
	CategoryService,
	CategoryGroup,
	CategoryEvent,
	CategoryCourse,
}

var categoryLabels = map[Category]string{
	CategoryJob:     "Jobs",
	CategoryCompany: "Companies",
	CategoryPost:    "Posts",
	CategoryPerson:  "People",
	CategoryService: "Services",
	CategoryGroup:   "Groups",
	CategoryEvent:   "Events",
	CategoryCourse:  "Courses",
}

// Categories returns every category in display priority order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human readable name, or the raw id for unknown categories.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Filter selects which categories a result list shows: a category id or FilterAll.
type Filter string

// FilterAll is the sentinel meaning "every category".
const FilterAll Filter = "all"

// ParseFilter normalizes raw input. An empty string means FilterAll.
// The second return value is false when the id is neither a category nor "all";
// the normalized value is still returned so callers can apply their own fallback.
func ParseFilter(raw string) (Filter, bool) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return FilterAll, true
	}
	return f, f.Valid()
}

// Valid reports whether f is FilterAll or a known category.
func (f Filter) Valid() bool {
	return f == FilterAll || Category(f).Valid()
}

// IsAll reports whether f is the "all" sentinel.
func (f Filter) IsAll() bool {
	return f == FilterAll
}

// Category returns the category f names. ok is false for FilterAll and unknown ids.
func (f Filter) Category() (Category, bool) {
	c := Category(f)
	return c, c.Valid()
}

// Label returns the chip label for a filter.
func (f Filter) Label() string {
	if f.IsAll() {
		return "All"
	}
	return Category(f).Label()
}
