package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-portal-search/internal/dtos"
	"github.com/justsurfingit/job-portal-search/internal/models"
	"github.com/justsurfingit/job-portal-search/internal/services"
)

// SearchHandler serves stateless searches and the filter chip bar.
type SearchHandler struct {
	Service *services.SearchService
}

func NewSearchHandler(s *services.SearchService) *SearchHandler {
	return &SearchHandler{Service: s}
}

// ListCategories is the GET /categories endpoint
func (h *SearchHandler) ListCategories(c *gin.Context) {
	facets, err := h.Service.Facets(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to load categories: ", err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewCategoriesResponse(facets))
}

// Search is the GET /search?q=&filter= endpoint. Unknown filters go through
// the configured fallback policy instead of failing binding.
func (h *SearchHandler) Search(c *gin.Context) {
	var req dtos.SearchQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	filter, _ := models.ParseFilter(req.Filter)
	res, err := h.Service.Search(c.Request.Context(), req.Query, filter)
	if err != nil {
		respondError(c, "Search failed: ", err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewResultsResponse(res))
}
