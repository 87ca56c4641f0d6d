package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-portal-search/internal/search"
	"github.com/justsurfingit/job-portal-search/internal/selection"
	"github.com/justsurfingit/job-portal-search/internal/services"
	"github.com/justsurfingit/job-portal-search/internal/session"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidFilter),
		errors.Is(err, selection.ErrUnknownFilter),
		errors.Is(err, search.ErrInvalidRefinement):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, prefix string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": prefix + err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
}
