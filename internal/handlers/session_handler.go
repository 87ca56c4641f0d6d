package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/justsurfingit/job-portal-search/internal/dtos"
	"github.com/justsurfingit/job-portal-search/internal/services"
	"github.com/justsurfingit/job-portal-search/internal/session"
)

// SessionHandler exposes the search view lifecycle.
type SessionHandler struct {
	Sessions *services.SessionService
}

func NewSessionHandler(s *services.SessionService) *SessionHandler {
	return &SessionHandler{Sessions: s}
}

// Mount is the POST /sessions endpoint
func (h *SessionHandler) Mount(c *gin.Context) {
	v, err := h.Sessions.Mount(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to mount session: ", err)
		return
	}
	c.JSON(http.StatusCreated, dtos.NewSessionResponse(v))
}

// Get is the GET /sessions/:id endpoint
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	v, err := h.Sessions.View(c.Request.Context(), id)
	h.respond(c, v, err)
}

func (h *SessionHandler) SubmitQuery(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dtos.SubmitQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.Sessions.SubmitQuery(c.Request.Context(), id, req.Query)
	h.respond(c, v, err)
}

func (h *SessionHandler) SelectFilter(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dtos.SelectFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.Sessions.SelectFilter(c.Request.Context(), id, req.Filter)
	h.respond(c, v, err)
}

func (h *SessionHandler) Clear(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	v, err := h.Sessions.Clear(c.Request.Context(), id)
	h.respond(c, v, err)
}

// ApplyRefinement is the PUT /sessions/:id/refinement endpoint
func (h *SessionHandler) ApplyRefinement(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req dtos.RefinementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.Sessions.ApplyRefinement(c.Request.Context(), id, req.Refinement())
	h.respond(c, v, err)
}

func (h *SessionHandler) ClearRefinement(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	v, err := h.Sessions.ClearRefinement(c.Request.Context(), id)
	h.respond(c, v, err)
}

// Unmount is the DELETE /sessions/:id endpoint
func (h *SessionHandler) Unmount(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.Sessions.Unmount(c.Request.Context(), id); err != nil {
		respondError(c, "", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) respond(c *gin.Context, v services.SessionView, err error) {
	if err != nil {
		respondError(c, "", err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewSessionResponse(v))
}

// sessionID writes a 404 and returns false when the path id is malformed.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := session.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, "", err)
		return uuid.Nil, false
	}
	return id, true
}
