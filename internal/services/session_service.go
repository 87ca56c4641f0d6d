package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/justsurfingit/job-portal-search/internal/models"
	"github.com/justsurfingit/job-portal-search/internal/search"
	"github.com/justsurfingit/job-portal-search/internal/session"
)

// ErrInvalidFilter is returned when a session is asked to select a filter
// that is neither a category nor "all".
var ErrInvalidFilter = errors.New("invalid filter")

// SessionView is what a mounted view renders. Results stay nil until a query
// has been submitted.
type SessionView struct {
	Session session.Session
	Results *SearchResult
}

// SessionService drives the search state machine of mounted views.
type SessionService struct {
	Store  *session.Store
	Search *SearchService
	Logger *slog.Logger
}

func NewSessionService(store *session.Store, searchSvc *SearchService, logger *slog.Logger) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{Store: store, Search: searchSvc, Logger: logger}
}

// Mount opens a session in the initial state.
func (s *SessionService) Mount(ctx context.Context) (SessionView, error) {
	sess := s.Store.Create()
	s.Logger.Info("session mounted", "session", sess.ID, "live", s.Store.Len())
	return s.view(ctx, sess)
}

// View returns the session and, once a query is set, its results.
func (s *SessionService) View(ctx context.Context, id uuid.UUID) (SessionView, error) {
	sess, err := s.Store.Get(id)
	if err != nil {
		return SessionView{}, err
	}
	return s.view(ctx, sess)
}

// SubmitQuery applies submitQuery. A blank query is accepted and changes nothing.
func (s *SessionService) SubmitQuery(ctx context.Context, id uuid.UUID, query string) (SessionView, error) {
	return s.transition(ctx, id, "submit_query", func(sess *session.Session) error {
		sess.State = search.Reduce(sess.State, search.SubmitQuery{Query: query})
		return nil
	})
}

// SelectFilter applies selectFilter. Unknown ids are rejected so the stored
// filter is always valid.
func (s *SessionService) SelectFilter(ctx context.Context, id uuid.UUID, raw string) (SessionView, error) {
	filter, ok := models.ParseFilter(raw)
	if !ok {
		return SessionView{}, fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
	}
	return s.transition(ctx, id, "select_filter", func(sess *session.Session) error {
		sess.State = search.Reduce(sess.State, search.SelectFilter{Filter: filter})
		return nil
	})
}

// Clear resets the search state to its mount value. Refinement is kept.
func (s *SessionService) Clear(ctx context.Context, id uuid.UUID) (SessionView, error) {
	return s.transition(ctx, id, "clear", func(sess *session.Session) error {
		sess.State = search.Reduce(sess.State, search.Clear{})
		return nil
	})
}

// ApplyRefinement replaces the session's refinement after validation.
func (s *SessionService) ApplyRefinement(ctx context.Context, id uuid.UUID, r search.Refinement) (SessionView, error) {
	r = r.Normalize()
	if err := r.Validate(); err != nil {
		return SessionView{}, err
	}
	return s.transition(ctx, id, "apply_refinement", func(sess *session.Session) error {
		sess.Refinement = r
		return nil
	})
}

// ClearRefinement restores the default refinement.
func (s *SessionService) ClearRefinement(ctx context.Context, id uuid.UUID) (SessionView, error) {
	return s.transition(ctx, id, "clear_refinement", func(sess *session.Session) error {
		sess.Refinement = sess.Refinement.ClearAll()
		return nil
	})
}

// Unmount drops the session.
func (s *SessionService) Unmount(_ context.Context, id uuid.UUID) error {
	if !s.Store.Delete(id) {
		return session.ErrSessionNotFound
	}
	s.Logger.Info("session unmounted", "session", id, "live", s.Store.Len())
	return nil
}

func (s *SessionService) transition(ctx context.Context, id uuid.UUID, name string, fn func(*session.Session) error) (SessionView, error) {
	sess, err := s.Store.Update(id, fn)
	if err != nil {
		return SessionView{}, err
	}
	s.Logger.Debug("session transition",
		"session", id,
		"transition", name,
		"query", sess.State.Query,
		"filter", sess.State.SelectedFilter,
		"expanded", sess.State.IsExpanded,
	)
	return s.view(ctx, sess)
}

func (s *SessionService) view(ctx context.Context, sess session.Session) (SessionView, error) {
	v := SessionView{Session: sess}
	if !sess.State.HasQuery() {
		return v, nil
	}
	res, err := s.Search.Search(ctx, sess.State.Query, sess.State.SelectedFilter)
	if err != nil {
		return SessionView{}, err
	}
	v.Results = &res
	return v, nil
}
