package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-portal-search/internal/models"
	"github.com/justsurfingit/job-portal-search/internal/search"
)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store, err := NewStore(4)
	require.NoError(t, err)

	sess := store.Create()
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.Equal(t, search.Mount(), sess.State)
	assert.Equal(t, search.DefaultRefinement(), sess.Refinement)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	store, err := NewStore(4)
	require.NoError(t, err)

	_, err = store.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_Update(t *testing.T) {
	start := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	store, err := NewStore(4, WithClock(fixedClock(start)))
	require.NoError(t, err)
	sess := store.Create()

	updated, err := store.Update(sess.ID, func(s *Session) error {
		s.State = s.State.SubmitQuery("react")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "react", updated.State.Query)
	assert.True(t, updated.UpdatedAt.After(sess.UpdatedAt))
	assert.Equal(t, sess.CreatedAt, updated.CreatedAt)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestStore_UpdateErrorLeavesSessionUnchanged(t *testing.T) {
	store, err := NewStore(4)
	require.NoError(t, err)
	sess := store.Create()

	boom := errors.New("rejected")
	got, err := store.Update(sess.ID, func(s *Session) error {
		s.State = s.State.SelectFilter("jobs")
		s.Refinement.Industries = append(s.Refinement.Industries, "Finance")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.FilterAll, got.State.SelectedFilter)

	stored, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, stored)
}

func TestStore_UpdateCannotChangeIdentity(t *testing.T) {
	store, err := NewStore(4)
	require.NoError(t, err)
	sess := store.Create()

	got, err := store.Update(sess.ID, func(s *Session) error {
		s.ID = uuid.New()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}

func TestStore_ReturnedCopiesAreIndependent(t *testing.T) {
	store, err := NewStore(4)
	require.NoError(t, err)
	sess := store.Create()

	sess.Refinement.JobTypes = append(sess.Refinement.JobTypes, "Contract")
	sess.State.Query = "mutated"

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Refinement.JobTypes)
	assert.Equal(t, "", got.State.Query)
}

func TestStore_Delete(t *testing.T) {
	store, err := NewStore(4)
	require.NoError(t, err)
	sess := store.Create()

	assert.True(t, store.Delete(sess.ID))
	assert.False(t, store.Delete(sess.ID))

	_, err = store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Update(sess.ID, func(*Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []uuid.UUID
	store, err := NewStore(2, WithEvictHook(func(id uuid.UUID) {
		evicted = append(evicted, id)
	}))
	require.NoError(t, err)

	a := store.Create()
	b := store.Create()

	// touch a so b becomes the oldest
	_, err = store.Get(a.ID)
	require.NoError(t, err)

	c := store.Create()
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, []uuid.UUID{b.ID}, evicted)

	_, err = store.Get(b.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(a.ID)
	assert.NoError(t, err)
	_, err = store.Get(c.ID)
	assert.NoError(t, err)
}

func TestStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	store, err := NewStore(4)
	require.NoError(t, err)
	sess := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(sess.ID, func(s *Session) error {
				s.Refinement.Location += "x"
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.Refinement.Location, 50)
}

func TestNewStore_DefaultCapacity(t *testing.T) {
	store, err := NewStore(0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		store.Create()
	}
	assert.Equal(t, 10, store.Len())
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, err := ParseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("not-a-uuid")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
