package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

func TestLoadSeed(t *testing.T) {
	sets, err := LoadSeed()
	require.NoError(t, err)

	want := map[models.Category]int{
		models.CategoryJob:     4,
		models.CategoryCompany: 2,
		models.CategoryPost:    2,
		models.CategoryPerson:  2,
		models.CategoryService: 2,
		models.CategoryGroup:   2,
		models.CategoryEvent:   2,
		models.CategoryCourse:  2,
	}
	for c, n := range want {
		assert.Equal(t, n, sets.Get(c).Len(), "category %s", c)
	}
	assert.Equal(t, 18, sets.Total())

	job, ok := sets.Get(models.CategoryJob).Items()[0].(models.Job)
	require.True(t, ok)
	assert.Equal(t, "Senior Frontend Developer", job.Title)
	assert.Equal(t, "2 days ago", job.PostedTime)
	assert.Equal(t, []string{"React", "TypeScript", "Tailwind CSS", "Next.js", "GraphQL"}, job.Skills)
	assert.True(t, job.Remote)

	post, ok := sets.Get(models.CategoryPost).Items()[1].(models.Post)
	require.True(t, ok)
	assert.Equal(t, "Alex Chen", post.Author.Name)
	assert.Equal(t, 15, post.Shares)

	company, ok := sets.Get(models.CategoryCompany).Items()[0].(models.Company)
	require.True(t, ok)
	assert.Equal(t, 12, company.OpenJobs)
	assert.InDelta(t, 4.5, company.Rating, 0.001)

	group, ok := sets.Get(models.CategoryGroup).Items()[1].(models.Group)
	require.True(t, ok)
	assert.Equal(t, "Business", group.Topic)
	assert.Equal(t, models.CategoryGroup, group.Category())
}

func TestParseSeed_MissingCategoriesAreEmpty(t *testing.T) {
	sets, err := ParseSeed([]byte(`
[[people]]
id = "7"
name = "Ada Lovelace"
`))
	require.NoError(t, err)
	assert.Equal(t, 1, sets.Get(models.CategoryPerson).Len())
	assert.Len(t, sets, len(models.Categories()))
	assert.Equal(t, 0, sets.Get(models.CategoryJob).Len())
}

func TestParseSeed_DuplicateID(t *testing.T) {
	_, err := ParseSeed([]byte(`
[[events]]
id = "1"
[[events]]
id = "1"
`))
	assert.ErrorIs(t, err, models.ErrDuplicateID)
}

func TestParseSeed_Malformed(t *testing.T) {
	_, err := ParseSeed([]byte(`[[jobs]`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seed TOML")
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[courses]]\nid = \"9\"\ntitle = \"Go in Practice\"\n"), 0o644))

	sets, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, sets.Get(models.CategoryCourse).Len())

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestMemoryProvider(t *testing.T) {
	sets := models.Sets{
		models.CategoryJob: models.MustCategorySet(models.CategoryJob, models.Job{ID: "1"}),
	}
	p := NewMemoryProvider(sets)

	// later changes to the source map are not visible
	sets[models.CategoryJob] = models.EmptySet(models.CategoryJob)

	got, err := p.FetchCategorySet(context.Background(), models.CategoryJob)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())

	empty, err := p.FetchCategorySet(context.Background(), models.CategoryCourse)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestSnapshot(t *testing.T) {
	p, err := NewSeededProvider()
	require.NoError(t, err)

	sets, err := Snapshot(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, sets, 8)
	assert.Equal(t, 18, sets.Total())

	only, err := Snapshot(context.Background(), p, models.CategoryEvent)
	require.NoError(t, err)
	assert.Len(t, only, 1)
	assert.Equal(t, 2, only.Get(models.CategoryEvent).Len())
}

func TestSnapshot_ProviderError(t *testing.T) {
	boom := errors.New("connection refused")
	p := ProviderFunc(func(_ context.Context, c models.Category) (models.CategorySet, error) {
		if c == models.CategoryGroup {
			return models.CategorySet{}, boom
		}
		return models.EmptySet(c), nil
	})

	sets, err := Snapshot(context.Background(), p)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "groups")
	assert.Nil(t, sets)
}
