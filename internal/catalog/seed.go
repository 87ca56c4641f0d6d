package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/justsurfingit/job-portal-search/internal/models"
)

//go:embed seed.toml
var seedTOML []byte

type seedFile struct {
	Jobs      []models.Job     `toml:"jobs"`
	Companies []models.Company `toml:"companies"`
	Posts     []models.Post    `toml:"posts"`
	People    []models.Person  `toml:"people"`
	Services  []models.Service `toml:"services"`
	Groups    []models.Group   `toml:"groups"`
	Events    []models.Event   `toml:"events"`
	Courses   []models.Course  `toml:"courses"`
}

// LoadSeed parses the embedded seed catalog.
func LoadSeed() (models.Sets, error) {
	return ParseSeed(seedTOML)
}

// LoadSeedFile parses a seed catalog from disk.
func LoadSeedFile(path string) (models.Sets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a TOML catalog with one array of tables per category.
// Every category is present in the result, empty when the file omits it.
func ParseSeed(data []byte) (models.Sets, error) {
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed TOML: %w", err)
	}

	raw := map[models.Category][]models.Candidate{
		models.CategoryJob:     asCandidates(f.Jobs),
		models.CategoryCompany: asCandidates(f.Companies),
		models.CategoryPost:    asCandidates(f.Posts),
		models.CategoryPerson:  asCandidates(f.People),
		models.CategoryService: asCandidates(f.Services),
		models.CategoryGroup:   asCandidates(f.Groups),
		models.CategoryEvent:   asCandidates(f.Events),
		models.CategoryCourse:  asCandidates(f.Courses),
	}

	sets := make(models.Sets, len(raw))
	for c, items := range raw {
		set, err := models.NewCategorySet(c, items...)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
		sets[c] = set
	}
	return sets, nil
}

func asCandidates[T models.Candidate](items []T) []models.Candidate {
	out := make([]models.Candidate, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
