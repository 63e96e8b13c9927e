package memory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
)

// ErrNotFound is returned when no startup carries the requested id.
var ErrNotFound = errors.New("startup not found")

// StartupRepository holds the authoritative ordered collection of startups
// in memory. It is the sole owner of the records; callers receive copies.
// Access is serialized with a mutex so the HTTP layer can share one instance.
type StartupRepository struct {
	mu       sync.RWMutex
	startups []domain.Startup
}

// NewStartupRepository creates an empty in-memory repository.
func NewStartupRepository() *StartupRepository {
	return &StartupRepository{}
}

// Find runs the composite filter over the collection, preserving insertion
// order. The full collection comes back when the filters are empty.
func (r *StartupRepository) Find(_ context.Context, filters domain.SearchFilters) ([]domain.Startup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.FilterStartups(r.startups, filters), nil
}

// FindByID returns a copy of the startup with the given id.
func (r *StartupRepository) FindByID(_ context.Context, id string) (*domain.Startup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.startups {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Append inserts the startup at the end of the collection. Id uniqueness is
// caller discipline; ids are generated, not validated here.
func (r *StartupRepository) Append(_ context.Context, startup domain.Startup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startups = append(r.startups, startup)
	return nil
}

// Industries returns the sorted, de-duplicated union of every industry tag.
// Recomputed on each call; the collection is small enough that caching would
// not pay for itself.
func (r *StartupRepository) Industries(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CollectIndustries(r.startups), nil
}

// Len reports the current number of startups.
func (r *StartupRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.startups)
}

type seedFile struct {
	Startups []seedStartup `yaml:"startups"`
}

type seedStartup struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Description  string     `yaml:"description"`
	Website      string     `yaml:"website"`
	Size         string     `yaml:"size"`
	Logo         string     `yaml:"logo"`
	Founded      int        `yaml:"founded"`
	Longitude    float64    `yaml:"longitude"`
	Latitude     float64    `yaml:"latitude"`
	Address      string     `yaml:"address"`
	Industry     []string   `yaml:"industry"`
	IsHiring     bool       `yaml:"isHiring"`
	ProvidesVisa bool       `yaml:"providesVisa"`
	Roles        []seedRole `yaml:"roles"`
}

type seedRole struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Department  string `yaml:"department"`
	Type        string `yaml:"type"`
	Remote      bool   `yaml:"remote"`
	Description string `yaml:"description"`
	ApplyURL    string `yaml:"applyUrl"`
	PostedAt    string `yaml:"postedAt"`
}

// LoadSeed reads a YAML dataset and appends its startups to the collection.
// The file is optional tooling for local development; the directory starts
// empty without it.
func (r *StartupRepository) LoadSeed(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	for i, seed := range file.Startups {
		startup, err := seed.toDomain()
		if err != nil {
			return 0, fmt.Errorf("seed entry %d: %w", i, err)
		}
		if err := r.Append(ctx, startup); err != nil {
			return 0, err
		}
	}
	return len(file.Startups), nil
}

func (s seedStartup) toDomain() (domain.Startup, error) {
	if s.ID == "" {
		return domain.Startup{}, errors.New("id is required")
	}
	if s.Name == "" {
		return domain.Startup{}, errors.New("name is required")
	}

	roles := make([]domain.Role, 0, len(s.Roles))
	for _, r := range s.Roles {
		roleType := domain.RoleType(r.Type)
		if !roleType.Valid() {
			return domain.Startup{}, fmt.Errorf("role %q: unknown type %q", r.Title, r.Type)
		}
		postedAt := time.Now().UTC()
		if r.PostedAt != "" {
			parsed, err := time.Parse(time.RFC3339, r.PostedAt)
			if err != nil {
				return domain.Startup{}, fmt.Errorf("role %q: invalid postedAt: %w", r.Title, err)
			}
			postedAt = parsed
		}
		roles = append(roles, domain.Role{
			ID:          r.ID,
			Title:       r.Title,
			Department:  r.Department,
			Type:        roleType,
			Remote:      r.Remote,
			Description: r.Description,
			ApplyURL:    r.ApplyURL,
			PostedAt:    postedAt,
		})
	}

	return domain.Startup{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Website:     s.Website,
		Size:        s.Size,
		Logo:        s.Logo,
		Founded:     s.Founded,
		Location: domain.Location{
			Longitude: s.Longitude,
			Latitude:  s.Latitude,
			Address:   s.Address,
		},
		Industry:     append([]string{}, s.Industry...),
		IsHiring:     s.IsHiring,
		ProvidesVisa: s.ProvidesVisa,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
