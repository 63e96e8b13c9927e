package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
)

// StartupRepository abstracts read/write access to the startup collection.
type StartupRepository interface {
	Find(ctx context.Context, filters domain.SearchFilters) ([]domain.Startup, error)
	FindByID(ctx context.Context, id string) (*domain.Startup, error)
	Append(ctx context.Context, startup domain.Startup) error
	Industries(ctx context.Context) ([]string, error)
}

// Paging controls handler-side pagination over the filtered result.
type Paging struct {
	Page  int
	Limit int
}

// StartupQueryService describes the read use-cases over the directory.
type StartupQueryService interface {
	List(ctx context.Context, filters domain.SearchFilters) ([]domain.Startup, error)
	Detail(ctx context.Context, id string) (*domain.Startup, error)
	Industries(ctx context.Context) ([]string, error)
}

// StartupCommandService handles the single write use-case: submitting a new
// entry through the creation form.
type StartupCommandService interface {
	Submit(ctx context.Context, cmd SubmitStartupCommand) (*domain.Startup, error)
}

// SubmitStartupCommand captures the creation form input.
type SubmitStartupCommand struct {
	Name         string
	Description  string
	Website      string
	Size         string
	Logo         string
	Founded      int
	Location     domain.Location
	Industry     []string
	IsHiring     bool
	ProvidesVisa bool
	Roles        []SubmitRole
}

// SubmitRole is one open position attached to a creation form submission.
type SubmitRole struct {
	Title       string
	Department  string
	Type        domain.RoleType
	Remote      bool
	Description string
	ApplyURL    string
	PostedAt    time.Time
}

type startupQueryService struct {
	repo StartupRepository
}

// NewStartupQueryService creates a new startup query service.
func NewStartupQueryService(repo StartupRepository) StartupQueryService {
	return &startupQueryService{repo: repo}
}

func (s *startupQueryService) List(ctx context.Context, filters domain.SearchFilters) ([]domain.Startup, error) {
	return s.repo.Find(ctx, filters)
}

func (s *startupQueryService) Detail(ctx context.Context, id string) (*domain.Startup, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *startupQueryService) Industries(ctx context.Context) ([]string, error) {
	return s.repo.Industries(ctx)
}

type startupCommandService struct {
	repo StartupRepository
}

// NewStartupCommandService creates a new startup command service.
func NewStartupCommandService(repo StartupRepository) StartupCommandService {
	return &startupCommandService{repo: repo}
}

// Submit builds a Startup from the command, assigning fresh ids to the
// record and every role, and appends it to the repository. Role timestamps
// default to the submission time.
func (s *startupCommandService) Submit(ctx context.Context, cmd SubmitStartupCommand) (*domain.Startup, error) {
	now := time.Now().UTC()

	roles := make([]domain.Role, 0, len(cmd.Roles))
	for _, r := range cmd.Roles {
		postedAt := r.PostedAt
		if postedAt.IsZero() {
			postedAt = now
		}
		roles = append(roles, domain.Role{
			ID:          uuid.NewString(),
			Title:       r.Title,
			Department:  r.Department,
			Type:        r.Type,
			Remote:      r.Remote,
			Description: r.Description,
			ApplyURL:    r.ApplyURL,
			PostedAt:    postedAt,
		})
	}

	startup := domain.Startup{
		ID:           uuid.NewString(),
		Name:         cmd.Name,
		Description:  cmd.Description,
		Website:      cmd.Website,
		Size:         cmd.Size,
		Logo:         cmd.Logo,
		Founded:      cmd.Founded,
		Location:     cmd.Location,
		Industry:     append([]string{}, cmd.Industry...),
		IsHiring:     cmd.IsHiring,
		ProvidesVisa: cmd.ProvidesVisa,
		Roles:        roles,
		CreatedAt:    now,
	}

	if err := s.repo.Append(ctx, startup); err != nil {
		return nil, err
	}
	return &startup, nil
}
