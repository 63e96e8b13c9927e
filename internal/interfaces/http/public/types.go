package public

import (
	"time"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
	"github.com/ShuvayuX/paris-startup-map/internal/maprender"
)

type locationPayload struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Address   string  `json:"address,omitempty"`
}

type rolePayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Department  string `json:"department,omitempty"`
	Type        string `json:"type"`
	Remote      bool   `json:"remote"`
	Description string `json:"description,omitempty"`
	ApplyURL    string `json:"applyUrl,omitempty"`
	PostedAt    string `json:"postedAt"`
}

type startupSummaryResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Logo         string          `json:"logo,omitempty"`
	Location     locationPayload `json:"location"`
	Industry     []string        `json:"industry,omitempty"`
	IsHiring     bool            `json:"isHiring"`
	ProvidesVisa bool            `json:"providesVisa"`
	OpenRoles    int             `json:"openRoles"`
}

type startupDetailResponse struct {
	startupSummaryResponse
	Website   string        `json:"website,omitempty"`
	Size      string        `json:"size,omitempty"`
	Founded   int           `json:"founded,omitempty"`
	Roles     []rolePayload `json:"roles"`
	CreatedAt string        `json:"createdAt,omitempty"`
}

type startupListResponse struct {
	Items []startupSummaryResponse `json:"items"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
	Total int                      `json:"total"`
}

type viewStatePayload struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}

type sessionSnapshotResponse struct {
	SelectedID    string                   `json:"selectedId,omitempty"`
	ViewState     viewStatePayload         `json:"viewState"`
	Filtered      []startupSummaryResponse `json:"filteredStartups"`
	ShowAddForm   bool                     `json:"showAddForm"`
	DraftLocation locationPayload          `json:"draftLocation"`
	MapMode       string                   `json:"mapMode"`
}

type cameraOpResponse struct {
	Mode      string                   `json:"mode"`
	ViewState *viewStatePayload        `json:"viewState,omitempty"`
	Command   *maprender.CameraCommand `json:"command,omitempty"`
}

// buildStartupSummary converts a domain startup into the list/marker DTO.
func buildStartupSummary(s domain.Startup) startupSummaryResponse {
	return startupSummaryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Logo:        s.Logo,
		Location: locationPayload{
			Longitude: s.Location.Longitude,
			Latitude:  s.Location.Latitude,
			Address:   s.Location.Address,
		},
		Industry:     append([]string{}, s.Industry...),
		IsHiring:     s.Hiring(),
		ProvidesVisa: s.ProvidesVisa,
		OpenRoles:    len(s.Roles),
	}
}

// buildStartupDetail converts a domain startup into the detail-panel DTO.
func buildStartupDetail(s domain.Startup) startupDetailResponse {
	roles := make([]rolePayload, 0, len(s.Roles))
	for _, r := range s.Roles {
		roles = append(roles, rolePayload{
			ID:          r.ID,
			Title:       r.Title,
			Department:  r.Department,
			Type:        string(r.Type),
			Remote:      r.Remote,
			Description: r.Description,
			ApplyURL:    r.ApplyURL,
			PostedAt:    r.PostedAt.Format(time.RFC3339),
		})
	}

	detail := startupDetailResponse{
		startupSummaryResponse: buildStartupSummary(s),
		Website:                s.Website,
		Size:                   s.Size,
		Founded:                s.Founded,
		Roles:                  roles,
	}
	if !s.CreatedAt.IsZero() {
		detail.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	return detail
}

func buildViewStatePayload(v domain.ViewState) viewStatePayload {
	return viewStatePayload{
		Longitude: v.Longitude,
		Latitude:  v.Latitude,
		Zoom:      v.Zoom,
		Pitch:     v.Pitch,
		Bearing:   v.Bearing,
	}
}

func (p viewStatePayload) toDomain() domain.ViewState {
	return domain.ViewState{
		Longitude: p.Longitude,
		Latitude:  p.Latitude,
		Zoom:      p.Zoom,
		Pitch:     p.Pitch,
		Bearing:   p.Bearing,
	}
}
