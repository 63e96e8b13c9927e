package public

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/application"
	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
	"github.com/ShuvayuX/paris-startup-map/internal/interfaces/http/common"
)

type createRolePayload struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Type        string `json:"type"`
	Remote      bool   `json:"remote"`
	Description string `json:"description"`
	ApplyURL    string `json:"applyUrl"`
	PostedAt    string `json:"postedAt"`
}

type createStartupRequest struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Website      string              `json:"website"`
	Size         string              `json:"size"`
	Logo         string              `json:"logo"`
	Founded      int                 `json:"founded"`
	Longitude    float64             `json:"longitude"`
	Latitude     float64             `json:"latitude"`
	Address      string              `json:"address"`
	Industry     []string            `json:"industry"`
	IsHiring     bool                `json:"isHiring"`
	ProvidesVisa bool                `json:"providesVisa"`
	Roles        []createRolePayload `json:"roles"`
}

type createStartupResponse struct {
	Status  string                `json:"status"`
	Startup startupDetailResponse `json:"startup"`
}

// normalize validates the form input in place. Any error leaves the entity
// store untouched; the caller converts it into a 400.
func (req *createStartupRequest) normalize() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errors.New("name is required")
	}

	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return errors.New("description is required")
	}
	if utf8.RuneCountInString(req.Description) > common.MaxDescriptionRunes {
		return fmt.Errorf("description must be at most %d characters", common.MaxDescriptionRunes)
	}

	req.Website = strings.TrimSpace(req.Website)
	if req.Website == "" {
		return errors.New("website is required")
	}
	parsed, err := url.Parse(req.Website)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.New("website must be a valid http(s) URL")
	}

	currentYear := time.Now().Year()
	if req.Founded == 0 {
		req.Founded = currentYear
	}
	if req.Founded < 1800 || req.Founded > currentYear+1 {
		return fmt.Errorf("founded must be between 1800 and %d", currentYear+1)
	}

	industries, err := common.NormalizeIndustryList(req.Industry)
	if err != nil {
		return err
	}
	req.Industry = industries

	if req.Longitude < -180 || req.Longitude > 180 || req.Latitude < -90 || req.Latitude > 90 {
		return errors.New("location is out of range")
	}

	req.Logo = strings.TrimSpace(req.Logo)
	if req.Logo == "" {
		// Same fallback the form used: a generated monogram image.
		initials := strings.ToUpper(req.Name)
		if utf8.RuneCountInString(initials) > 2 {
			initials = string([]rune(initials)[:2])
		}
		req.Logo = "https://via.placeholder.com/150?text=" + url.QueryEscape(initials)
	}

	for i := range req.Roles {
		role := &req.Roles[i]
		role.Title = strings.TrimSpace(role.Title)
		if role.Title == "" {
			return fmt.Errorf("role %d: title is required", i+1)
		}
		if !domain.RoleType(role.Type).Valid() {
			return fmt.Errorf("role %q: unknown employment type %q", role.Title, role.Type)
		}
	}

	return nil
}

func (req createStartupRequest) toCommand() application.SubmitStartupCommand {
	roles := make([]application.SubmitRole, 0, len(req.Roles))
	for _, r := range req.Roles {
		var postedAt time.Time
		if r.PostedAt != "" {
			if parsed, err := time.Parse(time.RFC3339, r.PostedAt); err == nil {
				postedAt = parsed
			}
		}
		roles = append(roles, application.SubmitRole{
			Title:       r.Title,
			Department:  strings.TrimSpace(r.Department),
			Type:        domain.RoleType(r.Type),
			Remote:      r.Remote,
			Description: strings.TrimSpace(r.Description),
			ApplyURL:    strings.TrimSpace(r.ApplyURL),
			PostedAt:    postedAt,
		})
	}

	return application.SubmitStartupCommand{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Size:        strings.TrimSpace(req.Size),
		Logo:        req.Logo,
		Founded:     req.Founded,
		Location: domain.Location{
			Longitude: req.Longitude,
			Latitude:  req.Latitude,
			Address:   strings.TrimSpace(req.Address),
		},
		Industry:     req.Industry,
		IsHiring:     req.IsHiring,
		ProvidesVisa: req.ProvidesVisa,
		Roles:        roles,
	}
}

func (h *Handler) startupCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		body := http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		defer body.Close()

		var req createStartupRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := req.normalize(); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		startup, err := h.commands.Submit(ctx, req.toCommand())
		if err != nil {
			h.logger.Printf("startup submit failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to add startup")
			return
		}

		// A fresh entry shows up on the map immediately without rerunning
		// the filter, matching the form's behavior.
		h.session.AppendFiltered(*startup)
		h.session.SetShowAddForm(false)

		h.logger.Printf("startup added id=%s name=%q", startup.ID, startup.Name)
		common.WriteJSON(h.logger, w, http.StatusCreated, createStartupResponse{
			Status:  "created",
			Startup: buildStartupDetail(*startup),
		})
	}
}

// logoUploadHandler converts an uploaded image into an inline data URI for
// preview and storage. Only the content-type sniff guards the payload, plus
// the byte cap; the browser's picker already restricted the choice.
func (h *Handler) logoUploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxLogoUploadBytes)

		if err := r.ParseMultipartForm(common.MaxLogoUploadBytes); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "logo upload too large or malformed")
			return
		}

		file, _, err := r.FormFile("logo")
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "logo file is required")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.logger.Printf("logo read failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to read logo")
			return
		}

		contentType := http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "image/") {
			common.WriteError(h.logger, w, http.StatusBadRequest, "logo must be an image")
			return
		}

		dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"dataUri": dataURI})
	}
}
