package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
	"github.com/ShuvayuX/paris-startup-map/internal/infrastructure/memory"
	"github.com/ShuvayuX/paris-startup-map/internal/interfaces/http/common"
	"github.com/ShuvayuX/paris-startup-map/internal/maprender"
)

func (h *Handler) sessionSnapshotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := h.session.Snapshot()

		filtered := make([]startupSummaryResponse, 0, len(snap.Filtered))
		for _, s := range snap.Filtered {
			filtered = append(filtered, buildStartupSummary(s))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, sessionSnapshotResponse{
			SelectedID:  snap.SelectedID,
			ViewState:   buildViewStatePayload(snap.ViewState),
			Filtered:    filtered,
			ShowAddForm: snap.ShowAddForm,
			DraftLocation: locationPayload{
				Longitude: snap.DraftLocation.Longitude,
				Latitude:  snap.DraftLocation.Latitude,
				Address:   snap.DraftLocation.Address,
			},
			MapMode: string(h.mapAdapter.Mode()),
		})
	}
}

type selectStartupRequest struct {
	ID string `json:"id"`
}

// selectStartupHandler implements the marker-click contract: record the
// selection, and in live mode hand back a fly-to command for the widget.
// The entity store is read, never written.
func (h *Handler) selectStartupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var req selectStartupRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.ID = strings.TrimSpace(req.ID)
		if req.ID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "startup id is required")
			return
		}

		startup, err := h.queries.Detail(ctx, req.ID)
		if err != nil {
			if errors.Is(err, memory.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "startup not found")
				return
			}
			h.logger.Printf("selection lookup failed id=%q err=%v", req.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to select startup")
			return
		}

		h.session.SetSelected(startup.ID)

		response := map[string]any{"selectedId": startup.ID}
		if h.mapAdapter.Mode() == maprender.ModeLive {
			if cmd, ok := h.mapAdapter.FocusCommand(startup.Location); ok {
				response["command"] = cmd
			}
		}

		common.WriteJSON(h.logger, w, http.StatusOK, response)
	}
}

func (h *Handler) clearSelectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.session.SetSelected("")
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

type addFormToggleRequest struct {
	Show bool `json:"show"`
}

func (h *Handler) addFormToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addFormToggleRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		h.session.SetShowAddForm(req.Show)
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"showAddForm": req.Show})
	}
}

// viewStateSyncHandler receives the camera the widget (or the placeholder
// client) reports after a user gesture. The sync is one-directional into
// the session; no command is ever produced here, which is what breaks the
// feedback loop.
func (h *Handler) viewStateSyncHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload viewStatePayload
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&payload); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		view := payload.toDomain()
		if h.mapAdapter.Mode() == maprender.ModeLive {
			h.mapAdapter.SyncFromWidget(view)
		}
		h.session.SetViewState(view)

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"viewState": buildViewStatePayload(view),
		})
	}
}

// cameraOpHandler runs the named camera operation. In placeholder mode the
// transition is computed locally; in live mode it is forwarded to the widget
// as a command and the state is updated later from the widget's observed
// change, never integrated twice.
func (h *Handler) cameraOpHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		op := chi.URLParam(r, "op")

		var transition func(domain.ViewState) domain.ViewState
		switch op {
		case "zoom-in":
			transition = domain.ViewState.ZoomIn
		case "zoom-out":
			transition = domain.ViewState.ZoomOut
		case "reset-bearing":
			transition = domain.ViewState.ResetBearing
		case "reset-view":
			transition = domain.ViewState.ResetView
		default:
			common.WriteError(h.logger, w, http.StatusNotFound, "unknown camera operation")
			return
		}

		mode := h.mapAdapter.Mode()
		if mode == maprender.ModeLive {
			target := transition(h.session.ViewState())
			response := cameraOpResponse{Mode: string(mode)}
			if cmd, ok := h.mapAdapter.CommandCamera(target); ok {
				response.Command = &cmd
			}
			common.WriteJSON(h.logger, w, http.StatusOK, response)
			return
		}

		view := h.session.UpdateViewState(transition)
		payload := buildViewStatePayload(view)
		common.WriteJSON(h.logger, w, http.StatusOK, cameraOpResponse{
			Mode:      string(mode),
			ViewState: &payload,
		})
	}
}
