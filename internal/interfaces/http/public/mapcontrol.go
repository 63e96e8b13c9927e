package public

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ShuvayuX/paris-startup-map/internal/interfaces/http/common"
	"github.com/ShuvayuX/paris-startup-map/internal/maprender"
)

// mapStyleURL is the style the live widget loads with the stored token.
const mapStyleURL = "mapbox://styles/mapbox/light-v11"

func (h *Handler) mapModeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := h.mapAdapter.Mode()

		response := map[string]any{"mode": string(mode)}
		if mode == maprender.ModeLive {
			response["token"] = h.mapAdapter.Token()
			response["styleUrl"] = mapStyleURL
		}
		if lastErr := h.mapAdapter.LastError(); lastErr != "" {
			response["lastError"] = lastErr
		}

		common.WriteJSON(h.logger, w, http.StatusOK, response)
	}
}

type saveTokenRequest struct {
	Token string `json:"token"`
}

func (h *Handler) saveTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveTokenRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := h.mapAdapter.SaveToken(r.Context(), req.Token); err != nil {
			if errors.Is(err, maprender.ErrTokenTooShort) {
				common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Printf("token save failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to save token")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{
			"status": "saved",
			"mode":   string(h.mapAdapter.Mode()),
		})
	}
}

func (h *Handler) clearTokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.mapAdapter.ClearToken(r.Context()); err != nil {
			h.logger.Printf("token clear failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to clear token")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{
			"status": "cleared",
			"mode":   string(h.mapAdapter.Mode()),
		})
	}
}

func (h *Handler) optOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.mapAdapter.OptOut(r.Context()); err != nil {
			h.logger.Printf("opt-out failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to record opt-out")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{
			"status": "opted-out",
			"mode":   string(h.mapAdapter.Mode()),
		})
	}
}

func (h *Handler) widgetReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.mapAdapter.Mode() != maprender.ModeLive {
			common.WriteError(h.logger, w, http.StatusConflict, "widget ready only applies to live mode")
			return
		}

		h.mapAdapter.WidgetReady()
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

type widgetErrorRequest struct {
	Message string `json:"message"`
}

func (h *Handler) widgetErrorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req widgetErrorRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Message == "" {
			req.Message = "map widget failed"
		}

		h.mapAdapter.ReportWidgetError(req.Message)
		common.WriteJSON(h.logger, w, http.StatusAccepted, map[string]string{
			"status": "recorded",
			"mode":   string(h.mapAdapter.Mode()),
		})
	}
}

// placeholderRenderHandler rasterizes the current session state into a PNG.
// Only meaningful in placeholder mode; live mode renders in the widget.
func (h *Handler) placeholderRenderHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.mapAdapter.Mode() != maprender.ModePlaceholder {
			common.WriteError(h.logger, w, http.StatusConflict, "placeholder rendering is disabled in the current mode")
			return
		}

		snap := h.session.Snapshot()
		img, err := h.placeholder.Render(snap.ViewState, snap.Filtered, snap.SelectedID)
		if err != nil {
			h.logger.Printf("placeholder render failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to render map")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(img); err != nil {
			h.logger.Printf("placeholder write failed: %v", err)
		}
	}
}

type reverseGeocodeRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// reverseGeocodeHandler runs the simulated lookup for the creation dialog's
// location picker. If the pin moved again while this lookup was in flight,
// the result is returned but not committed to the draft.
func (h *Handler) reverseGeocodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reverseGeocodeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Longitude < -180 || req.Longitude > 180 || req.Latitude < -90 || req.Latitude > 90 {
			common.WriteError(h.logger, w, http.StatusBadRequest, "location is out of range")
			return
		}

		address, accepted, err := h.geocoder.Reverse(r.Context(), req.Longitude, req.Latitude)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusRequestTimeout, "lookup cancelled")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"address":  address,
			"accepted": accepted,
		})
	}
}
