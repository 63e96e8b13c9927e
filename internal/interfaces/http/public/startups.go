package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
	"github.com/ShuvayuX/paris-startup-map/internal/infrastructure/memory"
	"github.com/ShuvayuX/paris-startup-map/internal/interfaces/http/common"
)

func (h *Handler) startupListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filters := domain.SearchFilters{
			Query:        strings.TrimSpace(query.Get("query")),
			Industries:   query["industry"],
			HasOpenRoles: common.ParseBool(query.Get("hasOpenRoles")),
		}

		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 50)

		startups, err := h.queries.List(ctx, filters)
		if err != nil {
			h.logger.Printf("startup list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to list startups")
			return
		}

		// The filtered subset drives the markers; keep the session in step
		// with the most recent filter inputs.
		h.session.SetFiltered(startups)

		total := len(startups)
		start := (page - 1) * limit
		if start >= total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		items := make([]startupSummaryResponse, 0, end-start)
		for _, s := range startups[start:end] {
			items = append(items, buildStartupSummary(s))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, startupListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: total,
		})
	}
}

func (h *Handler) startupDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "startup id is required")
			return
		}

		startup, err := h.queries.Detail(ctx, id)
		if err != nil {
			if errors.Is(err, memory.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "startup not found")
				return
			}
			h.logger.Printf("startup detail fetch failed id=%q err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to fetch startup")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStartupDetail(*startup))
	}
}

func (h *Handler) industryListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		industries, err := h.queries.Industries(ctx)
		if err != nil {
			h.logger.Printf("industry list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to list industries")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"industries": industries,
			"suggested":  common.SuggestedIndustries,
		})
	}
}
