package public

import (
	"log"

	"github.com/go-chi/chi/v5"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/application"
	"github.com/ShuvayuX/paris-startup-map/internal/geocode"
	"github.com/ShuvayuX/paris-startup-map/internal/maprender"
	"github.com/ShuvayuX/paris-startup-map/internal/session"
)

// Handler wires public HTTP endpoints to application services and the
// shared session state.
type Handler struct {
	logger      *log.Logger
	queries     application.StartupQueryService
	commands    application.StartupCommandService
	session     *session.Session
	mapAdapter  *maprender.Adapter
	placeholder *maprender.PlaceholderRenderer
	geocoder    *geocode.Reverser
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Queries     application.StartupQueryService
	Commands    application.StartupCommandService
	Session     *session.Session
	MapAdapter  *maprender.Adapter
	Placeholder *maprender.PlaceholderRenderer
	Geocoder    *geocode.Reverser
}

// NewHandler constructs the public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		queries:     cfg.Queries,
		commands:    cfg.Commands,
		session:     cfg.Session,
		mapAdapter:  cfg.MapAdapter,
		placeholder: cfg.Placeholder,
		geocoder:    cfg.Geocoder,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/startups", h.startupListHandler())
	r.Get("/startups/{id}", h.startupDetailHandler())
	r.Post("/startups", h.startupCreateHandler())
	r.Post("/startups/logo", h.logoUploadHandler())
	r.Get("/industries", h.industryListHandler())

	r.Get("/session", h.sessionSnapshotHandler())
	r.Post("/session/selected", h.selectStartupHandler())
	r.Delete("/session/selected", h.clearSelectionHandler())
	r.Post("/session/add-form", h.addFormToggleHandler())
	r.Post("/session/viewstate", h.viewStateSyncHandler())
	r.Post("/session/viewstate/{op}", h.cameraOpHandler())

	r.Get("/map/mode", h.mapModeHandler())
	r.Post("/map/token", h.saveTokenHandler())
	r.Delete("/map/token", h.clearTokenHandler())
	r.Post("/map/opt-out", h.optOutHandler())
	r.Post("/map/ready", h.widgetReadyHandler())
	r.Post("/map/error", h.widgetErrorHandler())
	r.Get("/map/render", h.placeholderRenderHandler())

	r.Post("/geocode/reverse", h.reverseGeocodeHandler())
}
