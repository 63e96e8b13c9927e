// Package server is the composition root: it builds the entity store, the
// shared session, the map adapter and the HTTP routing, and owns the server
// lifecycle. Infrastructure only; no domain logic lives here.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ShuvayuX/paris-startup-map/internal/config"
	"github.com/ShuvayuX/paris-startup-map/internal/directory/application"
	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
	"github.com/ShuvayuX/paris-startup-map/internal/geocode"
	"github.com/ShuvayuX/paris-startup-map/internal/infrastructure/memory"
	"github.com/ShuvayuX/paris-startup-map/internal/infrastructure/sqlite"
	"github.com/ShuvayuX/paris-startup-map/internal/interfaces/http/common"
	publichttp "github.com/ShuvayuX/paris-startup-map/internal/interfaces/http/public"
	"github.com/ShuvayuX/paris-startup-map/internal/maprender"
	"github.com/ShuvayuX/paris-startup-map/internal/session"
)

// Server manages the HTTP lifecycle and dependency injection into handlers.
type Server struct {
	logger         *log.Logger
	addr           string
	allowedOrigins []string

	repo        *memory.StartupRepository
	prefs       *sqlite.PrefStore
	session     *session.Session
	mapAdapter  *maprender.Adapter
	placeholder *maprender.PlaceholderRenderer
	geocoder    *geocode.Reverser
	queries     application.StartupQueryService
	commands    application.StartupCommandService
}

// New assembles the application: it opens the preference store, loads the
// optional seed dataset and wires every service. Construction failures are
// returned rather than logged so main can decide to abort.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	prefs, err := sqlite.Open(cfg.PrefsDBPath)
	if err != nil {
		return nil, err
	}
	if err := prefs.InitSchema(ctx); err != nil {
		prefs.Close()
		return nil, err
	}

	repo := memory.NewStartupRepository()
	if cfg.SeedFile != "" {
		count, err := repo.LoadSeed(ctx, cfg.SeedFile)
		if err != nil {
			prefs.Close()
			return nil, err
		}
		cfg.ServerLog.Printf("loaded %d startups from seed file %q", count, cfg.SeedFile)
	}

	adapter, err := maprender.New(ctx, cfg.ServerLog, prefs)
	if err != nil {
		prefs.Close()
		return nil, err
	}

	placeholder, err := maprender.NewPlaceholderRenderer()
	if err != nil {
		prefs.Close()
		return nil, err
	}

	sess := session.New()

	srv := &Server{
		logger:         cfg.ServerLog,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
		repo:           repo,
		prefs:          prefs,
		session:        sess,
		mapAdapter:     adapter,
		placeholder:    placeholder,
		geocoder:       geocode.NewReverser(sess),
		queries:        application.NewStartupQueryService(repo),
		commands:       application.NewStartupCommandService(repo),
	}

	// The markers start out showing the whole directory.
	startups, err := repo.Find(ctx, domain.SearchFilters{})
	if err != nil {
		prefs.Close()
		return nil, err
	}
	sess.SetFiltered(startups)

	return srv, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:      s.logger,
		Queries:     s.queries,
		Commands:    s.commands,
		Session:     s.session,
		MapAdapter:  s.mapAdapter,
		Placeholder: s.placeholder,
		Geocoder:    s.geocoder,
	})
	publicHandler.Register(router)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on %s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		common.WriteJSON(s.logger, w, http.StatusOK, map[string]any{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"startups": s.repo.Len(),
			"mapMode":  string(s.mapAdapter.Mode()),
		})
	}
}

// withCORS grants the configured origins access; "*" allows any origin.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// shutdown closes the preference store so the last write is flushed.
func (s *Server) shutdown() {
	if err := s.prefs.Close(); err != nil {
		s.logger.Printf("error closing preference store: %v", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals for a graceful stop.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error during shutdown: %v", err)
		}
	}

	srv.shutdown()
}
