package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pathfinder/pkg/buildinfo"
	"github.com/matzehuels/pathfinder/pkg/cache"
	"github.com/matzehuels/pathfinder/pkg/observability"
)

// NewRouter wires the HTTP routes. A nil cache disables layout caching.
func NewRouter(logger *log.Logger, store *Store, c cache.Cache) http.Handler {
	if c == nil {
		c = cache.NewNull()
	}
	h := &handlers{logger: logger, store: store, cache: c}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(hooksMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": store.Len(),
			"build":    buildinfo.Get(),
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", h.listAlgorithms)
		r.Post("/sessions", h.createSession)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Use(h.sessionCtx)
			r.Get("/", h.getSession)
			r.Delete("/", h.deleteSession)

			r.Put("/grid", h.putGrid)
			r.Post("/grid/generate", h.generateGrid)
			r.Post("/grid/clear", h.clearGrid)
			r.Post("/walls", h.editWall)
			r.Put("/source", h.moveEndpoint(true))
			r.Put("/target", h.moveEndpoint(false))

			r.Post("/start", h.start)
			r.Post("/step", h.step)
			r.Post("/play", h.play)
			r.Post("/pause", h.pause)
			r.Post("/reset", h.reset)
			r.Put("/speed", h.setSpeed)
			r.Put("/algorithm", h.selectAlgorithm)

			r.Get("/frame.{format}", h.frame)
			r.Get("/tree.dot", h.treeDOT)
			r.Get("/tree.svg", h.treeSVG)
		})
	})

	return r
}

// hooksMiddleware reports every request to the registered HTTP hooks.
func hooksMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		start := time.Now()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func respondBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
