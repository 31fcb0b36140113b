package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/pathfinder/pkg/cache"
	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
	"github.com/matzehuels/pathfinder/pkg/render"
	"github.com/matzehuels/pathfinder/pkg/search"
)

// maxBody bounds request bodies; a 100x100 grid with every wall listed
// fits comfortably.
const maxBody = 1 << 20

// treeCacheTTL is how long a search tree layout is kept.
const treeCacheTTL = 10 * time.Minute

type handlers struct {
	logger *log.Logger
	store  *Store
	cache  cache.Cache
}

type ctxKey int

const sessionKey ctxKey = 0

// sessionCtx resolves {id} to a live session.
func (h *handlers) sessionCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := h.store.Get(chi.URLParam(r, "id"))
		if err != nil {
			h.writeError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, s)))
	})
}

func sessionFrom(r *http.Request) *Session {
	return r.Context().Value(sessionKey).(*Session)
}

// =============================================================================
// Responses
// =============================================================================

type sessionResponse struct {
	ID      string          `json:"id"`
	Playing bool            `json:"playing"`
	Frame   engine.Snapshot `json:"frame"`
}

type algorithmResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type stepResponse struct {
	Done  bool            `json:"done"`
	Frame engine.Snapshot `json:"frame"`
}

type wallResponse struct {
	Wall bool `json:"wall"`
}

func (h *handlers) respondSession(w http.ResponseWriter, status int, s *Session) {
	respondJSON(w, status, sessionResponse{
		ID:      s.ID,
		Playing: s.Driver.Playing(),
		Frame:   s.Engine().Snapshot(),
	})
}

// statusOf maps error codes to HTTP statuses.
func statusOf(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimensions, errors.ErrCodeOutOfBounds,
		errors.ErrCodeInvalidSpeed, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidGridFile,
		errors.ErrCodeUnknownAlgorithm:
		return http.StatusBadRequest
	case errors.ErrCodeSourceIsTarget:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidState:
		return http.StatusConflict
	case errors.ErrCodeNotFound, errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case errors.ErrCodeLimitExceeded:
		return http.StatusServiceUnavailable
	case errors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

func (h *handlers) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusOf(code)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
		msg = "internal error"
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}
	respondJSON(w, status, map[string]string{
		"error": msg,
		"code":  string(code),
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}
	return nil
}

// =============================================================================
// Sessions
// =============================================================================

type createRequest struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Algorithm string `json:"algorithm"`
	Speed     *int   `json:"speed"`
	Map       string `json:"map"`
}

func (h *handlers) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	entries := search.DefaultRegistry(grid.Default()).Entries()
	out := make([]algorithmResponse, len(entries))
	for i, e := range entries {
		out[i] = algorithmResponse{Key: e.Key, Name: e.Name}
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, err)
			return
		}
	}

	g, err := grid.File{Width: req.Width, Height: req.Height, Map: req.Map}.Grid()
	if err != nil {
		h.writeError(w, err)
		return
	}
	s, err := h.store.Create(g)
	if err != nil {
		h.writeError(w, err)
		return
	}
	e := s.Engine()
	if req.Algorithm != "" {
		err = e.Select(req.Algorithm)
	}
	if err == nil && req.Speed != nil {
		err = s.Driver.SetSpeed(*req.Speed)
	}
	if err != nil {
		h.store.Delete(s.ID)
		h.writeError(w, err)
		return
	}
	h.logger.Debug("session created", "id", s.ID, "size", fmt.Sprintf("%dx%d", g.Width(), g.Height()))
	h.respondSession(w, http.StatusCreated, s)
}

func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	h.respondSession(w, http.StatusOK, sessionFrom(r))
}

func (h *handlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	h.store.Delete(sessionFrom(r).ID)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Grid Editing
// =============================================================================

// putGrid replaces the grid. The body is a grid preset in JSON or TOML, or
// an ASCII map as text/plain.
func (h *handlers) putGrid(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	g, err := decodeGrid(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := s.Engine().LoadGrid(g); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

func decodeGrid(r *http.Request) (*grid.Grid, error) {
	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "content type")
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		var f grid.File
		if err := decodeJSON(r, &f); err != nil {
			return nil, err
		}
		return f.Grid()
	case "application/toml":
		return grid.Decode(io.LimitReader(r.Body, maxBody))
	case "text/plain":
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(io.LimitReader(r.Body, maxBody)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read map")
		}
		return grid.ParseASCII(buf.String())
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported content type %q", mediaType)
	}
}

type generateRequest struct {
	Kind    string  `json:"kind"`
	Density float64 `json:"density"`
	Seed    uint64  `json:"seed"`
}

func (h *handlers) generateGrid(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	var err error
	switch req.Kind {
	case "maze":
		err = s.Engine().GenerateMaze(req.Seed)
	case "walls":
		err = s.Engine().GenerateWalls(req.Density, req.Seed)
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "kind must be maze or walls, got %q", req.Kind)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

func (h *handlers) clearGrid(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := s.Engine().ClearWalls(); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

type wallRequest struct {
	X  int    `json:"x"`
	Y  int    `json:"y"`
	Op string `json:"op"`
}

func (h *handlers) editWall(w http.ResponseWriter, r *http.Request) {
	e := sessionFrom(r).Engine()
	var req wallRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	at := grid.C(req.X, req.Y)
	var (
		wall bool
		err  error
	)
	switch req.Op {
	case "add":
		err = e.AddWall(at)
		wall = err == nil
	case "remove":
		_, err = e.RemoveWall(at)
	case "", "toggle":
		wall, err = e.ToggleWall(at)
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "op must be add, remove or toggle, got %q", req.Op)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wallResponse{Wall: wall})
}

func (h *handlers) moveEndpoint(source bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionFrom(r)
		var at grid.Coord
		if err := decodeJSON(r, &at); err != nil {
			h.writeError(w, err)
			return
		}
		set := s.Engine().SetTarget
		if source {
			set = s.Engine().SetSource
		}
		if err := set(at); err != nil {
			h.writeError(w, err)
			return
		}
		h.respondSession(w, http.StatusOK, s)
	}
}

// =============================================================================
// Search Control
// =============================================================================

func (h *handlers) start(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := s.Engine().Start(); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

func (h *handlers) step(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	done, err := s.Driver.StepOnce()
	if err != nil {
		h.writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stepResponse{Done: done, Frame: s.Engine().Snapshot()})
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if err := s.Driver.Play(); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

func (h *handlers) pause(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Driver.Pause()
	h.respondSession(w, http.StatusOK, s)
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	s.Driver.Reset()
	h.respondSession(w, http.StatusOK, s)
}

type speedRequest struct {
	Speed int `json:"speed"`
}

func (h *handlers) setSpeed(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	var req speedRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := s.Driver.SetSpeed(req.Speed); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

type algorithmRequest struct {
	Algorithm string `json:"algorithm"`
}

func (h *handlers) selectAlgorithm(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	var req algorithmRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	s.Driver.Pause()
	if err := s.Engine().Select(req.Algorithm); err != nil {
		h.writeError(w, err)
		return
	}
	h.respondSession(w, http.StatusOK, s)
}

// =============================================================================
// Frames
// =============================================================================

var contentTypes = map[string]string{
	"svg":  "image/svg+xml",
	"png":  "image/png",
	"dot":  "text/vnd.graphviz; charset=utf-8",
	"json": "application/json",
	"txt":  "text/plain; charset=utf-8",
}

// renderOptions reads ?cell= and ?links= query parameters.
func renderOptions(r *http.Request) ([]render.Option, error) {
	var opts []render.Option
	q := r.URL.Query()
	if v := q.Get("cell"); v != "" {
		size, err := strconv.Atoi(v)
		if err == nil {
			err = errors.ValidateCellSize(size)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cell")
		}
		opts = append(opts, render.WithCellSize(size))
	}
	if v := q.Get("links"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "links")
		}
		opts = append(opts, render.WithLinks(show))
	}
	return opts, nil
}

func (h *handlers) frame(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts, err := renderOptions(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	data, err := render.Render(sessionFrom(r).Engine().Snapshot(), format, opts...)
	if err != nil {
		h.writeError(w, err)
		return
	}
	respondBytes(w, contentTypes[format], data)
}

func (h *handlers) treeDOT(w http.ResponseWriter, r *http.Request) {
	dot := render.ToDOT(sessionFrom(r).Engine().Snapshot())
	respondBytes(w, contentTypes["dot"], []byte(dot))
}

// treeSVG lays the search tree out with Graphviz. Layouts are cached by
// the DOT source, so polling a paused or finished search is cheap.
func (h *handlers) treeSVG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dot := render.ToDOT(sessionFrom(r).Engine().Snapshot())
	key := cache.Key("tree.svg", dot)
	if svg, ok, err := h.cache.Get(ctx, key); err == nil && ok {
		w.Header().Set("X-Cache", "hit")
		respondBytes(w, contentTypes["svg"], svg)
		return
	}

	svg, err := render.RenderDOT(ctx, dot)
	if err != nil {
		h.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render search tree"))
		return
	}
	if err := h.cache.Set(ctx, key, svg, treeCacheTTL); err != nil {
		h.logger.Warn("cache tree layout", "error", err)
	}
	w.Header().Set("X-Cache", "miss")
	respondBytes(w, contentTypes["svg"], svg)
}
