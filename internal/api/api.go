package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/barracksiot/event-dispatcher/internal/model"
	"github.com/go-chi/chi/v5"
)

const (
	defaultPage = 0
	defaultSize = 20
	maxSize     = 1000
)

type registry interface {
	SaveHook(ctx context.Context, hook model.Hook) (model.Hook, error)
	GetHook(ctx context.Context, userID, name string) (model.Hook, error)
	ListHooks(ctx context.Context, userID string, page, size int) (model.Page[model.Hook], error)
	UpdateHook(ctx context.Context, userID, name string, hook model.Hook) (model.Hook, error)
	DeleteHook(ctx context.Context, userID, name string) error
}

type API struct {
	registry registry
	users    userResolver
}

type Config struct {
	Registry registry
	Users    userResolver
}

func New(cfg Config) *API {
	return &API{registry: cfg.Registry, users: cfg.Users}
}

// Routes returns the hook endpoints, authenticated, ready to be mounted
// under /hooks.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(a.Authenticate)
	r.Post("/", a.CreateHook)
	r.Get("/", a.ListHooks)
	r.Get("/{name}", a.GetHook)
	r.Put("/{name}", a.UpdateHook)
	r.Delete("/{name}", a.DeleteHook)
	return r
}

func (a *API) CreateHook(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var entity HookEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// the body cannot pick the owner
	hook, err := entity.toHook(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	created, err := a.registry.SaveHook(r.Context(), hook)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeHook(w, r, http.StatusCreated, created)
}

func (a *API) GetHook(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	hook, err := a.registry.GetHook(r.Context(), userID, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeHook(w, r, http.StatusOK, hook)
}

func (a *API) ListHooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	page, err := queryInt(r, "page", defaultPage)
	if err != nil || page < 0 {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := queryInt(r, "size", defaultSize)
	if err != nil || size <= 0 || size > maxSize {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}
	if page > math.MaxInt32/size {
		http.Error(w, "page out of range", http.StatusBadRequest)
		return
	}

	hooks, err := a.registry.ListHooks(r.Context(), userID, page, size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := fromPage(hooks)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) UpdateHook(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var entity HookEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	hook, err := entity.toHook(userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := a.registry.UpdateHook(r.Context(), userID, chi.URLParam(r, "name"), hook)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeHook(w, r, http.StatusOK, updated)
}

func (a *API) DeleteHook(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if err := a.registry.DeleteHook(r.Context(), userID, chi.URLParam(r, "name")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrEncodeHook):
		return http.StatusInternalServerError
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, model.ErrUnsupportedHookVariant):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrHookNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateName), errors.Is(err, model.ErrUpdateConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Error handling hook request",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func writeHook(w http.ResponseWriter, r *http.Request, status int, hook model.Hook) {
	e, err := fromHook(hook)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, status, e)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
