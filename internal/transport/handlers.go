package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jezweb/hub/internal/domain/project"
	"github.com/jezweb/hub/internal/store"
)

// resource serves one category's project routes.
type resource[E any] struct {
	repo   *project.Repository[E]
	logger *slog.Logger
}

func mountCategory[E any](r chi.Router, name string, repo *project.Repository[E], logger *slog.Logger) {
	rs := &resource[E]{repo: repo, logger: logger}

	r.Route("/"+name+"/projects", func(r chi.Router) {
		r.Get("/", rs.list)
		r.Get("/search", rs.search)
		r.Post("/", rs.create)
		r.Get("/{id}", rs.get)
		r.Patch("/{id}", rs.update)
		r.Delete("/{id}", rs.delete)
	})
}

// list maps query params onto repository filters. "task" filters by
// membership of the tasks array.
func (rs *resource[E]) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := map[string]any{}
	for param, field := range map[string]string{
		"organisationId": "organisationId",
		"status":         "status",
		"assignedTo":     "assignedTo",
		"task":           "tasks",
	} {
		if v := q.Get(param); v != "" {
			filters[field] = v
		}
	}

	opts := project.ListOptions{
		Filters:       filters,
		SortField:     q.Get("sortField"),
		SortDirection: store.Direction(q.Get("sortDirection")),
	}

	records, err := rs.repo.List(r.Context(), opts)
	if err != nil {
		rs.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (rs *resource[E]) search(w http.ResponseWriter, r *http.Request) {
	records, err := rs.repo.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		rs.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (rs *resource[E]) get(w http.ResponseWriter, r *http.Request) {
	rec, err := rs.repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		rs.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (rs *resource[E]) create(w http.ResponseWriter, r *http.Request) {
	var rec project.Record[E]
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := rs.repo.Create(r.Context(), rec)
	if err != nil {
		rs.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (rs *resource[E]) update(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := rs.repo.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		rs.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (rs *resource[E]) delete(w http.ResponseWriter, r *http.Request) {
	if err := rs.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		rs.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (rs *resource[E]) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, project.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		if rs.logger != nil {
			rs.logger.Error("request failed", "error", err)
		}
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
