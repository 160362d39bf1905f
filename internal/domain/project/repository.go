// Package project implements the generic data-access layer for category
// project records: query composition, CRUD against the collection store,
// and maintenance of the per-category state container.
package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jezweb/hub/internal/store"
)

// Default sort applied when a list request doesn't name one.
const (
	DefaultSortField = "createdAt"
)

// ListOptions selects and orders a list fetch. Filters are exact-match
// field values ANDed together; fields named in the schema's array-field
// set match by membership instead.
type ListOptions struct {
	Filters       map[string]any
	SortField     string
	SortDirection store.Direction
}

// Repository translates category-agnostic CRUD and query intents into
// collection store calls and keeps the state container current. One
// instance exists per category, differing only by schema.
//
// Operations issued while another is in flight are not cancelled or
// sequenced; both complete and the later completion owns the state.
type Repository[E any] struct {
	store  store.Store
	schema Schema[E]
	state  *State[E]
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Repository.
type Option[E any] func(*Repository[E])

// WithClock overrides the timestamp source.
func WithClock[E any](now func() time.Time) Option[E] {
	return func(r *Repository[E]) {
		r.now = now
	}
}

// NewRepository creates a repository for one category over the given store.
func NewRepository[E any](s store.Store, schema Schema[E], logger *slog.Logger, opts ...Option[E]) *Repository[E] {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Repository[E]{
		store:  s,
		schema: schema,
		state:  &State[E]{},
		logger: logger.With("category", schema.Category),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Schema returns the category schema this repository serves.
func (r *Repository[E]) Schema() Schema[E] {
	return r.schema
}

// State returns the state container for readers.
func (r *Repository[E]) State() *State[E] {
	return r.state
}

// List fetches all records matching the filters, ordered by the sort
// clause (createdAt descending by default), and replaces the state
// container's list with the result. On failure the previous list is kept.
func (r *Repository[E]) List(ctx context.Context, opts ListOptions) ([]Record[E], error) {
	r.state.begin()

	records, err := r.fetch(ctx, opts)
	if err != nil {
		r.state.fail("list", KindQueryFailed, err.Error(), r.now())
		r.logger.Error("list failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	r.state.setRecords(records)
	return records, nil
}

// GetByID fetches a single record and sets it as the selection,
// overwriting any previous selection.
func (r *Repository[E]) GetByID(ctx context.Context, id string) (*Record[E], error) {
	r.state.begin()

	if strings.TrimSpace(id) == "" {
		r.state.fail("getById", KindInvalidInput, "id is required", r.now())
		return nil, ErrInvalidInput
	}

	doc, err := r.store.GetOne(ctx, r.schema.Collection, id)
	if err != nil {
		if isNotFound(err) {
			r.state.fail("getById", KindNotFound, fmt.Sprintf("record %s not found", id), r.now())
			return nil, ErrNotFound
		}
		r.state.fail("getById", KindQueryFailed, err.Error(), r.now())
		r.logger.Error("getById failed", "id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	rec, err := r.decode(doc)
	if err != nil {
		r.state.fail("getById", KindQueryFailed, err.Error(), r.now())
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	r.state.setSelected(rec)
	return &rec, nil
}

// Create stamps createdAt and updatedAt with the same instant, writes the
// record, and returns it re-fetched by its new id so the result reflects
// exactly what the store persisted. The new record is appended to the
// state container's list.
func (r *Repository[E]) Create(ctx context.Context, rec Record[E]) (*Record[E], error) {
	r.state.begin()

	now := r.now().UTC()
	rec.ID = ""
	rec.CreatedAt = now
	rec.UpdatedAt = now

	doc, err := json.Marshal(rec)
	if err != nil {
		r.state.fail("create", KindWriteFailed, err.Error(), r.now())
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	id, err := r.store.Insert(ctx, r.schema.Collection, doc)
	if err != nil {
		r.state.fail("create", KindWriteFailed, err.Error(), r.now())
		r.logger.Error("create failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	created, err := r.refetch(ctx, "create", id)
	if err != nil {
		return nil, err
	}

	r.state.appendRecord(*created)
	r.logger.Info("record created", "id", id)
	return created, nil
}

// Update merges the partial field set into the stored record, refreshing
// updatedAt in the same write, and returns the re-fetched record. The
// state container's copy is replaced only after the store confirms; no
// optimistic patch is applied first.
func (r *Repository[E]) Update(ctx context.Context, id string, fields map[string]any) (*Record[E], error) {
	r.state.begin()

	if strings.TrimSpace(id) == "" {
		r.state.fail("update", KindInvalidInput, "id is required", r.now())
		return nil, ErrInvalidInput
	}

	patch := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	// The store owns these; callers can't move them.
	delete(patch, "id")
	delete(patch, "createdAt")
	patch["updatedAt"] = r.now().UTC()

	partial, err := json.Marshal(patch)
	if err != nil {
		r.state.fail("update", KindWriteFailed, err.Error(), r.now())
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := r.store.Patch(ctx, r.schema.Collection, id, partial); err != nil {
		r.state.fail("update", KindWriteFailed, err.Error(), r.now())
		r.logger.Error("update failed", "id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	updated, err := r.refetch(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	r.state.replaceRecord(*updated)
	return updated, nil
}

// Delete removes the record from the store, prunes it from the state
// container's list, and clears a matching selection. Deleting an unknown
// id surfaces as a recoverable write failure.
func (r *Repository[E]) Delete(ctx context.Context, id string) error {
	r.state.begin()

	if strings.TrimSpace(id) == "" {
		r.state.fail("delete", KindInvalidInput, "id is required", r.now())
		return ErrInvalidInput
	}

	if err := r.store.Remove(ctx, r.schema.Collection, id); err != nil {
		r.state.fail("delete", KindWriteFailed, err.Error(), r.now())
		r.logger.Error("delete failed", "id", id, "error", err)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	r.state.removeRecord(id)
	r.logger.Info("record deleted", "id", id)
	return nil
}

// Search fetches the full unfiltered collection and keeps only records
// whose name contains term as a case-insensitive substring, replacing the
// state container's list with the subset. An empty term returns the full
// list. Every search reads the whole collection; fine for an internal
// tool, unacceptable at scale.
func (r *Repository[E]) Search(ctx context.Context, term string) ([]Record[E], error) {
	r.state.begin()

	records, err := r.fetch(ctx, ListOptions{})
	if err != nil {
		r.state.fail("search", KindQueryFailed, err.Error(), r.now())
		r.logger.Error("search failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	needle := strings.ToLower(term)
	matched := make([]Record[E], 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), needle) {
			matched = append(matched, rec)
		}
	}

	r.state.setRecords(matched)
	return matched, nil
}

// fetch runs a store query for the options without touching state.
func (r *Repository[E]) fetch(ctx context.Context, opts ListOptions) ([]Record[E], error) {
	filters := r.buildFilters(opts.Filters)

	sortField := opts.SortField
	if sortField == "" {
		sortField = DefaultSortField
	}
	direction := opts.SortDirection
	if direction == "" {
		direction = store.Descending
	}

	docs, err := r.store.Query(ctx, r.schema.Collection, filters, store.Sort{
		Field:     sortField,
		Direction: direction,
	})
	if err != nil {
		return nil, err
	}

	records := make([]Record[E], 0, len(docs))
	for _, doc := range docs {
		rec, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// buildFilters converts the field map into store filters, in field-name
// order so composed queries are deterministic.
func (r *Repository[E]) buildFilters(fields map[string]any) []store.Filter {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	filters := make([]store.Filter, 0, len(names))
	for _, name := range names {
		op := store.OpEquals
		if r.schema.IsArrayField(name) {
			op = store.OpArrayContains
		}
		filters = append(filters, store.Filter{Field: name, Op: op, Value: fields[name]})
	}
	return filters
}

// refetch reads a record back after a write and maps failures to the
// operation's error slot.
func (r *Repository[E]) refetch(ctx context.Context, op, id string) (*Record[E], error) {
	doc, err := r.store.GetOne(ctx, r.schema.Collection, id)
	if err != nil {
		if isNotFound(err) {
			r.state.fail(op, KindNotFound, fmt.Sprintf("record %s not found", id), r.now())
			return nil, ErrNotFound
		}
		r.state.fail(op, KindQueryFailed, err.Error(), r.now())
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	rec, err := r.decode(doc)
	if err != nil {
		r.state.fail(op, KindQueryFailed, err.Error(), r.now())
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return &rec, nil
}

func (r *Repository[E]) decode(doc store.Document) (Record[E], error) {
	var rec Record[E]
	if err := json.Unmarshal(doc, &rec); err != nil {
		return rec, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
