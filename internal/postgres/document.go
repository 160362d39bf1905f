package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jezweb/hub/internal/store"
)

// DocumentStore implements store.Store for Postgres
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Query returns all documents in the collection matching the filters,
// ordered by the sort clause. Filters use JSONB containment, so equality
// and array membership share one code path.
func (s *DocumentStore) Query(ctx context.Context, collection string, filters []store.Filter, sort store.Sort) ([]store.Document, error) {
	if strings.TrimSpace(collection) == "" {
		return nil, store.ErrInvalidInput
	}

	var sb strings.Builder
	sb.WriteString("SELECT doc FROM documents WHERE collection = $1")
	args := []any{collection}

	for _, f := range filters {
		if strings.TrimSpace(f.Field) == "" {
			return nil, store.ErrInvalidInput
		}
		var probe any
		switch f.Op {
		case store.OpEquals:
			probe = map[string]any{f.Field: f.Value}
		case store.OpArrayContains:
			probe = map[string]any{f.Field: []any{f.Value}}
		default:
			return nil, store.ErrInvalidInput
		}
		raw, err := json.Marshal(probe)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		args = append(args, string(raw))
		fmt.Fprintf(&sb, " AND doc @> $%d::jsonb", len(args))
	}

	if strings.TrimSpace(sort.Field) == "" {
		return nil, store.ErrInvalidInput
	}
	args = append(args, sort.Field)
	switch sort.Direction {
	case store.Ascending:
		fmt.Fprintf(&sb, " ORDER BY doc->>$%d ASC", len(args))
	case store.Descending:
		fmt.Fprintf(&sb, " ORDER BY doc->>$%d DESC", len(args))
	default:
		return nil, store.ErrInvalidInput
	}

	rows, err := s.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []store.Document
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, store.Document(doc))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// GetOne retrieves a document by ID
func (s *DocumentStore) GetOne(ctx context.Context, collection, id string) (store.Document, error) {
	if strings.TrimSpace(collection) == "" || strings.TrimSpace(id) == "" {
		return nil, store.ErrInvalidInput
	}

	var doc []byte
	err := s.db.QueryRow(ctx,
		`SELECT doc FROM documents WHERE collection = $1 AND id = $2`,
		collection, id).Scan(&doc)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return store.Document(doc), nil
}

// Insert stores a new document under a fresh id and stamps the id into
// the document body.
func (s *DocumentStore) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	if strings.TrimSpace(collection) == "" {
		return "", store.ErrInvalidInput
	}
	if !json.Valid(doc) {
		return "", store.ErrInvalidInput
	}

	id := uuid.NewString()

	_, err := s.db.Exec(ctx,
		`INSERT INTO documents (collection, id, doc)
		 VALUES ($1, $2, $3::jsonb || jsonb_build_object('id', $2::text))`,
		collection, id, string(doc))
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	return id, nil
}

// Patch merges partial into the stored document with a shallow JSONB
// concatenation; fields absent from partial are untouched.
func (s *DocumentStore) Patch(ctx context.Context, collection, id string, partial store.Document) error {
	if strings.TrimSpace(collection) == "" || strings.TrimSpace(id) == "" {
		return store.ErrInvalidInput
	}
	if !json.Valid(partial) {
		return store.ErrInvalidInput
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE documents SET doc = doc || $3::jsonb WHERE collection = $1 AND id = $2`,
		collection, id, string(partial))
	if err != nil {
		return fmt.Errorf("failed to patch document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}

// Remove deletes a document by ID
func (s *DocumentStore) Remove(ctx context.Context, collection, id string) error {
	if strings.TrimSpace(collection) == "" || strings.TrimSpace(id) == "" {
		return store.ErrInvalidInput
	}

	tag, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
