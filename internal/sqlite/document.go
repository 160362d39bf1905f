package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jezweb/hub/internal/store"
)

// DocumentStore implements store.Store for SQLite
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Query returns all documents in the collection matching the filters,
// ordered by the sort clause.
func (s *DocumentStore) Query(ctx context.Context, collection string, filters []store.Filter, sort store.Sort) ([]store.Document, error) {
	if strings.TrimSpace(collection) == "" {
		return nil, store.ErrInvalidInput
	}

	var sb strings.Builder
	sb.WriteString("SELECT doc FROM documents WHERE collection = ?")
	args := []any{collection}

	for _, f := range filters {
		if strings.TrimSpace(f.Field) == "" {
			return nil, store.ErrInvalidInput
		}
		switch f.Op {
		case store.OpEquals:
			sb.WriteString(" AND json_extract(doc, ?) = ?")
			args = append(args, fieldPath(f.Field), f.Value)
		case store.OpArrayContains:
			sb.WriteString(" AND EXISTS (SELECT 1 FROM json_each(documents.doc, ?) WHERE json_each.value = ?)")
			args = append(args, fieldPath(f.Field), f.Value)
		default:
			return nil, store.ErrInvalidInput
		}
	}

	switch sort.Direction {
	case store.Ascending:
		sb.WriteString(" ORDER BY json_extract(doc, ?) ASC")
	case store.Descending:
		sb.WriteString(" ORDER BY json_extract(doc, ?) DESC")
	default:
		return nil, store.ErrInvalidInput
	}
	if strings.TrimSpace(sort.Field) == "" {
		return nil, store.ErrInvalidInput
	}
	args = append(args, fieldPath(sort.Field))

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
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
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE collection = ? AND id = ?`,
		collection, id).Scan(&doc)

	if err == sql.ErrNoRows {
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES (?, ?, json_set(?, '$.id', ?))`,
		collection, id, string(doc), id)
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}

	return id, nil
}

// Patch merges partial into the stored document. json_patch follows RFC 7386:
// fields absent from partial are untouched, explicit nulls delete the key.
func (s *DocumentStore) Patch(ctx context.Context, collection, id string, partial store.Document) error {
	if strings.TrimSpace(collection) == "" || strings.TrimSpace(id) == "" {
		return store.ErrInvalidInput
	}
	if !json.Valid(partial) {
		return store.ErrInvalidInput
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE documents SET doc = json_patch(doc, ?) WHERE collection = ? AND id = ?`,
		string(partial), collection, id)
	if err != nil {
		return fmt.Errorf("failed to patch document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

// Remove deletes a document by ID
func (s *DocumentStore) Remove(ctx context.Context, collection, id string) error {
	if strings.TrimSpace(collection) == "" || strings.TrimSpace(id) == "" {
		return store.ErrInvalidInput
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		collection, id)
	if err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

// fieldPath turns a top-level field name into a JSON1 path expression.
func fieldPath(field string) string {
	return "$." + field
}
