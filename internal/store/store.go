package store

import (
	"context"
	"encoding/json"
)

// Document is a raw JSON record as held by a collection store.
type Document = json.RawMessage

// Operator selects how a filter value is matched against a document field.
type Operator string

const (
	// OpEquals matches documents whose field equals the filter value.
	OpEquals Operator = "equals"
	// OpArrayContains matches documents whose array-valued field contains
	// the filter value as an element.
	OpArrayContains Operator = "arrayContains"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter is a single field match condition. Multiple filters in a query
// are ANDed together.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Sort is a single-field ordering clause.
type Sort struct {
	Field     string
	Direction Direction
}

// Store is a document collection store. Implementations persist opaque
// JSON documents per collection, keyed by a store-assigned id.
type Store interface {
	// Query returns all documents in the collection matching every filter,
	// ordered by the sort clause. Ties have no defined order.
	Query(ctx context.Context, collection string, filters []Filter, sort Sort) ([]Document, error)

	// GetOne returns the document with the given id, or ErrNotFound.
	GetOne(ctx context.Context, collection, id string) (Document, error)

	// Insert stores a new document, assigns it a fresh id, writes that id
	// into the document's top-level "id" field, and returns it.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// Patch merges the partial document into the stored one. Fields absent
	// from partial are left untouched. Returns ErrNotFound for unknown ids.
	Patch(ctx context.Context, collection, id string, partial Document) error

	// Remove deletes the document. Returns ErrNotFound for unknown ids.
	Remove(ctx context.Context, collection, id string) error
}
