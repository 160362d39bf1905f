// Package mocks provides testify doubles for the store contract.
package mocks

import (
	"context"

	"github.com/jezweb/hub/internal/store"
	"github.com/stretchr/testify/mock"
)

// Store is a mock for store.Store.
type Store struct {
	mock.Mock
}

func (m *Store) Query(ctx context.Context, collection string, filters []store.Filter, sort store.Sort) ([]store.Document, error) {
	args := m.Called(ctx, collection, filters, sort)
	if docs, ok := args.Get(0).([]store.Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) GetOne(ctx context.Context, collection, id string) (store.Document, error) {
	args := m.Called(ctx, collection, id)
	if doc, ok := args.Get(0).(store.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *Store) Patch(ctx context.Context, collection, id string, partial store.Document) error {
	args := m.Called(ctx, collection, id, partial)
	return args.Error(0)
}

func (m *Store) Remove(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}
