package postgres

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/jezweb/hub/internal/store"
	"github.com/stretchr/testify/require"
)

// newTestDB connects to the database named by HUB_POSTGRES_TEST_DSN, or
// skips the test when it isn't set.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("HUB_POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("HUB_POSTGRES_TEST_DSN not set")
	}

	ctx := context.Background()
	db, err := New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(ctx))

	_, err = db.Exec(ctx, `DELETE FROM documents`)
	require.NoError(t, err)

	t.Cleanup(db.Close)
	return db
}

func TestDocumentStore_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	s := NewDocumentStore(db)

	raw, err := json.Marshal(map[string]any{
		"name":      "Acme Site",
		"status":    "planning",
		"tasks":     []string{"t1", "t2"},
		"createdAt": "2026-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	id, err := s.Insert(ctx, "websiteProjects", raw)
	require.NoError(t, err)

	doc, err := s.GetOne(ctx, "websiteProjects", id)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(doc, &got))
	require.Equal(t, id, got["id"])

	docs, err := s.Query(ctx, "websiteProjects",
		[]store.Filter{
			{Field: "status", Op: store.OpEquals, Value: "planning"},
			{Field: "tasks", Op: store.OpArrayContains, Value: "t2"},
		},
		store.Sort{Field: "createdAt", Direction: store.Descending})
	require.NoError(t, err)
	require.Len(t, docs, 1)

	require.NoError(t, s.Patch(ctx, "websiteProjects", id, store.Document(`{"status":"live"}`)))

	doc, err = s.GetOne(ctx, "websiteProjects", id)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(doc, &got))
	require.Equal(t, "live", got["status"])
	require.Equal(t, "Acme Site", got["name"])

	require.NoError(t, s.Remove(ctx, "websiteProjects", id))
	_, err = s.GetOne(ctx, "websiteProjects", id)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Remove(ctx, "websiteProjects", id), store.ErrNotFound)
}
