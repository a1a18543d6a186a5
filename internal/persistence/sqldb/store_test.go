package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/go-billing/internal/db"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence"
)

func newTestStore(t *testing.T, key string) *Store {
	t.Helper()
	gdb, err := db.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	return New(gdb, persistence.DriverSQLite, key)
}

func TestStore_LoadEmpty(t *testing.T) {
	s := newTestStore(t, "")
	_, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, persistence.DriverSQLite, s.Driver())
}

func TestStore_SaveUpsertLoad(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, "")
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	first := models.Snapshot{Products: []models.Product{{ID: "p1", Name: "Audit", Price: 100, TaxRate: 18, CreatedAt: created}}}
	require.NoError(t, s.Save(ctx, first))

	second := first.Clone()
	second.Seeded = true
	second.Clients = []models.Client{{ID: "c1", CompanyName: "Acme", CreatedAt: created}}
	require.NoError(t, s.Save(ctx, second))

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Seeded)
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "Acme", got.Clients[0].CompanyName)
	require.Len(t, got.Products, 1)
	assert.True(t, created.Equal(got.Products[0].CreatedAt))

	var n int64
	require.NoError(t, s.db.Model(&db.SnapshotRecord{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestStore_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestStore(t, "a")
	b := New(a.db, persistence.DriverSQLite, "b")

	require.NoError(t, a.Save(ctx, models.Snapshot{Seeded: true}))
	_, ok, err := b.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
