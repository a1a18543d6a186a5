package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/go-billing/internal/models"
)

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	snap := models.Snapshot{Products: []models.Product{{ID: "p1", Name: "Hosting"}}}
	require.NoError(t, s.Save(ctx, snap))
	snap.Products[0].Name = "changed"

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Hosting", got.Products[0].Name)
	assert.Equal(t, 1, s.Saves())
}

func TestStore_FailWith(t *testing.T) {
	s, err := NewWithSnapshot(models.Snapshot{Seeded: true})
	require.NoError(t, err)
	assert.Zero(t, s.Saves())

	boom := errors.New("disk full")
	s.FailWith(boom)
	assert.ErrorIs(t, s.Save(context.Background(), models.Snapshot{}), boom)

	got, _, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Seeded)

	s.FailWith(nil)
	assert.NoError(t, s.Save(context.Background(), models.Snapshot{}))
}
