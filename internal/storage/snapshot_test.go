package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/internal/domain"
)

func TestFileStoreLoadAbsent(t *testing.T) {
	store := NewFileStore(t.TempDir(), zap.NewNop())
	assert.Empty(t, store.Load())
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not JSON at all", data: "??this is not json!!"},
		{name: "wrong shape", data: `{"total": 42}`},
		{name: "truncated", data: `[{"id": 1, "name": "Ga`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, SnapshotKey+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			store := NewFileStore(dir, zap.NewNop())
			assert.NotPanics(t, func() {
				assert.Empty(t, store.Load())
			})
		})
	}
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir(), zap.NewNop())

	lines := []domain.CartLine{
		{ID: 1, Name: "Butter Chicken", Price: 450, Quantity: 2, Image: "dish-butter-chicken.jpg"},
		{ID: 3, Name: "Garlic Naan", Price: 120, Quantity: 1, Image: "dish-naan.jpg"},
	}
	require.NoError(t, store.Save(lines))

	assert.ElementsMatch(t, lines, store.Load())
}

func TestFileStoreSaveOverwritesWholesale(t *testing.T) {
	store := NewFileStore(t.TempDir(), zap.NewNop())

	require.NoError(t, store.Save([]domain.CartLine{{ID: 1, Name: "Butter Chicken", Price: 450, Quantity: 2}}))
	require.NoError(t, store.Save([]domain.CartLine{{ID: 6, Name: "Gulab Jamun", Price: 150, Quantity: 1}}))

	loaded := store.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, 6, loaded[0].ID)
}

func TestFileStoreSaveEmpty(t *testing.T) {
	store := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, store.Save(nil))
	assert.Empty(t, store.Load())
}
