package ontology

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	cat *Catalog
	err error
}

func (s stubSource) Catalog(_ context.Context) (*Catalog, error) {
	return s.cat, s.err
}

func TestStore_SnapshotBeforeLoad(t *testing.T) {
	store := NewStore()

	snap := store.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, 0, snap.SkillCount())
}

func TestStore_LoadPublishesSnapshot(t *testing.T) {
	store := NewStore()

	err := store.Load(context.Background(), stubSource{cat: testCatalog()})
	require.NoError(t, err)
	assert.Equal(t, 5, store.Snapshot().SkillCount())
}

func TestStore_LoadFailureKeepsPreviousSnapshot(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Load(context.Background(), stubSource{cat: testCatalog()}))
	before := store.Snapshot()

	err := store.Load(context.Background(), stubSource{err: errors.New("connection refused")})
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Same(t, before, store.Snapshot())
}

func TestStore_ReloadSwapsWholeSnapshot(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Load(context.Background(), stubSource{cat: testCatalog()}))
	first := store.Snapshot()

	smaller := &Catalog{Skills: testCatalog().Skills[:2]}
	require.NoError(t, store.Load(context.Background(), stubSource{cat: smaller}))

	assert.NotSame(t, first, store.Snapshot())
	assert.Equal(t, 2, store.Snapshot().SkillCount())
	// The old snapshot is still fully usable by requests that hold it
	assert.Equal(t, 5, first.SkillCount())
}
