package sqlitestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/event-budget/internal/logging"
	"fjacquet/event-budget/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "event-budget.db")
	s, err := New(path, logging.NewMockLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestNew_RejectsEmptyPath(t *testing.T) {
	_, err := New("", logging.NewMockLogger())
	assert.Error(t, err)
}

func TestStore_LoadMissing(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Load(context.Background(), storage.RecordItems)
	assert.True(t, errors.Is(err, storage.ErrRecordNotFound))

	_, err = s.UpdatedAt(context.Background(), storage.RecordItems)
	assert.True(t, errors.Is(err, storage.ErrRecordNotFound))
}

func TestStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.Save(ctx, storage.RecordGuests, []byte(`[{"id":"a"}]`)))
	require.NoError(t, s.Save(ctx, storage.RecordGuests, []byte(`[{"id":"b"}]`)))
	require.NoError(t, s.Save(ctx, storage.RecordItems, []byte(`[]`)))

	data, err := s.Load(ctx, storage.RecordGuests)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"b"}]`, string(data))

	updated, err := s.UpdatedAt(ctx, storage.RecordGuests)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(updated))
	assert.Equal(t, storage.KindSQLite, s.Kind())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)
	require.NoError(t, s.Save(ctx, storage.RecordItems, []byte(`[{"id":"1"}]`)))
	require.NoError(t, s.Close())

	reopened, err := New(path, logging.NewMockLogger())
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Load(ctx, storage.RecordItems)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))
}

func TestStore_RejectsInvalidNames(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"../escape", "", "Items", "a/b"} {
		assert.ErrorIs(t, s.Save(ctx, name, []byte("[]")), storage.ErrInvalidRecordName, name)
		_, err := s.Load(ctx, name)
		assert.ErrorIs(t, err, storage.ErrInvalidRecordName, name)
	}

	var count int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count))
	assert.Equal(t, 0, count)
}
