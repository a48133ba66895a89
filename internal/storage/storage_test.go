package storage_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfcheck/internal/config"
	"pdfcheck/internal/domain"
	"pdfcheck/internal/port"
	"pdfcheck/internal/storage"
	"pdfcheck/internal/storage/file"
	"pdfcheck/internal/storage/memory"
	"pdfcheck/internal/storage/redis"
)

// exerciseStore runs the behaviour every KVStore backend must share.
func exerciseStore(t *testing.T, st port.KVStore) {
	t.Helper()
	ctx := context.Background()

	_, err := st.Get(ctx, "pdf-history")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, st.Set(ctx, "pdf-history", []byte(`[{"id":"1"}]`)))
	got, err := st.Get(ctx, "pdf-history")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, st.Set(ctx, "pdf-history", []byte(`[]`)))
	got, err = st.Get(ctx, "pdf-history")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	require.NoError(t, st.Delete(ctx, "pdf-history"))
	_, err = st.Get(ctx, "pdf-history")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// deleting a missing key is not an error
	assert.NoError(t, st.Delete(ctx, "pdf-history"))
	assert.NoError(t, st.Ping(ctx))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, memory.NewStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()
	buf := []byte("abc")
	require.NoError(t, st.Set(ctx, "k", buf))
	buf[0] = 'x'

	got, err := st.Get(ctx, "k")
	require.NoError(t, err)
	got[1] = 'y'

	again, _ := st.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestFileStore(t *testing.T) {
	st, err := file.NewStore(t.TempDir())
	require.NoError(t, err)
	exerciseStore(t, st)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	first, err := file.NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "pdf-checklists", []byte(`[1]`)))

	second, err := file.NewStore(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, "pdf-checklists")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(got))
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	st, err := file.NewStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"../escape", "a/b", "", ".hidden"} {
		assert.Error(t, st.Set(context.Background(), key, []byte("x")), key)
	}
}

func TestNew_Backends(t *testing.T) {
	st, err := storage.New(context.Background(), &config.StorageConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, st)

	st, err = storage.New(context.Background(), &config.StorageConfig{Backend: "file", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &file.Store{}, st)

	st, err = storage.New(context.Background(), &config.StorageConfig{Backend: "redis", Redis: config.RedisConfig{Addr: "localhost:6379"}})
	require.NoError(t, err)
	assert.IsType(t, &redis.Store{}, st)
	assert.Implements(t, (*io.Closer)(nil), st)

	_, err = storage.New(context.Background(), &config.StorageConfig{Backend: "redis"})
	assert.ErrorContains(t, err, "addr is required")

	_, err = storage.New(context.Background(), &config.StorageConfig{Backend: "mongo"})
	assert.ErrorContains(t, err, "unknown storage backend")

	_, err = storage.New(context.Background(), &config.StorageConfig{Backend: "s3"})
	assert.ErrorContains(t, err, "bucket is required")
}
