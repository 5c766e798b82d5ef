package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = s.Get(ctx, "attendance_records_v1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "attendance_records_v1", []byte(`[]`)))
	data, err := s.Get(ctx, "attendance_records_v1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	_, err = os.Stat(filepath.Join(dir, "attendance_records_v1.json"))
	assert.NoError(t, err)

	require.NoError(t, s.Set(ctx, "attendance_records_v1", []byte(`[{"id":"1"}]`)))
	data, err = s.Get(ctx, "attendance_records_v1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), data)

	require.NoError(t, s.Delete(ctx, "attendance_records_v1"))
	require.NoError(t, s.Delete(ctx, "attendance_records_v1"))
	_, err = s.Get(ctx, "attendance_records_v1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStorage_KeyStaysInsideBasePath(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "store"))
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "../escape", []byte("x")))
	_, err = os.Stat(filepath.Join(dir, "escape.json"))
	assert.True(t, os.IsNotExist(err))

	_, err = s.Get(ctx, "  ")
	assert.Error(t, err)
}
