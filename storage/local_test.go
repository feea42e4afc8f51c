package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	snapshotID := uuid.New()

	path, err := s.Upload(ctx, snapshotID, "offline-bundle-2024-01-15.json", strings.NewReader(`{"cards":[]}`))
	require.NoError(t, err)
	assert.Contains(t, path, snapshotID.String())

	reader, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, `{"cards":[]}`, string(data))

	require.NoError(t, s.Delete(ctx, path))

	_, err = s.Download(ctx, path)
	assert.Error(t, err)
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, s.Delete(context.Background(), "bundles/ab/missing.json"))
}

func TestSnapshotPathSanitizesFilename(t *testing.T) {
	snapshotID := uuid.New()

	path := snapshotPath(snapshotID, "my bundle/v1.json")
	assert.Contains(t, path, "my_bundle_v1.json")
	assert.True(t, strings.HasPrefix(path, "bundles/"+snapshotID.String()[:2]+"/"))
	assert.NotContains(t, strings.TrimPrefix(path, "bundles/"), " ")
}
