package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	key, err := store.Upload(ctx, "project-1", "receipt.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	require.Contains(t, key, "project-1")
	require.Contains(t, key, "receipt.pdf")

	url, err := store.GetURL(ctx, key)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "file://"))

	staged := filepath.Join(t.TempDir(), "staged", "receipt.pdf")
	require.NoError(t, store.Download(ctx, key, staged))
	b, err := os.ReadFile(staged)
	require.NoError(t, err)
	require.Equal(t, "pdf bytes", string(b))

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.GetURL(ctx, key)
	require.Error(t, err)
}

func TestFSStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Delete(context.Background(), "project-x/nope.pdf"))
}
