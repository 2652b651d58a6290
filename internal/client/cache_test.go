package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshdrive/meshdrive/models"
)

func TestStateCachePeersComeBackOffline(t *testing.T) {
	cache := newStateCache(t.TempDir())

	err := cache.SavePeers([]models.PeerInfo{
		{ID: "p1", Hostname: "laptop", Online: true},
		{ID: "p2", Hostname: "nas", Online: false},
	})
	require.NoError(t, err)

	peers := cache.LoadPeers()
	require.Len(t, peers, 2)
	for _, p := range peers {
		assert.False(t, p.Online, "cached peer %s must load offline", p.ID)
	}
	assert.Equal(t, "laptop", peers[0].Hostname)
}

func TestStateCacheProjectsRoundTrip(t *testing.T) {
	cache := newStateCache(t.TempDir())

	in := []models.SyncProject{
		{ID: "proj-1", LocalPath: "/m/notes.txt", RemotePath: "/d/notes.txt", LastSynced: 42},
	}
	require.NoError(t, cache.SaveProjects(in))

	out := cache.LoadProjects()
	assert.Equal(t, in, out)
}

func TestStateCacheMissingFilesLoadEmpty(t *testing.T) {
	cache := newStateCache(filepath.Join(t.TempDir(), "never-written"))

	assert.Nil(t, cache.LoadPeers())
	assert.Nil(t, cache.LoadProjects())
}

func TestStateCacheCorruptFileLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, peersCacheFile), []byte("{nope"), 0o600))

	cache := newStateCache(dir)
	assert.Nil(t, cache.LoadPeers())
}
