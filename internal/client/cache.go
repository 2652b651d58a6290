package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meshdrive/meshdrive/models"
)

const (
	peersCacheFile    = "peers.json"
	projectMirrorFile = "projects.json"
)

// stateCache persists the peer roster and the project mirror under the
// client's state dir so both survive restarts and disconnections.
type stateCache struct {
	dir string
}

func newStateCache(dir string) *stateCache {
	return &stateCache{dir: dir}
}

// LoadPeers returns the cached roster with every online flag forced false:
// cached data proves the peers exist, not that they are reachable now.
func (c *stateCache) LoadPeers() []models.PeerInfo {
	var peers []models.PeerInfo
	if err := c.read(peersCacheFile, &peers); err != nil {
		return nil
	}

	for i := range peers {
		peers[i].Online = false
	}
	return peers
}

func (c *stateCache) SavePeers(peers []models.PeerInfo) error {
	return c.write(peersCacheFile, peers)
}

// LoadProjects returns the mirrored project table from the last successful
// fetch, letting reconciliation run from cold start.
func (c *stateCache) LoadProjects() []models.SyncProject {
	var projects []models.SyncProject
	if err := c.read(projectMirrorFile, &projects); err != nil {
		return nil
	}
	return projects
}

func (c *stateCache) SaveProjects(projects []models.SyncProject) error {
	return c.write(projectMirrorFile, projects)
}

func (c *stateCache) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (c *stateCache) write(name string, v any) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err = os.WriteFile(filepath.Join(c.dir, name), payload, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
