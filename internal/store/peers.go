package store

import (
	"sync"

	"github.com/meshdrive/meshdrive/models"
)

// PeerCache holds the last successful peer listing. Replaced only wholesale:
// a failed refresh leaves the previous listing in place so callers keep
// seeing the tailnet roster through transient control-plane outages.
type PeerCache struct {
	mu    sync.RWMutex
	peers []models.PeerInfo
}

func NewPeerCache() *PeerCache {
	return &PeerCache{}
}

// Replace swaps in a new listing.
func (c *PeerCache) Replace(peers []models.PeerInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.peers = peers
}

// List returns a copy of the cached listing.
func (c *PeerCache) List() []models.PeerInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.PeerInfo, len(c.peers))
	copy(out, c.peers)
	return out
}

// Others returns the cached listing without the self node.
func (c *PeerCache) Others() []models.PeerInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.PeerInfo, 0, len(c.peers))
	for _, p := range c.peers {
		if p.IsSelf {
			continue
		}
		out = append(out, p)
	}
	return out
}
