package store

import (
	"sync"
	"time"

	"github.com/meshdrive/meshdrive/models"
)

// SentInfoStore holds the single most-recent outbound transfer. A new send
// overwrites the slot; there is no queue of past sends (the history DB keeps
// those).
type SentInfoStore struct {
	mu   sync.RWMutex
	last *models.SentFileInfo

	now func() time.Time
}

func NewSentInfoStore() *SentInfoStore {
	return &SentInfoStore{now: time.Now}
}

// Begin records that a send of name to peerID has started. The slot is
// overwritten with Sending=true and a fresh timestamp.
func (s *SentInfoStore) Begin(name, peerID string, size int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = &models.SentFileInfo{
		Name:      name,
		PeerID:    peerID,
		Size:      size,
		Timestamp: s.now().Unix(),
		Sending:   true,
	}
}

// Finish marks the in-flight send terminal. A Begin is always followed by
// exactly one Finish; calling Finish with an empty slot is a no-op.
func (s *SentInfoStore) Finish(succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return
	}
	s.last.Sending = false
	s.last.Succeeded = succeeded
}

// Last returns a copy of the slot, or nil if nothing has been sent yet.
func (s *SentInfoStore) Last() *models.SentFileInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return nil
	}
	cp := *s.last
	return &cp
}
