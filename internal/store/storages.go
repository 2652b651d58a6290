package store

import (
	"context"
	"fmt"

	"github.com/meshdrive/meshdrive/internal/config"
	"github.com/meshdrive/meshdrive/internal/logger"
)

// Storages aggregates every desktop-side state holder.
type Storages struct {
	Sent     *SentInfoStore
	Received *ReceivedIndex
	Peers    *PeerCache
	Projects *ProjectTable
	History  *HistoryStore
}

// NewStorages constructs the in-memory stores and opens the durable ones
// (project table JSON, history sqlite) from cfg.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	projects, err := NewProjectTable(cfg.ProjectsFile)
	if err != nil {
		return nil, fmt.Errorf("open project table: %w", err)
	}

	history, err := NewHistoryStore(ctx, cfg.HistoryDSN, log)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}

	return &Storages{
		Sent:     NewSentInfoStore(),
		Received: NewReceivedIndex(),
		Peers:    NewPeerCache(),
		Projects: projects,
		History:  history,
	}, nil
}

// Close releases durable resources.
func (s *Storages) Close() error {
	if s.History != nil {
		return s.History.Close()
	}
	return nil
}
