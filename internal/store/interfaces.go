package store

import (
	"context"

	"github.com/meshdrive/meshdrive/models"
)

// Projects is the sync-project table surface consumed by the service layer.
type Projects interface {
	List() []models.SyncProject
	Get(id string) (models.SyncProject, error)
	Create(localPath, remotePath string) (models.SyncProject, error)
	Delete(id string) error
	Ack(id string, timestamp int64) (models.SyncProject, error)
}

// History is the transfer-history surface consumed by the service layer.
type History interface {
	Append(ctx context.Context, direction, name, peerID string, size int64, succeeded bool) error
	List(ctx context.Context, limit int) ([]models.TransferRecord, error)
}

var (
	_ Projects = (*ProjectTable)(nil)
	_ History  = (*HistoryStore)(nil)
)
