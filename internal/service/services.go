package service

import (
	"github.com/meshdrive/meshdrive/internal/config"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/store"
	"github.com/meshdrive/meshdrive/internal/tailnet"
)

// Services aggregates the desktop node's service layer.
type Services struct {
	Transfer TransferService
	Files    FileService
	Sync     SyncService
}

func NewServices(backend tailnet.LocalAPI, storages *store.Storages, cfg config.Storage, logger *logger.Logger) *Services {
	return &Services{
		Transfer: NewTransferService(backend, storages.Sent, storages.Received, storages.Peers, storages.History, logger),
		Files:    NewFileService(cfg.UploadRoot, logger),
		Sync:     NewSyncService(storages.Projects, logger),
	}
}
