package service

import (
	"context"

	"github.com/meshdrive/meshdrive/internal/tailnet"
	"github.com/meshdrive/meshdrive/models"
)

type localAPIMock struct {
	listPeersFunc    func(ctx context.Context) ([]models.PeerInfo, error)
	pushFileFunc     func(ctx context.Context, peerID, path string) error
	waitingFilesFunc func(ctx context.Context) ([]models.WaitingFile, error)
	downloadFunc     func(ctx context.Context, name string) ([]byte, error)
	deleteFunc       func(ctx context.Context, name string) error
	watchFunc        func(ctx context.Context, notify func(tailnet.InboundFile)) error

	deleted []string
}

func (m *localAPIMock) ListPeers(ctx context.Context) ([]models.PeerInfo, error) {
	if m.listPeersFunc != nil {
		return m.listPeersFunc(ctx)
	}
	return nil, nil
}

func (m *localAPIMock) PushFile(ctx context.Context, peerID, path string) error {
	if m.pushFileFunc != nil {
		return m.pushFileFunc(ctx, peerID, path)
	}
	return nil
}

func (m *localAPIMock) WaitingFiles(ctx context.Context) ([]models.WaitingFile, error) {
	if m.waitingFilesFunc != nil {
		return m.waitingFilesFunc(ctx)
	}
	return nil, nil
}

func (m *localAPIMock) DownloadWaitingFile(ctx context.Context, name string) ([]byte, error) {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, name)
	}
	return nil, nil
}

func (m *localAPIMock) DeleteWaitingFile(ctx context.Context, name string) error {
	m.deleted = append(m.deleted, name)
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, name)
	}
	return nil
}

func (m *localAPIMock) Watch(ctx context.Context, notify func(tailnet.InboundFile)) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, notify)
	}
	return nil
}

type historyRecord struct {
	direction string
	name      string
	peerID    string
	size      int64
	succeeded bool
}

type historyMock struct {
	appendErr error
	listFunc  func(ctx context.Context, limit int) ([]models.TransferRecord, error)

	appended []historyRecord
}

func (m *historyMock) Append(ctx context.Context, direction, name, peerID string, size int64, succeeded bool) error {
	m.appended = append(m.appended, historyRecord{direction, name, peerID, size, succeeded})
	return m.appendErr
}

func (m *historyMock) List(ctx context.Context, limit int) ([]models.TransferRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}
