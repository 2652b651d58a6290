package http

import (
	"context"
	"io"

	"github.com/meshdrive/meshdrive/internal/service"
	"github.com/meshdrive/meshdrive/models"
)

type transferServiceMock struct {
	statusFunc       func(ctx context.Context) models.StatusResponse
	waitingFilesFunc func(ctx context.Context) ([]models.WaitingFile, error)
	deleteFunc       func(ctx context.Context, name string) error
	downloadLastFunc func(ctx context.Context) (*service.Download, error)
	downloadFunc     func(ctx context.Context, name string) (*service.Download, error)
	sendFunc         func(ctx context.Context, req models.SendRequest) error
	historyFunc      func(ctx context.Context, limit int) ([]models.TransferRecord, error)
	peersFunc        func(ctx context.Context) []models.PeerInfo
}

func (m *transferServiceMock) Status(ctx context.Context) models.StatusResponse {
	if m.statusFunc != nil {
		return m.statusFunc(ctx)
	}
	return models.StatusResponse{}
}

func (m *transferServiceMock) WaitingFiles(ctx context.Context) ([]models.WaitingFile, error) {
	if m.waitingFilesFunc != nil {
		return m.waitingFilesFunc(ctx)
	}
	return nil, nil
}

func (m *transferServiceMock) DeleteWaitingFile(ctx context.Context, name string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, name)
	}
	return nil
}

func (m *transferServiceMock) DownloadLast(ctx context.Context) (*service.Download, error) {
	if m.downloadLastFunc != nil {
		return m.downloadLastFunc(ctx)
	}
	return nil, service.ErrNoReceivedFile
}

func (m *transferServiceMock) DownloadNamed(ctx context.Context, name string) (*service.Download, error) {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, name)
	}
	return nil, service.ErrNoReceivedFile
}

func (m *transferServiceMock) Send(ctx context.Context, req models.SendRequest) error {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, req)
	}
	return nil
}

func (m *transferServiceMock) History(ctx context.Context, limit int) ([]models.TransferRecord, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, limit)
	}
	return nil, nil
}

func (m *transferServiceMock) Peers(ctx context.Context) []models.PeerInfo {
	if m.peersFunc != nil {
		return m.peersFunc(ctx)
	}
	return nil
}

func (m *transferServiceMock) RefreshPeers(ctx context.Context) error { return nil }

func (m *transferServiceMock) HandleInbound(ctx context.Context, name, path string, size int64) {}

func (m *transferServiceMock) SeedInbox(ctx context.Context) error { return nil }

type fileServiceMock struct {
	browseFunc     func(ctx context.Context, path string) ([]models.RemoteFile, error)
	pullFunc       func(ctx context.Context, path string) (*service.Download, error)
	uploadFunc     func(ctx context.Context, relPath string, body io.Reader) error
	syncUploadFunc func(ctx context.Context, absPath string, body io.Reader) error
}

func (m *fileServiceMock) Browse(ctx context.Context, path string) ([]models.RemoteFile, error) {
	if m.browseFunc != nil {
		return m.browseFunc(ctx, path)
	}
	return nil, nil
}

func (m *fileServiceMock) Pull(ctx context.Context, path string) (*service.Download, error) {
	if m.pullFunc != nil {
		return m.pullFunc(ctx, path)
	}
	return nil, service.ErrNotAFile
}

func (m *fileServiceMock) Upload(ctx context.Context, relPath string, body io.Reader) error {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, relPath, body)
	}
	return nil
}

func (m *fileServiceMock) SyncUpload(ctx context.Context, absPath string, body io.Reader) error {
	if m.syncUploadFunc != nil {
		return m.syncUploadFunc(ctx, absPath, body)
	}
	return nil
}

type syncServiceMock struct {
	projectsFunc func(ctx context.Context) []models.SyncProject
	createFunc   func(ctx context.Context, req models.CreateProjectRequest) (models.SyncProject, error)
	deleteFunc   func(ctx context.Context, id string) error
	checkFunc    func(ctx context.Context) ([]models.SyncChange, error)
	ackFunc      func(ctx context.Context, req models.AckRequest) (models.SyncProject, error)
}

func (m *syncServiceMock) Projects(ctx context.Context) []models.SyncProject {
	if m.projectsFunc != nil {
		return m.projectsFunc(ctx)
	}
	return nil
}

func (m *syncServiceMock) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.SyncProject, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return models.SyncProject{}, nil
}

func (m *syncServiceMock) DeleteProject(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *syncServiceMock) CheckChanges(ctx context.Context) ([]models.SyncChange, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx)
	}
	return nil, nil
}

func (m *syncServiceMock) Ack(ctx context.Context, req models.AckRequest) (models.SyncProject, error) {
	if m.ackFunc != nil {
		return m.ackFunc(ctx, req)
	}
	return models.SyncProject{}, nil
}
