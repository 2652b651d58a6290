package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/store"
	"github.com/meshdrive/meshdrive/internal/tailnet"
	"github.com/meshdrive/meshdrive/models"
)

type transferService struct {
	backend  tailnet.LocalAPI
	sent     *store.SentInfoStore
	received *store.ReceivedIndex
	peers    *store.PeerCache
	history  store.History

	logger *logger.Logger
}

// NewTransferService wires the transfer state machines to the overlay
// backend and the history DB.
func NewTransferService(backend tailnet.LocalAPI, sent *store.SentInfoStore, received *store.ReceivedIndex, peers *store.PeerCache, history store.History, logger *logger.Logger) TransferService {
	return &transferService{
		backend:  backend,
		sent:     sent,
		received: received,
		peers:    peers,
		history:  history,
		logger:   logger,
	}
}

// Status implements [TransferService]. It never fails: the response is
// assembled from in-memory state only.
func (t *transferService) Status(ctx context.Context) models.StatusResponse {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	return models.StatusResponse{
		LastSentFile:     t.sent.Last(),
		LastReceivedFile: t.received.Last(),
		ServerCwd:        cwd,
	}
}

// WaitingFiles implements [TransferService].
func (t *transferService) WaitingFiles(ctx context.Context) ([]models.WaitingFile, error) {
	files, err := t.backend.WaitingFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list waiting files: %w", err)
	}
	return files, nil
}

// DeleteWaitingFile implements [TransferService].
func (t *transferService) DeleteWaitingFile(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyPath
	}

	if err := t.backend.DeleteWaitingFile(ctx, name); err != nil {
		return fmt.Errorf("delete waiting file %s: %w", name, err)
	}

	t.received.Forget(name)
	return nil
}

// DownloadLast implements [TransferService].
func (t *transferService) DownloadLast(ctx context.Context) (*Download, error) {
	name := t.received.Last()
	if name == "" {
		return nil, ErrNoReceivedFile
	}
	return t.DownloadNamed(ctx, name)
}

// DownloadNamed implements [TransferService]. When the event bus reported an
// on-disk location the file is streamed from disk; otherwise the bytes are
// buffered through the control API and the inbox copy is deleted afterwards
// (cleanup failure is logged, not fatal).
func (t *transferService) DownloadNamed(ctx context.Context, name string) (*Download, error) {
	if name == "" {
		return nil, ErrEmptyPath
	}

	if path, ok := t.received.PathFor(name); ok {
		file, err := os.Open(path)
		if err == nil {
			info, statErr := file.Stat()
			if statErr != nil {
				file.Close()
				return nil, fmt.Errorf("stat received file: %w", statErr)
			}
			return &Download{Name: filepath.Base(path), Size: info.Size(), Body: file}, nil
		}
		// Stale path entry. Fall through to the buffered fetch.
		t.logger.Warn().Err(err).Str("name", name).Msg("recorded path unreadable, fetching via control api")
	}

	data, err := t.backend.DownloadWaitingFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", name, err)
	}

	if err := t.backend.DeleteWaitingFile(ctx, name); err != nil {
		t.logger.Warn().Err(err).Str("name", name).Msg("inbox cleanup failed after download")
	}

	return &Download{
		Name: name,
		Size: int64(len(data)),
		Body: io.NopCloser(bytes.NewReader(data)),
	}, nil
}

// Send implements [TransferService].
func (t *transferService) Send(ctx context.Context, req models.SendRequest) error {
	if req.PeerID == "" || req.Path == "" {
		return ErrEmptyPath
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotAFile, req.Path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotAFile, req.Path)
	}

	name := filepath.Base(req.Path)
	t.sent.Begin(name, req.PeerID, info.Size())

	err = t.backend.PushFile(ctx, req.PeerID, req.Path)
	t.sent.Finish(err == nil)

	if histErr := t.history.Append(ctx, models.TransferDirectionSent, name, req.PeerID, info.Size(), err == nil); histErr != nil {
		t.logger.Warn().Err(histErr).Str("name", name).Msg("history append failed")
	}

	if err != nil {
		return fmt.Errorf("send %s to %s: %w", name, req.PeerID, err)
	}
	return nil
}

// History implements [TransferService].
func (t *transferService) History(ctx context.Context, limit int) ([]models.TransferRecord, error) {
	records, err := t.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// Peers implements [TransferService]. Served from cache so a control-plane
// outage never empties the roster.
func (t *transferService) Peers(ctx context.Context) []models.PeerInfo {
	return t.peers.Others()
}

// RefreshPeers implements [TransferService].
func (t *transferService) RefreshPeers(ctx context.Context) error {
	peers, err := t.backend.ListPeers(ctx)
	if err != nil {
		return fmt.Errorf("refresh peers: %w", err)
	}

	t.peers.Replace(peers)
	return nil
}

// HandleInbound implements [TransferService].
func (t *transferService) HandleInbound(ctx context.Context, name, path string, size int64) {
	t.received.Record(name, path)

	if err := t.history.Append(ctx, models.TransferDirectionReceived, name, "", size, true); err != nil {
		t.logger.Warn().Err(err).Str("name", name).Msg("history append failed")
	}
}

// SeedInbox implements [TransferService]. Only the empty marker is seeded:
// the periodic listing has no ordering information, so it must never
// overwrite fresher bus data.
func (t *transferService) SeedInbox(ctx context.Context) error {
	if t.received.Last() != "" {
		return nil
	}

	files, err := t.backend.WaitingFiles(ctx)
	if err != nil {
		return fmt.Errorf("seed inbox: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	t.received.SeedLast(files[len(files)-1].Name)
	return nil
}
