package service

import (
	"context"
	"io"

	"github.com/meshdrive/meshdrive/models"
)

// TransferService covers everything that moves through the overlay network:
// the outbound send slot, the inbound inbox, the peer roster, and the
// transfer history.
type TransferService interface {
	// Status reports the last sent file, the last received file name, and
	// the server's working directory.
	Status(ctx context.Context) models.StatusResponse

	// WaitingFiles lists files sitting in the overlay inbox.
	WaitingFiles(ctx context.Context) ([]models.WaitingFile, error)

	// DeleteWaitingFile removes a file from the overlay inbox.
	DeleteWaitingFile(ctx context.Context, name string) error

	// DownloadLast resolves the most recently received file.
	// Returns ErrNoReceivedFile when nothing has been received yet.
	DownloadLast(ctx context.Context) (*Download, error)

	// DownloadNamed resolves a received file by inbox name.
	DownloadNamed(ctx context.Context, name string) (*Download, error)

	// Send pushes a desktop-local file to a peer's inbox, driving the
	// sent-file slot through its sending/terminal lifecycle.
	Send(ctx context.Context, req models.SendRequest) error

	// History lists recorded transfers, newest first.
	History(ctx context.Context, limit int) ([]models.TransferRecord, error)

	// Peers returns the cached peer roster without the self node.
	Peers(ctx context.Context) []models.PeerInfo

	// RefreshPeers re-reads the roster from the control plane. A failed
	// refresh keeps the previous roster.
	RefreshPeers(ctx context.Context) error

	// HandleInbound records a completed inbound transfer reported by the
	// event bus or the inbox listing.
	HandleInbound(ctx context.Context, name, path string, size int64)

	// SeedInbox backfills the last-received marker from the inbox listing
	// when no bus event has been seen yet.
	SeedInbox(ctx context.Context) error
}

// Download is a resolved file ready to be written to a response.
type Download struct {
	Name string
	Size int64
	Body io.ReadCloser
}

// FileService serves the desktop filesystem: remote browsing, ad-hoc pulls,
// and the two upload surfaces.
type FileService interface {
	// Browse lists a directory, hiding dotfiles, sorted by name.
	Browse(ctx context.Context, path string) ([]models.RemoteFile, error)

	// Pull opens an arbitrary readable file by absolute path.
	Pull(ctx context.Context, path string) (*Download, error)

	// Upload writes body under the configured upload root at relPath.
	Upload(ctx context.Context, relPath string, body io.Reader) error

	// SyncUpload writes body to an absolute path, creating parent
	// directories. Used by project reconciliation pushes.
	SyncUpload(ctx context.Context, absPath string, body io.Reader) error
}

// SyncService owns the durable sync-project table and the change check.
type SyncService interface {
	Projects(ctx context.Context) []models.SyncProject
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.SyncProject, error)
	DeleteProject(ctx context.Context, id string) error

	// CheckChanges reports every non-paused project whose server-local file
	// is newer than its watermark. Projects whose file is missing are
	// skipped, not errors.
	CheckChanges(ctx context.Context) ([]models.SyncChange, error)

	// Ack advances a project watermark. Idempotent; never rewinds.
	Ack(ctx context.Context, req models.AckRequest) (models.SyncProject, error)
}
