package client

import "github.com/meshdrive/meshdrive/models"

// Event is a typed message emitted by the background task. The channel
// guarantees FIFO delivery per source; no ordering is guaranteed between a
// command's result event and a concurrent poll-driven event.
type Event interface {
	isEvent()
}

// StatusUpdateEvent carries the latest status snapshot. Connected=false
// means the desktop was unreachable; Status is zero-valued in that case.
type StatusUpdateEvent struct {
	Connected bool
	Status    models.StatusResponse
}

// FilesUpdateEvent carries the latest inbox listing.
type FilesUpdateEvent struct {
	Files []models.WaitingFile
}

// BrowseUpdateEvent answers a BrowseCommand.
type BrowseUpdateEvent struct {
	Path  string
	Files []models.RemoteFile
}

// DownloadCompleteEvent reports a received file saved to the output dir.
type DownloadCompleteEvent struct {
	Name string
	Path string
}

// PullCompleteEvent reports an ad-hoc pulled file saved to the output dir.
type PullCompleteEvent struct {
	Name string
	Path string
}

// UploadCompleteEvent reports a finished upload.
type UploadCompleteEvent struct {
	Name string
}

// PeersUpdateEvent carries the latest peer roster.
type PeersUpdateEvent struct {
	Peers []models.PeerInfo
}

// SyncProjectsUpdateEvent carries the latest project table.
type SyncProjectsUpdateEvent struct {
	Projects []models.SyncProject
}

// SyncChangesAvailableEvent reports pending pull-direction changes.
type SyncChangesAvailableEvent struct {
	Changes []models.SyncChange
}

// SyncPullCompleteEvent reports one reconciled pull written to disk and
// acknowledged.
type SyncPullCompleteEvent struct {
	ProjectID string
	Path      string
}

// ErrorEvent carries a human-readable failure message. Never fatal to the
// poll loop.
type ErrorEvent struct {
	Message string
}

func (StatusUpdateEvent) isEvent()         {}
func (FilesUpdateEvent) isEvent()          {}
func (BrowseUpdateEvent) isEvent()         {}
func (DownloadCompleteEvent) isEvent()     {}
func (PullCompleteEvent) isEvent()         {}
func (UploadCompleteEvent) isEvent()       {}
func (PeersUpdateEvent) isEvent()          {}
func (SyncProjectsUpdateEvent) isEvent()   {}
func (SyncChangesAvailableEvent) isEvent() {}
func (SyncPullCompleteEvent) isEvent()     {}
func (ErrorEvent) isEvent()                {}
