package models

// SyncProject is a tracked mirror relationship between one desktop-side path
// and one mobile-side path. LocalPath is always interpreted relative to the
// node serving the request: the HTTP service reads LocalPath from its own
// filesystem and treats RemotePath as the peer's, so the mobile client swaps
// the pair when creating a project.
type SyncProject struct {
	ID         string `json:"id"`
	LocalPath  string `json:"local_path"`
	RemotePath string `json:"remote_path"`
	LastSynced int64  `json:"last_synced"`
	Paused     bool   `json:"paused"`
}

// SyncChange reports that a project's server-local file is newer than the
// watermark. Computed on demand, never persisted.
type SyncChange struct {
	ID          string `json:"id"`
	LocalPath   string `json:"local_path"`
	RemotePath  string `json:"remote_path"`
	NewModified int64  `json:"new_modified"`
}

// CreateProjectRequest is the body of POST /sync/projects.
type CreateProjectRequest struct {
	LocalPath  string `json:"local_path"`
	RemotePath string `json:"remote_path"`
}

// AckRequest advances a project's watermark after the receiving side has
// durably written the file content.
type AckRequest struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}
