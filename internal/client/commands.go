package client

// Command is a foreground request executed by the background task. Each
// variant maps to exactly one HTTP call and produces exactly one event,
// success or failure.
type Command interface {
	isCommand()
}

// DownloadFileCommand fetches a received file by inbox name and saves it to
// the output directory.
type DownloadFileCommand struct {
	Name string
}

// DownloadLastCommand fetches the most recently received file.
type DownloadLastCommand struct{}

// BrowseCommand lists a desktop-side directory.
type BrowseCommand struct {
	Path string
}

// PullFileCommand fetches an arbitrary desktop file by absolute path and
// saves it to the output directory.
type PullFileCommand struct {
	Path string
}

// UploadFileCommand pushes a mobile-local file into the desktop's upload
// root under its basename.
type UploadFileCommand struct {
	LocalPath string
}

// RefreshCommand rewinds the poll timer so the next loop iteration polls
// immediately. It performs no I/O itself.
type RefreshCommand struct{}

// CreateSyncProjectCommand registers a tracked mirror pair. LocalPath is the
// mobile-side path, RemotePath the desktop-side one; the client swaps the
// pair on the wire because the server interprets local_path as its own
// filesystem.
type CreateSyncProjectCommand struct {
	LocalPath  string
	RemotePath string
}

// DeleteSyncProjectCommand removes a tracked mirror pair by ID.
type DeleteSyncProjectCommand struct {
	ID string
}

// FetchSyncProjectsCommand re-reads the project table from the server.
type FetchSyncProjectsCommand struct{}

func (DownloadFileCommand) isCommand()      {}
func (DownloadLastCommand) isCommand()      {}
func (BrowseCommand) isCommand()            {}
func (PullFileCommand) isCommand()          {}
func (UploadFileCommand) isCommand()        {}
func (RefreshCommand) isCommand()           {}
func (CreateSyncProjectCommand) isCommand() {}
func (DeleteSyncProjectCommand) isCommand() {}
func (FetchSyncProjectsCommand) isCommand() {}
