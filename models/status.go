package models

// StatusResponse is the JSON snapshot served by GET /status. It is built
// purely from in-memory state and never touches the tailnet IPC.
type StatusResponse struct {
	LastSentFile     *SentFileInfo `json:"last_sent_file"`
	LastReceivedFile string        `json:"last_received_file,omitempty"`
	ServerCwd        string        `json:"server_cwd"`
}

// FilesResponse wraps the inbox listing served by GET /files.
type FilesResponse struct {
	Files []WaitingFile `json:"files"`
}
