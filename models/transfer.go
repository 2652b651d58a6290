package models

// SentFileInfo is the single slot describing the most recent outbound
// transfer. A new send overwrites the slot; Sending=true is always followed
// by a terminal update with Sending=false.
type SentFileInfo struct {
	Name      string `json:"name"`
	PeerID    string `json:"peer_id"`
	Size      int64  `json:"size"`
	Timestamp int64  `json:"timestamp"`
	Succeeded bool   `json:"succeeded"`
	Sending   bool   `json:"sending"`
}

// WaitingFile is an entry in the tailnet inbox that has not been picked up yet.
type WaitingFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// SendRequest asks the desktop node to push a local file to a peer's inbox.
type SendRequest struct {
	PeerID string `json:"peer_id"`
	Path   string `json:"path"`
}

// Transfer direction labels stored in the history table.
const (
	TransferDirectionSent     = "sent"
	TransferDirectionReceived = "received"
)

// TransferRecord is one row of the node-local transfer history.
type TransferRecord struct {
	ID        string `json:"id"`
	Direction string `json:"direction"`
	Name      string `json:"name"`
	PeerID    string `json:"peer_id"`
	Size      int64  `json:"size"`
	Succeeded bool   `json:"succeeded"`
	At        int64  `json:"at"`
}
