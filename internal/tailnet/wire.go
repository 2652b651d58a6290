package tailnet

// Wire types for the tailscaled local API. Field names follow the control
// plane's JSON documents, which use Go-style exported names.

type statusDocument struct {
	BackendState string                `json:"BackendState"`
	Self         *peerStatus           `json:"Self"`
	Peer         map[string]peerStatus `json:"Peer"`
}

type peerStatus struct {
	ID           string   `json:"ID"`
	HostName     string   `json:"HostName"`
	DNSName      string   `json:"DNSName"`
	TailscaleIPs []string `json:"TailscaleIPs"`
	Online       bool     `json:"Online"`
	OS           string   `json:"OS"`
}

type waitingFile struct {
	Name string `json:"Name"`
	Size int64  `json:"Size"`
}

// busNotification is one newline-delimited JSON frame from the IPN bus.
// Only the file-transfer fields are decoded; everything else is ignored.
type busNotification struct {
	FilesWaiting  map[string][]waitingFile `json:"FilesWaiting"`
	IncomingFiles []incomingFile           `json:"IncomingFiles"`
}

type incomingFile struct {
	Name         string  `json:"Name"`
	PartialPath  string  `json:"PartialPath"`
	DeclaredSize int64   `json:"DeclaredSize"`
	Received     int64   `json:"Received"`
	Done         bool    `json:"Done"`
	FinalPath    *string `json:"FinalPath"`
}
