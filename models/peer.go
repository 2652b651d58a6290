package models

// PeerInfo describes one node on the tailnet as reported by the local API.
type PeerInfo struct {
	ID          string   `json:"id"`
	Hostname    string   `json:"hostname"`
	DNSName     string   `json:"dns_name"`
	IPAddresses []string `json:"ip_addresses"`
	Online      bool     `json:"online"`
	IsSelf      bool     `json:"is_self"`
	OS          string   `json:"os"`
}
