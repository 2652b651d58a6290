package models

// RemoteFile is one directory-listing entry returned by the browse endpoint.
// Entries are ephemeral and recomputed on every call.
type RemoteFile struct {
	Name     string `json:"name"`
	IsDir    bool   `json:"is_dir"`
	Size     int64  `json:"size"`
	Modified int64  `json:"modified"`
}
