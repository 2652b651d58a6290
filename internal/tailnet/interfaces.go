package tailnet

import (
	"context"

	"github.com/meshdrive/meshdrive/models"
)

// InboundFile is a file-transfer signal observed on the IPN bus or via the
// periodic inbox listing.
type InboundFile struct {
	// Name is the filename as it appears in the tailnet inbox.
	Name string
	// Size is the declared size in bytes.
	Size int64
	// Path is the on-disk location of the completed file, when the control
	// plane reported one. Empty for files discovered via the inbox listing.
	Path string
	// FromPeer is the sending node's ID when known.
	FromPeer string
}

// LocalAPI is the narrow surface of the tailnet control plane used by the
// desktop node. All calls go over the local-only control socket; failures
// are returned as errors for the HTTP layer to translate, never panics.
type LocalAPI interface {
	// ListPeers returns the self node plus every peer that reports a
	// non-empty OS field (incompletely-registered peers are dropped).
	// The self node is always marked online.
	ListPeers(ctx context.Context) ([]models.PeerInfo, error)

	// PushFile streams the local file at path into peerID's inbox.
	PushFile(ctx context.Context, peerID, path string) error

	// WaitingFiles lists the files currently sitting in this node's inbox.
	WaitingFiles(ctx context.Context) ([]models.WaitingFile, error)

	// DownloadWaitingFile fetches an inbox file's bytes through the control
	// API. Buffered; used only as a fallback when no on-disk path is known.
	DownloadWaitingFile(ctx context.Context, name string) ([]byte, error)

	// DeleteWaitingFile removes a file from the inbox.
	DeleteWaitingFile(ctx context.Context, name string) error

	// Watch opens a long-lived streaming connection to the control API's
	// event bus and invokes notify for every file-transfer signal until ctx
	// is cancelled or the stream breaks.
	//
	// The bus has no buffering or backpressure: a stalled consumer causes
	// the upstream to drop events, so notify must not block. A malformed
	// frame is logged and skipped, never terminates the stream.
	Watch(ctx context.Context, notify func(InboundFile)) error
}
