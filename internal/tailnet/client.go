package tailnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/meshdrive/meshdrive/internal/config"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/models"
)

// baseURL is a placeholder host: every request is dialed over the unix
// socket regardless of the URL's host part.
const baseURL = "http://local-tailscaled.sock"

type client struct {
	http   *resty.Client
	logger *logger.Logger
}

// NewClient constructs a [LocalAPI] backed by the tailscaled control socket
// at tailnetCfg.SocketPath. The socket is not dialed here; a daemon that is
// down surfaces as a request error on first use.
func NewClient(tailnetCfg config.Tailnet, logger *logger.Logger) (LocalAPI, error) {
	socketPath := strings.TrimSpace(tailnetCfg.SocketPath)
	if socketPath == "" {
		return nil, fmt.Errorf("empty control socket path")
	}

	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", socketPath)
		},
	}

	httpClient := resty.New().
		SetTransport(transport).
		SetBaseURL(baseURL)

	return &client{http: httpClient, logger: logger}, nil
}

// ListPeers implements [LocalAPI]. It GETs /localapi/v0/status and flattens
// the status document into a peer list: the self node first (always online),
// then every peer with a non-empty OS field, sorted by hostname.
func (c *client) ListPeers(ctx context.Context) ([]models.PeerInfo, error) {
	var doc statusDocument

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&doc).
		Get("/localapi/v0/status")
	if err != nil {
		return nil, fmt.Errorf("status request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	var peers []models.PeerInfo
	if doc.Self != nil {
		self := toPeerInfo(*doc.Self)
		self.IsSelf = true
		self.Online = true
		peers = append(peers, self)
	}

	var others []models.PeerInfo
	for _, p := range doc.Peer {
		if p.OS == "" {
			continue
		}
		others = append(others, toPeerInfo(p))
	}
	sort.Slice(others, func(i, j int) bool { return others[i].Hostname < others[j].Hostname })

	return append(peers, others...), nil
}

func toPeerInfo(p peerStatus) models.PeerInfo {
	return models.PeerInfo{
		ID:          p.ID,
		Hostname:    p.HostName,
		DNSName:     strings.TrimSuffix(p.DNSName, "."),
		IPAddresses: p.TailscaleIPs,
		Online:      p.Online,
		OS:          p.OS,
	}
}

// PushFile implements [LocalAPI]. The file is streamed from disk into
// PUT /localapi/v0/file-put/{peer}?name={basename}; the daemon relays it to
// the peer's inbox.
func (c *client) PushFile(ctx context.Context, peerID, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	name := filepath.Base(path)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetQueryParam("name", name).
		SetBody(file).
		Put("/localapi/v0/file-put/" + url.PathEscape(peerID))
	if err != nil {
		return fmt.Errorf("file-put request: %w", err)
	}

	return mapAPIError(resp)
}

// WaitingFiles implements [LocalAPI].
func (c *client) WaitingFiles(ctx context.Context) ([]models.WaitingFile, error) {
	var wire []waitingFile

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&wire).
		Get("/localapi/v0/files")
	if err != nil {
		return nil, fmt.Errorf("files request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	files := make([]models.WaitingFile, 0, len(wire))
	for _, f := range wire {
		files = append(files, models.WaitingFile{Name: f.Name, Size: f.Size})
	}

	return files, nil
}

// DownloadWaitingFile implements [LocalAPI].
func (c *client) DownloadWaitingFile(ctx context.Context, name string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/localapi/v0/files/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("file download request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// DeleteWaitingFile implements [LocalAPI].
func (c *client) DeleteWaitingFile(ctx context.Context, name string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/localapi/v0/files/" + url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("file delete request: %w", err)
	}

	return mapAPIError(resp)
}

func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrFileNotFound, body)
	}

	return fmt.Errorf("localapi %s %s: http %d: %s",
		resp.Request.Method, resp.Request.URL, resp.StatusCode(), body)
}

// decodeFrame keeps the NDJSON parsing testable without a live stream.
func decodeFrame(line []byte) (busNotification, error) {
	var n busNotification
	err := json.Unmarshal(line, &n)
	return n, err
}
