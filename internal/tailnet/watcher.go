package tailnet

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
)

// maxBusLine bounds a single bus frame. Frames carry metadata only, never
// file contents, so 1 MiB is generous.
const maxBusLine = 1 << 20

// Watch implements [LocalAPI]. It holds GET /localapi/v0/watch-ipn-bus open
// and decodes one JSON frame per line. Returns when ctx is cancelled or the
// daemon closes the stream; the caller decides whether to reconnect.
func (c *client) Watch(ctx context.Context, notify func(InboundFile)) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/localapi/v0/watch-ipn-bus")
	if err != nil {
		return fmt.Errorf("watch-ipn-bus request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != 200 {
		return fmt.Errorf("watch-ipn-bus: http %d", resp.StatusCode())
	}

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBusLine)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		frame, err := decodeFrame(line)
		if err != nil {
			c.logger.Warn().Err(err).Msg("skipping malformed bus frame")
			continue
		}

		c.dispatch(frame, notify)
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watch-ipn-bus stream: %w", err)
	}

	return ctx.Err()
}

// dispatch emits a signal for every completed incoming transfer and for
// every file announced as waiting in a peer's outbox toward us.
func (c *client) dispatch(frame busNotification, notify func(InboundFile)) {
	for _, in := range frame.IncomingFiles {
		if !in.Done {
			continue
		}

		signal := InboundFile{Name: in.Name, Size: in.DeclaredSize}
		if in.FinalPath != nil {
			signal.Path = *in.FinalPath
		}
		notify(signal)
	}

	for peerID, files := range frame.FilesWaiting {
		for _, f := range files {
			notify(InboundFile{Name: f.Name, Size: f.Size, FromPeer: peerID})
		}
	}
}
