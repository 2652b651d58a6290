package client

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/meshdrive/meshdrive/models"
)

// run is the background task: drain commands, poll if due, reconcile, sleep
// a short slice. Commands are drained first every iteration so their latency
// is bounded by the command slice, not the poll interval.
func (c *Client) run(ctx context.Context, commands chan Command, events chan Event) {
	defer c.wg.Done()
	defer close(events)

	// Surface cached state immediately so the UI has something to render
	// before the first poll completes.
	if len(c.peers) > 0 {
		c.emit(ctx, events, PeersUpdateEvent{Peers: c.peers})
	}
	if len(c.projects) > 0 {
		c.emit(ctx, events, SyncProjectsUpdateEvent{Projects: c.projects})
	}

	for {
		c.drainCommands(ctx, commands, events)

		if c.clock.Since(c.lastPoll) >= c.cfg.PollInterval {
			c.pollOnce(ctx, events)
			c.lastPoll = c.clock.Now()
		}

		select {
		case <-ctx.Done():
			return
		case <-c.clock.After(c.cfg.CommandSlice):
		}
	}
}

func (c *Client) drainCommands(ctx context.Context, commands chan Command, events chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-commands:
			c.execute(ctx, cmd, events)
		default:
			return
		}
	}
}

// execute maps one command to one HTTP call and exactly one event.
func (c *Client) execute(ctx context.Context, cmd Command, events chan Event) {
	switch cmd := cmd.(type) {
	case DownloadFileCommand:
		name, data, err := c.api.DownloadNamed(ctx, cmd.Name)
		c.finishSave(ctx, events, name, data, err, func(name, path string) Event {
			return DownloadCompleteEvent{Name: name, Path: path}
		})

	case DownloadLastCommand:
		name, data, err := c.api.DownloadLast(ctx)
		c.finishSave(ctx, events, name, data, err, func(name, path string) Event {
			return DownloadCompleteEvent{Name: name, Path: path}
		})

	case BrowseCommand:
		files, err := c.api.Browse(ctx, cmd.Path)
		if err != nil {
			c.emit(ctx, events, ErrorEvent{Message: "browse failed: " + err.Error()})
			return
		}
		c.emit(ctx, events, BrowseUpdateEvent{Path: cmd.Path, Files: files})

	case PullFileCommand:
		name, data, err := c.api.Pull(ctx, cmd.Path)
		c.finishSave(ctx, events, name, data, err, func(name, path string) Event {
			return PullCompleteEvent{Name: name, Path: path}
		})

	case UploadFileCommand:
		data, err := os.ReadFile(cmd.LocalPath)
		if err != nil {
			c.emit(ctx, events, ErrorEvent{Message: "upload failed: " + err.Error()})
			return
		}

		name := filepath.Base(cmd.LocalPath)
		if err = c.api.Upload(ctx, name, data); err != nil {
			c.emit(ctx, events, ErrorEvent{Message: "upload failed: " + err.Error()})
			return
		}
		c.emit(ctx, events, UploadCompleteEvent{Name: name})

	case RefreshCommand:
		c.lastPoll = time.Time{}

	case CreateSyncProjectCommand:
		// The server reads local_path as its own filesystem, so the pair is
		// swapped on the wire.
		project, err := c.api.CreateProject(ctx, swapProjectPaths(cmd))
		if err != nil {
			c.emit(ctx, events, ErrorEvent{Message: "create sync project failed: " + err.Error()})
			return
		}

		c.projects = append(c.projects, project)
		c.saveProjectMirror()
		c.emit(ctx, events, SyncProjectsUpdateEvent{Projects: c.projects})

	case DeleteSyncProjectCommand:
		if err := c.api.DeleteProject(ctx, cmd.ID); err != nil {
			c.emit(ctx, events, ErrorEvent{Message: "delete sync project failed: " + err.Error()})
			return
		}

		kept := c.projects[:0]
		for _, p := range c.projects {
			if p.ID != cmd.ID {
				kept = append(kept, p)
			}
		}
		c.projects = kept
		c.saveProjectMirror()
		c.emit(ctx, events, SyncProjectsUpdateEvent{Projects: c.projects})

	case FetchSyncProjectsCommand:
		projects, err := c.api.Projects(ctx)
		if err != nil {
			c.emit(ctx, events, ErrorEvent{Message: "fetch sync projects failed: " + err.Error()})
			return
		}

		c.projects = projects
		c.saveProjectMirror()
		c.emit(ctx, events, SyncProjectsUpdateEvent{Projects: c.projects})
	}
}

// finishSave writes fetched bytes to the output dir and emits either the
// completion event built by mkEvent or a single ErrorEvent.
func (c *Client) finishSave(ctx context.Context, events chan Event, name string, data []byte, err error, mkEvent func(name, path string) Event) {
	if err != nil {
		c.emit(ctx, events, ErrorEvent{Message: "transfer failed: " + err.Error()})
		return
	}

	savedPath, err := c.saveToOutput(name, data)
	if err != nil {
		c.emit(ctx, events, ErrorEvent{Message: "saving file failed: " + err.Error()})
		return
	}

	c.emit(ctx, events, mkEvent(name, savedPath))
}

func (c *Client) saveToOutput(name string, data []byte) (string, error) {
	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return "", err
	}

	// The server controls the name; keep only its basename so a hostile
	// header cannot escape the output dir.
	target := filepath.Join(c.cfg.OutputDir, path.Base(name))
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return "", err
	}
	return target, nil
}

// pollOnce runs one periodic poll: status, inbox, peers, projects, then
// reconciliation. A status failure marks the client disconnected and skips
// the rest of the tick; the peer roster is kept with online flags lowered.
func (c *Client) pollOnce(ctx context.Context, events chan Event) {
	status, err := c.api.Status(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("status poll failed")
		c.markDisconnected(ctx, events)
		return
	}

	c.connected = true
	c.observer.observe(status, c.queue)
	c.emit(ctx, events, StatusUpdateEvent{Connected: true, Status: status})

	if files, err := c.api.Files(ctx); err == nil {
		c.emit(ctx, events, FilesUpdateEvent{Files: files})
	} else {
		c.logger.Warn().Err(err).Msg("files poll failed")
	}

	if peers, err := c.api.Peers(ctx); err == nil {
		c.peers = peers
		if err := c.cache.SavePeers(peers); err != nil {
			c.logger.Warn().Err(err).Msg("saving peer cache failed")
		}
		c.emit(ctx, events, PeersUpdateEvent{Peers: c.peers})
	} else {
		c.logger.Warn().Err(err).Msg("peers poll failed")
	}

	if projects, err := c.api.Projects(ctx); err == nil {
		c.projects = projects
		c.saveProjectMirror()
		c.emit(ctx, events, SyncProjectsUpdateEvent{Projects: c.projects})
	} else {
		c.logger.Warn().Err(err).Msg("projects poll failed")
	}

	c.reconcile(ctx, events)
}

func (c *Client) markDisconnected(ctx context.Context, events chan Event) {
	c.connected = false

	// The roster survives the outage; only the liveness flags change.
	for i := range c.peers {
		c.peers[i].Online = false
	}

	c.emit(ctx, events, StatusUpdateEvent{Connected: false})
	c.emit(ctx, events, PeersUpdateEvent{Peers: c.peers})
}

func (c *Client) saveProjectMirror() {
	if err := c.cache.SaveProjects(c.projects); err != nil {
		c.logger.Warn().Err(err).Msg("saving project mirror failed")
	}
}

func swapProjectPaths(cmd CreateSyncProjectCommand) models.CreateProjectRequest {
	return models.CreateProjectRequest{
		LocalPath:  cmd.RemotePath,
		RemotePath: cmd.LocalPath,
	}
}
