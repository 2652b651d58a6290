package client

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/meshdrive/meshdrive/internal/utils"
	"github.com/meshdrive/meshdrive/models"
)

// reconcile runs both sync directions against the mirrored project table.
// Pull first so a change produced on the desktop lands before a stale local
// copy could be pushed over it. Both sides use last-writer-wins on the
// watermark; concurrent edits of the same file on both nodes are resolved by
// whichever side reconciles last.
func (c *Client) reconcile(ctx context.Context, events chan Event) {
	c.reconcilePull(ctx, events)
	c.reconcilePush(ctx)
}

// reconcilePull fetches every pending desktop-side change, writes the content
// to the project's mobile path, and acknowledges the new watermark. The ack
// only follows a durable write; a write failure leaves the change pending for
// the next tick.
func (c *Client) reconcilePull(ctx context.Context, events chan Event) {
	changes, err := c.api.SyncCheck(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("sync check failed")
		return
	}
	if len(changes) == 0 {
		return
	}

	c.emit(ctx, events, SyncChangesAvailableEvent{Changes: changes})

	for _, change := range changes {
		if err := c.pullChange(ctx, change); err != nil {
			c.logger.Warn().Err(err).
				Str("project_id", change.ID).
				Msg("pulling sync change failed")
			continue
		}
		c.emit(ctx, events, SyncPullCompleteEvent{ProjectID: change.ID, Path: change.RemotePath})
	}
}

func (c *Client) pullChange(ctx context.Context, change models.SyncChange) error {
	name, data, err := c.api.Pull(ctx, change.LocalPath)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(change.RemotePath), 0o755); err != nil {
		return err
	}
	if err = os.WriteFile(change.RemotePath, data, 0o600); err != nil {
		return err
	}

	// Pin the mtime to the acknowledged watermark so the push pass does not
	// immediately echo the file back.
	stamp := time.Unix(change.NewModified, 0)
	if err = os.Chtimes(change.RemotePath, stamp, stamp); err != nil {
		return err
	}

	project, err := c.api.SyncAck(ctx, models.AckRequest{
		ID:        change.ID,
		Timestamp: change.NewModified,
	})
	if err != nil {
		// Content is on disk; the next check re-reports the change and the
		// idempotent ack retries then.
		return err
	}

	c.updateMirror(project)
	c.queue.Push("Project synced", name)
	return nil
}

// reconcilePush uploads every mobile-side file whose mtime moved past the
// project watermark, then acknowledges the new mtime. Failures are per
// project and never block the rest.
func (c *Client) reconcilePush(ctx context.Context) {
	for _, project := range c.projects {
		if project.Paused {
			continue
		}

		mtime, err := utils.FileMtime(project.RemotePath)
		if err != nil || mtime <= project.LastSynced {
			continue
		}

		if err := c.pushProject(ctx, project, mtime); err != nil {
			c.logger.Warn().Err(err).
				Str("project_id", project.ID).
				Msg("pushing sync change failed")
		}
	}
}

func (c *Client) pushProject(ctx context.Context, project models.SyncProject, mtime int64) error {
	data, err := os.ReadFile(project.RemotePath)
	if err != nil {
		return err
	}

	if err = c.api.SyncUpload(ctx, project.LocalPath, data); err != nil {
		return err
	}

	updated, err := c.api.SyncAck(ctx, models.AckRequest{
		ID:        project.ID,
		Timestamp: mtime,
	})
	if err != nil {
		return err
	}

	c.updateMirror(updated)
	return nil
}

func (c *Client) updateMirror(project models.SyncProject) {
	for i := range c.projects {
		if c.projects[i].ID == project.ID {
			c.projects[i] = project
			c.saveProjectMirror()
			return
		}
	}
}
