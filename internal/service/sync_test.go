package service

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/store"
	"github.com/meshdrive/meshdrive/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSyncFixture(t *testing.T) (SyncService, *store.ProjectTable) {
	t.Helper()
	table, err := store.NewProjectTable(filepath.Join(t.TempDir(), "projects.json"))
	require.NoError(t, err)
	return NewSyncService(table, logger.Nop()), table
}

func TestSyncService_CreateProject(t *testing.T) {
	svc, _ := newSyncFixture(t)

	project, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{
		LocalPath:  "/home/docs/report.txt",
		RemotePath: "Documents/report.txt",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)

	projects := svc.Projects(context.Background())
	require.Len(t, projects, 1)
	assert.Equal(t, project, projects[0])
}

func TestSyncService_CreateProjectValidation(t *testing.T) {
	svc, _ := newSyncFixture(t)

	_, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{RemotePath: "b"})
	assert.ErrorIs(t, err, ErrInvalidProject)

	_, err = svc.CreateProject(context.Background(), models.CreateProjectRequest{LocalPath: "a"})
	assert.ErrorIs(t, err, ErrInvalidProject)
}

func TestSyncService_DeleteProject(t *testing.T) {
	svc, _ := newSyncFixture(t)

	project, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{LocalPath: "/a", RemotePath: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(context.Background(), project.ID))
	assert.Empty(t, svc.Projects(context.Background()))

	assert.ErrorIs(t, svc.DeleteProject(context.Background(), project.ID), store.ErrProjectNotFound)
}

func TestSyncService_CheckChanges(t *testing.T) {
	svc, table := newSyncFixture(t)

	changed := filepath.Join(t.TempDir(), "changed.txt")
	require.NoError(t, os.WriteFile(changed, []byte("new"), 0o600))

	current := filepath.Join(t.TempDir(), "current.txt")
	require.NoError(t, os.WriteFile(current, []byte("old"), 0o600))

	changedProject, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{LocalPath: changed, RemotePath: "r1"})
	require.NoError(t, err)

	currentProject, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{LocalPath: current, RemotePath: "r2"})
	require.NoError(t, err)

	// Missing file: tracked but never created locally.
	_, err = svc.CreateProject(context.Background(), models.CreateProjectRequest{LocalPath: filepath.Join(t.TempDir(), "absent.txt"), RemotePath: "r3"})
	require.NoError(t, err)

	// Watermark at the file's mtime means "already synced".
	info, err := os.Stat(current)
	require.NoError(t, err)
	_, err = table.Ack(currentProject.ID, info.ModTime().Unix())
	require.NoError(t, err)

	changes, err := svc.CheckChanges(context.Background())
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, changedProject.ID, changes[0].ID)
	assert.Equal(t, changed, changes[0].LocalPath)
	assert.Positive(t, changes[0].NewModified)
}

func TestSyncService_CheckChangesAfterAckIsQuiet(t *testing.T) {
	svc, _ := newSyncFixture(t)

	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	project, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{LocalPath: path, RemotePath: "r"})
	require.NoError(t, err)

	changes, err := svc.CheckChanges(context.Background())
	require.NoError(t, err)
	require.Len(t, changes, 1)

	_, err = svc.Ack(context.Background(), models.AckRequest{ID: project.ID, Timestamp: changes[0].NewModified})
	require.NoError(t, err)

	changes, err = svc.CheckChanges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, changes, "an acked change stops being reported")
}

func TestSyncService_CheckChangesReappearsAfterModification(t *testing.T) {
	svc, _ := newSyncFixture(t)

	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	project, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{LocalPath: path, RemotePath: "r"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	_, err = svc.Ack(context.Background(), models.AckRequest{ID: project.ID, Timestamp: info.ModTime().Unix()})
	require.NoError(t, err)

	future := info.ModTime().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	changes, err := svc.CheckChanges(context.Background())
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, future.Unix(), changes[0].NewModified)
}

func TestSyncService_CheckChangesSkipsPaused(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0o600))

	tablePath := filepath.Join(t.TempDir(), "projects.json")
	state := `{"projects": [{"id": "p1", "local_path": ` + strconv.Quote(file) + `, "remote_path": "r", "last_synced": 0, "paused": true}]}`
	require.NoError(t, os.WriteFile(tablePath, []byte(state), 0o600))

	table, err := store.NewProjectTable(tablePath)
	require.NoError(t, err)
	svc := NewSyncService(table, logger.Nop())

	changes, err := svc.CheckChanges(context.Background())
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestSyncService_AckUnknownProject(t *testing.T) {
	svc, _ := newSyncFixture(t)

	_, err := svc.Ack(context.Background(), models.AckRequest{ID: "nope", Timestamp: 1})
	assert.ErrorIs(t, err, store.ErrProjectNotFound)
}
