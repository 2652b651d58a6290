package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) (*ProjectTable, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	table, err := NewProjectTable(path)
	require.NoError(t, err)
	return table, path
}

func TestProjectTable_CreatePersistsBeforeReturning(t *testing.T) {
	table, path := newTestTable(t)

	project, err := table.Create("/home/docs/report.txt", "Documents/report.txt")
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Zero(t, project.LastSynced)
	assert.False(t, project.Paused)

	// A fresh table loaded from the same file must already see the project.
	reloaded, err := NewProjectTable(path)
	require.NoError(t, err)
	got := reloaded.List()
	require.Len(t, got, 1)
	assert.Equal(t, project, got[0])
}

func TestProjectTable_Get(t *testing.T) {
	table, _ := newTestTable(t)
	project, err := table.Create("/a", "b")
	require.NoError(t, err)

	got, err := table.Get(project.ID)
	require.NoError(t, err)
	assert.Equal(t, project, got)

	_, err = table.Get("no-such-id")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectTable_DeleteUnknownID(t *testing.T) {
	table, _ := newTestTable(t)
	_, err := table.Create("/a", "b")
	require.NoError(t, err)

	err = table.Delete("no-such-id")
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Len(t, table.List(), 1, "failed delete leaves the table unchanged")
}

func TestProjectTable_Delete(t *testing.T) {
	table, path := newTestTable(t)
	first, err := table.Create("/a", "b")
	require.NoError(t, err)
	second, err := table.Create("/c", "d")
	require.NoError(t, err)

	require.NoError(t, table.Delete(first.ID))

	reloaded, err := NewProjectTable(path)
	require.NoError(t, err)
	got := reloaded.List()
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestProjectTable_AckAdvancesWatermark(t *testing.T) {
	table, _ := newTestTable(t)
	project, err := table.Create("/a", "b")
	require.NoError(t, err)

	acked, err := table.Ack(project.ID, 1700000000)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), acked.LastSynced)
}

func TestProjectTable_AckIsIdempotent(t *testing.T) {
	table, _ := newTestTable(t)
	project, err := table.Create("/a", "b")
	require.NoError(t, err)

	first, err := table.Ack(project.ID, 1700000000)
	require.NoError(t, err)
	second, err := table.Ack(project.ID, 1700000000)
	require.NoError(t, err)

	assert.Equal(t, first.LastSynced, second.LastSynced)
}

func TestProjectTable_AckNeverRewindsWatermark(t *testing.T) {
	table, _ := newTestTable(t)
	project, err := table.Create("/a", "b")
	require.NoError(t, err)

	_, err = table.Ack(project.ID, 2000)
	require.NoError(t, err)

	got, err := table.Ack(project.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), got.LastSynced, "a stale ack never lowers the watermark")
}

func TestProjectTable_AckUnknownID(t *testing.T) {
	table, _ := newTestTable(t)
	_, err := table.Ack("no-such-id", 1)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestNewProjectTable_MissingFileIsEmptyTable(t *testing.T) {
	table, err := NewProjectTable(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, table.List())
}

func TestNewProjectTable_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewProjectTable(path)
	assert.Error(t, err)
}
