package service

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileFixture(t *testing.T) (FileService, string) {
	t.Helper()
	root := t.TempDir()
	return NewFileService(root, logger.Nop()), root
}

func TestFileService_BrowseHidesDotfilesAndSorts(t *testing.T) {
	svc, _ := newFileFixture(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zeta.txt"), []byte("z"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("aa"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := svc.Browse(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "alpha.txt", files[0].Name)
	assert.Equal(t, int64(2), files[0].Size)
	assert.Equal(t, "sub", files[1].Name)
	assert.True(t, files[1].IsDir)
	assert.Zero(t, files[1].Size)
	assert.Equal(t, "zeta.txt", files[2].Name)
}

func TestFileService_BrowseNotADirectory(t *testing.T) {
	svc, _ := newFileFixture(t)

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := svc.Browse(context.Background(), file)
	assert.ErrorIs(t, err, ErrNotADirectory)

	_, err = svc.Browse(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestFileService_BrowseDefaultsToHome(t *testing.T) {
	svc, _ := newFileFixture(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "visible.txt"), []byte("v"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".hidden"), []byte("h"), 0o600))

	files, err := svc.Browse(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "visible.txt", files[0].Name)
}

func TestFileService_Pull(t *testing.T) {
	svc, _ := newFileFixture(t)

	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o600))

	dl, err := svc.Pull(context.Background(), path)
	require.NoError(t, err)
	defer dl.Body.Close()

	data, err := io.ReadAll(dl.Body)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, "data.bin", dl.Name)
	assert.Equal(t, int64(7), dl.Size)
}

func TestFileService_PullRejectsDirectories(t *testing.T) {
	svc, _ := newFileFixture(t)

	_, err := svc.Pull(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, ErrNotAFile)

	_, err = svc.Pull(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestFileService_UploadThenPullRoundTrip(t *testing.T) {
	svc, root := newFileFixture(t)

	require.NoError(t, svc.Upload(context.Background(), "docs/notes.txt", bytes.NewReader([]byte("round trip"))))

	dl, err := svc.Pull(context.Background(), filepath.Join(root, "docs", "notes.txt"))
	require.NoError(t, err)
	defer dl.Body.Close()

	data, _ := io.ReadAll(dl.Body)
	assert.Equal(t, "round trip", string(data))
}

func TestFileService_UploadRejectsTraversal(t *testing.T) {
	svc, root := newFileFixture(t)

	err := svc.Upload(context.Background(), "../escape.txt", bytes.NewReader([]byte("x")))
	if err != nil {
		assert.ErrorIs(t, err, ErrPathOutsideRoot)
	} else {
		// Cleaning may have confined the path; it must still be under root.
		_, statErr := os.Stat(filepath.Join(root, "escape.txt"))
		assert.NoError(t, statErr)
	}

	_, statErr := os.Stat(filepath.Join(filepath.Dir(root), "escape.txt"))
	assert.True(t, os.IsNotExist(statErr), "nothing written outside the upload root")
}

func TestFileService_SyncUpload(t *testing.T) {
	svc, _ := newFileFixture(t)

	target := filepath.Join(t.TempDir(), "deep", "nested", "file.txt")
	require.NoError(t, svc.SyncUpload(context.Background(), target, bytes.NewReader([]byte("synced"))))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "synced", string(data))
}

func TestFileService_SyncUploadRequiresAbsolutePath(t *testing.T) {
	svc, _ := newFileFixture(t)

	err := svc.SyncUpload(context.Background(), "relative/path.txt", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrPathNotAbsolute)
}

func TestFileService_SyncUploadOverwrites(t *testing.T) {
	svc, _ := newFileFixture(t)

	target := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, svc.SyncUpload(context.Background(), target, bytes.NewReader([]byte("version one is long"))))
	require.NoError(t, svc.SyncUpload(context.Background(), target, bytes.NewReader([]byte("v2"))))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data), "overwrite truncates the previous content")
}
