package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/models"
)

type fileService struct {
	uploadRoot string
	logger     *logger.Logger
}

// NewFileService serves the desktop filesystem. uploadRoot bounds the
// relative upload surface; browse and pull are intentionally unbounded
// because every caller is already inside the private overlay.
func NewFileService(uploadRoot string, logger *logger.Logger) FileService {
	return &fileService{uploadRoot: uploadRoot, logger: logger}
}

// Browse implements [FileService]. An empty path lists the server's home
// directory. Dotfiles are hidden; entries are sorted by name ascending.
// Sizes are reported for regular files only.
func (f *fileService) Browse(ctx context.Context, path string) ([]models.RemoteFile, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		path = home
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}

	files := make([]models.RemoteFile, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		file := models.RemoteFile{Name: entry.Name(), IsDir: entry.IsDir()}
		if info, err := entry.Info(); err == nil {
			file.Modified = info.ModTime().Unix()
			if !entry.IsDir() {
				file.Size = info.Size()
			}
		}
		files = append(files, file)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Pull implements [FileService].
func (f *fileService) Pull(ctx context.Context, path string) (*Download, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Download{Name: filepath.Base(path), Size: info.Size(), Body: file}, nil
}

// Upload implements [FileService]. relPath is cleaned and must stay under
// the upload root.
func (f *fileService) Upload(ctx context.Context, relPath string, body io.Reader) error {
	if relPath == "" {
		return ErrEmptyPath
	}

	target := filepath.Join(f.uploadRoot, filepath.Clean("/"+relPath))
	if !strings.HasPrefix(target, filepath.Clean(f.uploadRoot)+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathOutsideRoot, relPath)
	}

	return f.write(target, body)
}

// SyncUpload implements [FileService]. The path is absolute and trusted:
// reconciliation writes wherever the project says.
func (f *fileService) SyncUpload(ctx context.Context, absPath string, body io.Reader) error {
	if absPath == "" {
		return ErrEmptyPath
	}
	if !filepath.IsAbs(absPath) {
		return fmt.Errorf("%w: %s", ErrPathNotAbsolute, absPath)
	}

	return f.write(absPath, body)
}

func (f *fileService) write(target string, body io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}

	if _, err = io.Copy(file, body); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}

	return file.Close()
}
