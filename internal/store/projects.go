package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/meshdrive/meshdrive/models"
)

// ProjectTable is the durable sync-project table. State lives in memory
// behind one mutex and is written through to a JSON file on every mutation,
// before the caller sees the result. The lock is never held across disk I/O
// failure handling beyond the write itself; reads are lock-then-copy.
type ProjectTable struct {
	path string

	mu       sync.Mutex
	projects []models.SyncProject
}

type projectFileState struct {
	Projects []models.SyncProject `json:"projects"`
}

// NewProjectTable loads the table from path, treating a missing file as an
// empty table. A file that exists but does not parse is an error: silently
// starting empty would orphan every watermark.
func NewProjectTable(path string) (*ProjectTable, error) {
	t := &ProjectTable{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("read project table: %w", err)
	}

	var st projectFileState
	if err = json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode project table: %w", err)
	}

	t.projects = st.Projects
	return t, nil
}

// persist writes the table through to disk. Callers hold t.mu.
func (t *ProjectTable) persist() error {
	dir := filepath.Dir(t.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create project table dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(projectFileState{Projects: t.projects}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode project table: %w", err)
	}

	if err = os.WriteFile(t.path, payload, 0o600); err != nil {
		return fmt.Errorf("write project table: %w", err)
	}

	return nil
}

// List returns a copy of every project.
func (t *ProjectTable) List() []models.SyncProject {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.SyncProject, len(t.projects))
	copy(out, t.projects)
	return out
}

// Get returns the project with the given ID.
func (t *ProjectTable) Get(id string) (models.SyncProject, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, p := range t.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.SyncProject{}, ErrProjectNotFound
}

// Create adds a project with a fresh ID and a zero watermark, persisting the
// table before returning it.
func (t *ProjectTable) Create(localPath, remotePath string) (models.SyncProject, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	project := models.SyncProject{
		ID:         uuid.NewString(),
		LocalPath:  localPath,
		RemotePath: remotePath,
	}

	t.projects = append(t.projects, project)
	if err := t.persist(); err != nil {
		t.projects = t.projects[:len(t.projects)-1]
		return models.SyncProject{}, err
	}

	return project, nil
}

// Delete removes the project with the given ID, persisting the table before
// returning. Unknown IDs leave the table untouched.
func (t *ProjectTable) Delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, p := range t.projects {
		if p.ID != id {
			continue
		}

		old := t.projects
		next := make([]models.SyncProject, 0, len(old)-1)
		next = append(next, old[:i]...)
		next = append(next, old[i+1:]...)

		t.projects = next
		if err := t.persist(); err != nil {
			t.projects = old
			return err
		}
		return nil
	}

	return ErrProjectNotFound
}

// Ack advances the project's watermark to timestamp. The watermark only
// moves forward: an ack at or below the current value changes nothing and is
// not an error, so a repeated ack is safe.
func (t *ProjectTable) Ack(id string, timestamp int64) (models.SyncProject, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.projects {
		if t.projects[i].ID != id {
			continue
		}

		if timestamp > t.projects[i].LastSynced {
			prev := t.projects[i].LastSynced
			t.projects[i].LastSynced = timestamp
			if err := t.persist(); err != nil {
				t.projects[i].LastSynced = prev
				return models.SyncProject{}, err
			}
		}
		return t.projects[i], nil
	}

	return models.SyncProject{}, ErrProjectNotFound
}
