package service

import (
	"context"
	"fmt"
	"os"

	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/store"
	"github.com/meshdrive/meshdrive/models"
)

type syncService struct {
	projects store.Projects
	logger   *logger.Logger
}

// NewSyncService owns the durable project table.
func NewSyncService(projects store.Projects, logger *logger.Logger) SyncService {
	return &syncService{projects: projects, logger: logger}
}

// Projects implements [SyncService].
func (s *syncService) Projects(ctx context.Context) []models.SyncProject {
	return s.projects.List()
}

// CreateProject implements [SyncService]. The table is persisted before the
// project is returned, so a crash right after the response never loses it.
func (s *syncService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.SyncProject, error) {
	if req.LocalPath == "" || req.RemotePath == "" {
		return models.SyncProject{}, ErrInvalidProject
	}

	project, err := s.projects.Create(req.LocalPath, req.RemotePath)
	if err != nil {
		return models.SyncProject{}, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info().Str("id", project.ID).Str("local", project.LocalPath).Msg("sync project created")
	return project, nil
}

// DeleteProject implements [SyncService].
func (s *syncService) DeleteProject(ctx context.Context, id string) error {
	if err := s.projects.Delete(id); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("sync project deleted")
	return nil
}

// CheckChanges implements [SyncService]. A project whose local file is
// missing is skipped: the file may not have been created yet, and reporting
// it as changed would make the client pull garbage.
func (s *syncService) CheckChanges(ctx context.Context) ([]models.SyncChange, error) {
	var changes []models.SyncChange

	for _, project := range s.projects.List() {
		if project.Paused {
			continue
		}

		info, err := os.Stat(project.LocalPath)
		if err != nil || info.IsDir() {
			continue
		}

		modified := info.ModTime().Unix()
		if modified <= project.LastSynced {
			continue
		}

		changes = append(changes, models.SyncChange{
			ID:          project.ID,
			LocalPath:   project.LocalPath,
			RemotePath:  project.RemotePath,
			NewModified: modified,
		})
	}

	return changes, nil
}

// Ack implements [SyncService].
func (s *syncService) Ack(ctx context.Context, req models.AckRequest) (models.SyncProject, error) {
	project, err := s.projects.Ack(req.ID, req.Timestamp)
	if err != nil {
		return models.SyncProject{}, err
	}
	return project, nil
}
