package client

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/meshdrive/meshdrive/models"
)

// desktopAPI is the typed surface of the desktop node's status/sync service.
// One instance per client task; never shared across goroutines.
type desktopAPI struct {
	http *resty.Client
}

func newDesktopAPI(serverURL string, timeout time.Duration) (*desktopAPI, error) {
	base, err := normalizeBaseURL(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	httpClient := resty.New().
		SetBaseURL(base).
		SetTimeout(timeout)

	return &desktopAPI{http: httpClient}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (a *desktopAPI) Status(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}

func (a *desktopAPI) Files(ctx context.Context) ([]models.WaitingFile, error) {
	var files models.FilesResponse

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&files).
		Get("/files")
	if err != nil {
		return nil, fmt.Errorf("files request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return files.Files, nil
}

func (a *desktopAPI) Peers(ctx context.Context) ([]models.PeerInfo, error) {
	var peers []models.PeerInfo

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&peers).
		Get("/peers")
	if err != nil {
		return nil, fmt.Errorf("peers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return peers, nil
}

func (a *desktopAPI) Browse(ctx context.Context, dirPath string) ([]models.RemoteFile, error) {
	var files []models.RemoteFile

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&files).
		SetQueryParam("path", dirPath).
		Get("/browse")
	if err != nil {
		return nil, fmt.Errorf("browse request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return files, nil
}

// Pull fetches an arbitrary desktop file. The returned name comes from the
// Content-Disposition header, falling back to the path's basename.
func (a *desktopAPI) Pull(ctx context.Context, filePath string) (string, []byte, error) {
	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParam("path", filePath).
		Get("/pull")
	if err != nil {
		return "", nil, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", nil, err
	}

	return fileNameFrom(resp, path.Base(filePath)), resp.Body(), nil
}

func (a *desktopAPI) DownloadLast(ctx context.Context) (string, []byte, error) {
	return a.download(ctx, "/download", "received-file")
}

func (a *desktopAPI) DownloadNamed(ctx context.Context, name string) (string, []byte, error) {
	return a.download(ctx, "/download/"+url.PathEscape(name), name)
}

func (a *desktopAPI) download(ctx context.Context, endpoint, fallbackName string) (string, []byte, error) {
	resp, err := a.http.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return "", nil, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", nil, err
	}

	return fileNameFrom(resp, fallbackName), resp.Body(), nil
}

func fileNameFrom(resp *resty.Response, fallback string) string {
	if cd := resp.Header().Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return fallback
}

func (a *desktopAPI) Upload(ctx context.Context, relPath string, data []byte) error {
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Put("/upload/" + relPath)
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *desktopAPI) SyncUpload(ctx context.Context, absPath string, data []byte) error {
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetQueryParam("path", absPath).
		SetBody(data).
		Put("/sync/upload")
	if err != nil {
		return fmt.Errorf("sync upload request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *desktopAPI) Projects(ctx context.Context) ([]models.SyncProject, error) {
	var projects []models.SyncProject

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&projects).
		Get("/sync/projects")
	if err != nil {
		return nil, fmt.Errorf("projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return projects, nil
}

func (a *desktopAPI) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.SyncProject, error) {
	var project models.SyncProject

	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&project).
		Post("/sync/projects")
	if err != nil {
		return models.SyncProject{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncProject{}, err
	}

	return project, nil
}

func (a *desktopAPI) DeleteProject(ctx context.Context, id string) error {
	resp, err := a.http.R().
		SetContext(ctx).
		Delete("/sync/projects/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *desktopAPI) SyncCheck(ctx context.Context) ([]models.SyncChange, error) {
	var changes []models.SyncChange

	resp, err := a.http.R().
		SetContext(ctx).
		SetResult(&changes).
		Get("/sync/check")
	if err != nil {
		return nil, fmt.Errorf("sync check request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return changes, nil
}

func (a *desktopAPI) SyncAck(ctx context.Context, req models.AckRequest) (models.SyncProject, error) {
	var project models.SyncProject

	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&project).
		Post("/sync/ack")
	if err != nil {
		return models.SyncProject{}, fmt.Errorf("sync ack request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncProject{}, err
	}

	return project, nil
}
