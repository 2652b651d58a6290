package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/service"
	"github.com/meshdrive/meshdrive/internal/utils"
	"github.com/meshdrive/meshdrive/models"
)

func (h *Handler) files(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	files, err := h.services.Transfer.WaitingFiles(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.files").Msg("error listing waiting files")
		http.Error(w, "error listing waiting files", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, models.FilesResponse{Files: files}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.files").Msg("error writing response")
	}
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	if err = h.services.Transfer.DeleteWaitingFile(r.Context(), name); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFile").Str("name", name).Msg("error deleting waiting file")
		http.Error(w, "error deleting waiting file", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dl, err := h.services.Transfer.DownloadLast(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("error resolving last received file")
		http.Error(w, "error resolving last received file", statusFromError(err))
		return
	}

	h.serveDownload(w, r, dl)
}

func (h *Handler) downloadNamed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	dl, err := h.services.Transfer.DownloadNamed(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.downloadNamed").Str("name", name).Msg("error resolving received file")
		http.Error(w, "error resolving received file", statusFromError(err))
		return
	}

	h.serveDownload(w, r, dl)
}

func (h *Handler) serveDownload(w http.ResponseWriter, r *http.Request, dl *service.Download) {
	log := logger.FromRequest(r)
	defer dl.Body.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.Name}))
	w.Header().Set("Content-Length", strconv.FormatInt(dl.Size, 10))

	if _, err := io.Copy(w, dl.Body); err != nil {
		log.Err(err).Str("func", "*Handler.serveDownload").Str("name", dl.Name).Msg("error streaming file")
	}
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.send").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Transfer.Send(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.send").Str("peer", req.PeerID).Msg("error sending file")
		http.Error(w, "error sending file", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.services.Transfer.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.history").Msg("error listing history")
		http.Error(w, "error listing history", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.history").Msg("error writing response")
	}
}
