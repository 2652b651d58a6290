package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/utils"
)

func (h *Handler) browse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	files, err := h.services.Files.Browse(r.Context(), path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.browse").Str("path", path).Msg("error browsing directory")
		http.Error(w, "error browsing directory", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, files, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.browse").Msg("error writing response")
	}
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	dl, err := h.services.Files.Pull(r.Context(), path)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pull").Str("path", path).Msg("error pulling file")
		http.Error(w, "error pulling file", statusFromError(err))
		return
	}

	h.serveDownload(w, r, dl)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	defer r.Body.Close()

	relPath := chi.URLParam(r, "*")
	if err := h.services.Files.Upload(r.Context(), relPath, r.Body); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Str("path", relPath).Msg("error writing upload")
		http.Error(w, "error writing upload", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) syncUpload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	defer r.Body.Close()

	path := r.URL.Query().Get("path")
	if err := h.services.Files.SyncUpload(r.Context(), path, r.Body); err != nil {
		log.Err(err).Str("func", "*Handler.syncUpload").Str("path", path).Msg("error writing sync upload")
		http.Error(w, "error writing sync upload", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
