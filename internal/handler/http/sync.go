package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/utils"
	"github.com/meshdrive/meshdrive/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.services.Sync.Projects(r.Context()), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listProjects").Msg("error writing response")
	}
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	project, err := h.services.Sync.CreateProject(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("error creating sync project")
		http.Error(w, "error creating sync project", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, project, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.createProject").Msg("error writing response")
	}
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	if err := h.services.Sync.DeleteProject(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProject").Str("id", id).Msg("error deleting sync project")
		http.Error(w, "error deleting sync project", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) syncCheck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	changes, err := h.services.Sync.CheckChanges(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncCheck").Msg("error checking for changes")
		http.Error(w, "error checking for changes", statusFromError(err))
		return
	}

	if changes == nil {
		changes = []models.SyncChange{}
	}

	if _, err = utils.WriteJSON(w, changes, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.syncCheck").Msg("error writing response")
	}
}

func (h *Handler) syncAck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.syncAck").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	project, err := h.services.Sync.Ack(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncAck").Str("id", req.ID).Msg("error acknowledging sync")
		http.Error(w, "error acknowledging sync", statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, project, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.syncAck").Msg("error writing response")
	}
}
