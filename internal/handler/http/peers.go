package http

import (
	"net/http"

	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/utils"
)

func (h *Handler) peers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, h.services.Transfer.Peers(r.Context()), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.peers").Msg("error writing response")
	}
}
