package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/status", h.status)

	router.Get("/files", h.files)
	router.Delete("/files/{name}", h.deleteFile)
	router.Get("/download", h.download)
	router.Get("/download/{name}", h.downloadNamed)
	router.Post("/send", h.send)
	router.Get("/history", h.history)

	router.Get("/browse", h.browse)
	router.Get("/pull", h.pull)
	router.Put("/upload/*", h.upload)
	router.Put("/sync/upload", h.syncUpload)

	router.Get("/peers", h.peers)

	router.Route("/sync", func(r chi.Router) {
		r.Get("/projects", h.listProjects)
		r.Post("/projects", h.createProject)
		r.Delete("/projects/{id}", h.deleteProject)
		r.Get("/check", h.syncCheck)
		r.Post("/ack", h.syncAck)
	})

	return router
}
