package production

import (
	"encoding/json"
	"net/http"

	"github.com/IWeppler/el-manantial/internal/modules/auth"
	"github.com/IWeppler/el-manantial/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the production record endpoints, all admin-only.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, requireAdmin func(http.Handler) http.Handler) {
	router.Route("/api/production", func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/", h.list)
		r.Post("/", h.create)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sess := auth.FromContext(r.Context())
	rec, err := h.service.Create(r.Context(), sess.UserID, req)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusCreated, rec)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, records)
}
