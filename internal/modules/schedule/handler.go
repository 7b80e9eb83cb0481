package schedule

import (
	"encoding/json"
	"net/http"

	"github.com/IWeppler/el-manantial/internal/modules/auth"
	"github.com/IWeppler/el-manantial/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the schedule endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux, requireAdmin func(http.Handler) http.Handler) {
	router.Get("/api/schedules", h.list)
	router.With(requireAdmin).Put("/api/schedules", h.replace)
}

// list returns active schedules to everyone; admins can ask for the full set
// with ?all=true.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	activeOnly := true
	if r.URL.Query().Get("all") == "true" && auth.FromContext(r.Context()).IsAdmin() {
		activeOnly = false
	}
	schedules, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, schedules)
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	schedules, err := h.service.Replace(r.Context(), req)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, schedules)
}
