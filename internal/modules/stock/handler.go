package stock

import (
	"encoding/json"
	"net/http"

	"github.com/IWeppler/el-manantial/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the stock endpoints. The read is public so the order form
// can show availability; mutations are admin-only.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux, requireAdmin func(http.Handler) http.Handler) {
	router.Get("/api/stock", h.get)
	router.With(requireAdmin).Post("/api/stock", h.initialize)
	router.With(requireAdmin).Patch("/api/stock", h.adjust)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context())
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, s)
}

func (h *Handler) initialize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MapleCount int `json:"maple_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s, err := h.service.Initialize(r.Context(), req.MapleCount)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusCreated, s)
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request) {
	var req AdjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s, err := h.service.SetCount(r.Context(), req.NewCount)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, s)
}
