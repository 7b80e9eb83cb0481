package user

import (
	"encoding/json"
	"net/http"

	"github.com/IWeppler/el-manantial/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes registration and client management endpoints.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public registration route and the admin-only
// client routes. requireAdmin is the auth guard supplied by the wiring layer.
func (h *Handler) RegisterRoutes(router *chi.Mux, requireAdmin func(http.Handler) http.Handler) {
	router.Post("/api/register", h.register)
	router.Route("/api/clients", func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/", h.searchClients)
		r.Post("/", h.createClient)
		r.Get("/{id}", h.getClient)
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	u, err := h.service.Register(r.Context(), req)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusCreated, u)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	u, err := h.service.CreateClient(r.Context(), req)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusCreated, u)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, u)
}

func (h *Handler) searchClients(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.SearchClients(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, users)
}
