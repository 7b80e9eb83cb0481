package auth

import (
	"encoding/json"
	"net/http"

	"github.com/IWeppler/el-manantial/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the login endpoint.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Post("/api/login", h.login)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	token, u, err := h.service.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		web.Error(w, r, err)
		return
	}
	web.Respond(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  u,
	})
}
