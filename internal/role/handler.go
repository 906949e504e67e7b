package role

import (
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
)

type Handler struct {
	repo RoleRepository
}

func NewHandler(repo RoleRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.repo.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", roles)
}
