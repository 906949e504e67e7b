package user

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", users)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	u, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", u)
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in UpdateRoleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	change, err := h.service.UpdateRole(r.Context(), id, in)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	msg := fmt.Sprintf("updated role of %s from %s to %s", change.User.FullName, change.OldRole, change.NewRole)
	config.Success(w, http.StatusOK, msg, change.User)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.UpdateStatus(r.Context(), id, in)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	msg := fmt.Sprintf("updated status of %s to %s", u.FullName, u.Status)
	config.Success(w, http.StatusOK, msg, u)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	u, err := h.service.Delete(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, fmt.Sprintf("deleted user %s", u.FullName), nil)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Profile(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.service.UpdateProfile(r.Context(), in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "profile updated", p)
}
