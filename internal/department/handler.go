package department

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type Handler struct {
	service DepartmentService
}

func NewHandler(service DepartmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", departments)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in DepartmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.service.Create(r.Context(), in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusCreated, "department created", d)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", d)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in DepartmentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "department updated", d)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "department deleted", nil)
}
