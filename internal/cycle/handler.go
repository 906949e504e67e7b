package cycle

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type Handler struct {
	service CycleService
}

func NewHandler(service CycleService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.service.List(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", cycles)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CycleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.service.Create(r.Context(), in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusCreated, "cycle created", c)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in CycleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "cycle updated", c)
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
	config.Success(w, http.StatusOK, "cycle deleted", nil)
}
