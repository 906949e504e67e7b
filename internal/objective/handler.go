package objective

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type Handler struct {
	service ObjectiveService
}

func NewHandler(service ObjectiveService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := util.QueryInt(r, "page", 1)

	objectives, meta, err := h.service.List(r.Context(), page)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.SuccessWithMeta(w, "", objectives, meta)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateObjectiveInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.service.Create(r.Context(), in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusCreated, "objective created", o)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.service.Get(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", o)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in UpdateObjectiveInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "objective updated", o)
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
	config.Success(w, http.StatusOK, "objective deleted", nil)
}

func (h *Handler) AllowedLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.AllowedLevels(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", AllowedLevelsView{Levels: levels})
}

// CycleDetail serves GET /cycles/{id}/detail.
func (h *Handler) CycleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return
	}

	detail, err := h.service.CycleDetail(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", detail)
}
