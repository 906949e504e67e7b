package keyresult

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/config"
	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type Handler struct {
	service KeyResultService
}

func NewHandler(service KeyResultService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := util.URLParamID(r, "objectiveId")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid objective id")
		return
	}

	krs, err := h.service.List(r.Context(), objectiveID)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", krs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	objectiveID, id, ok := ids(w, r)
	if !ok {
		return
	}

	kr, err := h.service.Get(r.Context(), objectiveID, id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "", kr)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	objectiveID, err := util.URLParamID(r, "objectiveId")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid objective id")
		return
	}

	var in KeyResultInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kr, err := h.service.Create(r.Context(), objectiveID, in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusCreated, "key result created", kr)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	objectiveID, id, ok := ids(w, r)
	if !ok {
		return
	}

	var in KeyResultInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kr, err := h.service.Update(r.Context(), objectiveID, id, in)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "key result updated", kr)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	objectiveID, id, ok := ids(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), objectiveID, id); err != nil {
		config.Error(w, r, err)
		return
	}
	config.Success(w, http.StatusOK, "key result deleted", nil)
}

func ids(w http.ResponseWriter, r *http.Request) (objectiveID, id uint, ok bool) {
	objectiveID, err := util.URLParamID(r, "objectiveId")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid objective id")
		return 0, 0, false
	}
	id, err = util.URLParamID(r, "id")
	if err != nil {
		config.Fail(w, http.StatusBadRequest, "invalid id")
		return 0, 0, false
	}
	return objectiveID, id, true
}
