package config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
)

type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Meta    interface{}       `json:"meta,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type PageMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode response")
	}
}

func Success(w http.ResponseWriter, status int, message string, data interface{}) {
	JSON(w, status, APIResponse{Success: true, Message: message, Data: data})
}

func SuccessWithMeta(w http.ResponseWriter, message string, data interface{}, meta interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: message, Data: data, Meta: meta})
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, APIResponse{Success: false, Message: message})
}

// Error writes err in the response envelope. Messages of unexpected errors
// and transaction failures are replaced by a generic one; the cause is logged.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	log := WithContext(r.Context())
	status := apperror.HTTPStatus(err)

	var appErr *apperror.Error
	if !errors.As(err, &appErr) || appErr.Kind == apperror.KindInternal {
		log.WithError(err).Error("Unexpected error")
		Fail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if appErr.Kind == apperror.KindTransaction {
		log.WithError(err).Error("Transaction failed")
		Fail(w, status, appErr.Message)
		return
	}

	JSON(w, status, APIResponse{Success: false, Message: appErr.Message, Errors: appErr.Fields})
}
