package config_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
)

func writeError(t *testing.T, err error) (int, config.APIResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	config.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), err)

	var resp config.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"Validation", apperror.Field("obj_title", "the obj_title field is required"), http.StatusUnprocessableEntity, "the given data was invalid"},
		{"Unauthorized", apperror.Unauthorized("you are not allowed to create OKRs at level Công ty"), http.StatusForbidden, "you are not allowed to create OKRs at level Công ty"},
		{"Immutable", apperror.Immutable("cannot change the status of an Admin"), http.StatusBadRequest, "cannot change the status of an Admin"},
		{"NotFound", apperror.NotFound("cycle"), http.StatusNotFound, "cycle not found"},
		{"Transaction", apperror.Transaction("failed to create objective", errors.New("pq: duplicate key")), http.StatusInternalServerError, "failed to create objective"},
		{"Unexpected", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := writeError(t, tc.err)
			assert.Equal(t, tc.status, status)
			assert.False(t, resp.Success)
			assert.Equal(t, tc.message, resp.Message)
		})
	}

	t.Run("FieldsExposed", func(t *testing.T) {
		_, resp := writeError(t, apperror.Field("end_date", "bad"))
		assert.Equal(t, map[string]string{"end_date": "bad"}, resp.Errors)
	})

	t.Run("WrappedErrorKeepsKind", func(t *testing.T) {
		status, _ := writeError(t, errors.Join(apperror.NotFound("user")))
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	config.SuccessWithMeta(rec, "", []int{1, 2}, config.PageMeta{Page: 2, PerPage: 10, Total: 12})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":[1,2],"meta":{"page":2,"per_page":10,"total":12}}`, rec.Body.String())
}
