package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/middlewares"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRequireRole(t *testing.T) {
	h := middlewares.RequireRole(role.Admin)(ok)

	cases := []struct {
		name   string
		roleID role.ID
		status int
	}{
		{"Admin", role.Admin, http.StatusOK},
		{"Manager", role.Manager, http.StatusForbidden},
		{"Member", role.Member, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/users/2", nil)
			req = req.WithContext(auth.WithActor(req.Context(), 1, tc.roleID))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}

	t.Run("NoActor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/users/2", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	_, err := middlewares.RateLimit("lots")
	assert.Error(t, err)

	mw, err := middlewares.RateLimit("2-M")
	require.NoError(t, err)
	h := mw(ok)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestCorsMiddleware(t *testing.T) {
	preflight := func(h http.Handler, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/cycles", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("WildcardNeverAllowsCredentials", func(t *testing.T) {
		rec := preflight(middlewares.CorsMiddleware("*")(ok), "https://evil.example")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("AllowListReflectsListedOrigin", func(t *testing.T) {
		h := middlewares.CorsMiddleware("https://okrun.test, https://admin.okrun.test/")(ok)

		rec := preflight(h, "https://admin.okrun.test")
		assert.Equal(t, "https://admin.okrun.test", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("AllowListRejectsOtherOrigins", func(t *testing.T) {
		rec := preflight(middlewares.CorsMiddleware("https://okrun.test")(ok), "https://evil.example")

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("EmptyConfigSendsNoOrigin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		middlewares.CorsMiddleware("")(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cycles", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
