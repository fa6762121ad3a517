package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func protected(t *testing.T, auth func(http.Handler) http.Handler) (http.Handler, *domain.Actor) {
	var seen domain.Actor
	h := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		require.True(t, ok)
		seen = actor
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &seen
}

func TestAuth(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "user-1", "role": "stylist", "exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + valid, http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong key", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "u", "role": "customer"}), http.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "u", "role": "customer", "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"unknown role", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "u", "role": "owner"}), http.StatusUnauthorized},
		{"no subject", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"role": "customer"}), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, seen := protected(t, Auth(secret))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, domain.Actor{UserID: "user-1", Role: domain.RoleProvider}, *seen)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	h := RequireRole(domain.RoleProvider, domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(actor *domain.Actor) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if actor != nil {
			req = req.WithContext(WithActor(req.Context(), *actor))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, serve(&domain.Actor{UserID: "s", Role: domain.RoleProvider}))
	assert.Equal(t, http.StatusForbidden, serve(&domain.Actor{UserID: "c", Role: domain.RoleCustomer}))
	assert.Equal(t, http.StatusUnauthorized, serve(nil))
}
