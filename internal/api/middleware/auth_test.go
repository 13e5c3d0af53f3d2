package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkease/parkease-backend/internal/domain"
	"github.com/parkease/parkease-backend/internal/service/auth"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret-test-secret-test-secret", time.Hour)
}

func tokenFor(t *testing.T, tm *auth.TokenManager, role domain.UserRole) string {
	t.Helper()
	token, err := tm.CreateToken(&domain.User{
		Email: "user@example.com",
		Name:  "Ravi Kumar",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestAuth_ValidToken(t *testing.T) {
	tm := newTokenManager()

	var captured *Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/my", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tm, domain.RoleDriver))
	rec := httptest.NewRecorder()

	Auth(tm)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "Ravi Kumar", captured.DriverName)
	assert.Equal(t, domain.RoleDriver, captured.Role)
}

func TestAuth_MissingHeader(t *testing.T) {
	tm := newTokenManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/my", nil)
	rec := httptest.NewRecorder()

	Auth(tm)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	tm := newTokenManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/my", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	Auth(tm)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_DriverForbidden(t *testing.T) {
	tm := newTokenManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tm, domain.RoleDriver))
	rec := httptest.NewRecorder()

	Auth(tm)(AdminOnly(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	tm := newTokenManager()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, tm, domain.RoleAdmin))
	rec := httptest.NewRecorder()

	Auth(tm)(AdminOnly(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
