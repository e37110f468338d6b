package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"name":    c.GetString("name"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	r := authTestRouter()

	validToken := signToken(t, "test_secret", jwt.MapClaims{
		"user_id": "user-1",
		"name":    "Alice",
		"email":   "alice@example.com",
		"role":    "customer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"sans header", "", http.StatusUnauthorized},
		{"mauvais format", "Basic abc123", http.StatusUnauthorized},
		{"token bidon", "Bearer pas-un-jwt", http.StatusUnauthorized},
		{"mauvais secret", "Bearer " + signToken(t, "autre_secret", jwt.MapClaims{"user_id": "user-1"}), http.StatusUnauthorized},
		{"token expiré", "Bearer " + signToken(t, "test_secret", jwt.MapClaims{
			"user_id": "user-1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}), http.StatusUnauthorized},
		{"sans user_id", "Bearer " + signToken(t, "test_secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}), http.StatusUnauthorized},
		{"token valide", "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthRequiredRejectsAllWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	r := authTestRouter()

	// Sans secret configuré, aucun token ne doit passer, même signé avec
	// une valeur qu'un attaquant pourrait deviner.
	for _, secret := range []string{"", "super_secret"} {
		token := signToken(t, secret, jwt.MapClaims{
			"user_id": "user-1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "secret=%q", secret)
	}
}

func TestAuthRequiredExposesClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	r := authTestRouter()

	token := signToken(t, "test_secret", jwt.MapClaims{
		"user_id": "user-42",
		"name":    "Bob",
		"email":   "bob@example.com",
		"role":    "seller",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-42","name":"Bob","role":"seller"}`, w.Body.String())
}

func roleTestRouter(role string, gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/gated", func(c *gin.Context) { c.Set("role", role) }, gate, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		role       string
		wantStatus int
	}{
		{"admin", http.StatusOK},
		{"seller", http.StatusForbidden},
		{"customer", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			r := roleTestRouter(tt.role, RequireAdmin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireSellerOrAdmin(t *testing.T) {
	tests := []struct {
		role       string
		wantStatus int
	}{
		{"admin", http.StatusOK},
		{"seller", http.StatusOK},
		{"customer", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			r := roleTestRouter(tt.role, RequireSellerOrAdmin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
