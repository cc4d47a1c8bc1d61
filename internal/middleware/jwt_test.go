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

	"github.com/tutorhive/admin-gateway/internal/models"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	claims := models.JWTClaims{
		UserID: "u-1",
		Email:  "admin@example.com",
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

type seenAuth struct {
	claims *models.JWTClaims
	token  string
}

func protectedRouter() (*gin.Engine, *seenAuth) {
	seen := &seenAuth{}
	router := gin.New()
	router.GET("/protected", JWT(testSecret), func(c *gin.Context) {
		if v, ok := c.Get(ContextUserKey); ok {
			seen.claims = v.(*models.JWTClaims)
		}
		seen.token = Token(c)
		c.Status(http.StatusOK)
	})
	return router, seen
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	router, seen := protectedRouter()
	token := signToken(t, testSecret, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen.claims)
	assert.Equal(t, "u-1", seen.claims.UserID)
	assert.Equal(t, models.RoleAdmin, seen.claims.Role)
	// The raw token stays available for upstream pass-through.
	assert.Equal(t, token, seen.token)
}

func TestJWTMiddlewareRejectsBadRequests(t *testing.T) {
	router, _ := protectedRouter()

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc123",
		"wrong secret":    "Bearer " + signToken(t, "other-secret", time.Hour),
		"expired token":   "Bearer " + signToken(t, testSecret, -time.Hour),
		"malformed token": "Bearer not.a.jwt",
	}
	for name, header := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestValidateTokenRejectsWrongAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, models.JWTClaims{UserID: "u-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, testSecret)
	require.Error(t, err)
}
