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

const secret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthTestRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuth(secret)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		session, err := GetSessionFromContext(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"user_id": session.UserID, "voter_id": session.VoterID()})
	})
	router.GET("/probe", chain...)
	return router
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthValidToken(t *testing.T) {
	router := newAuthTestRouter()
	token := signToken(t, jwt.MapClaims{
		"sub":      float64(7),
		"username": "tester",
		"admin":    false,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	w := get(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"voter_id":"7"`)
}

func TestJWTAuthMissingToken(t *testing.T) {
	w := get(newAuthTestRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router := newAuthTestRouter()
	token := signToken(t, jwt.MapClaims{
		"sub": float64(7),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	w := get(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	w := get(newAuthTestRouter(), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly(t *testing.T) {
	router := newAuthTestRouter(AdminOnly())

	member := signToken(t, jwt.MapClaims{
		"sub":   float64(7),
		"admin": false,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w := get(router, member)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := signToken(t, jwt.MapClaims{
		"sub":   float64(1),
		"admin": true,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	w = get(router, admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionVoterID(t *testing.T) {
	s := &Session{UserID: 1234}
	assert.Equal(t, "1234", s.VoterID())
}
