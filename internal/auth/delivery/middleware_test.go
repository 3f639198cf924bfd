package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"balanceflow-backend/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter(tokens *token.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":    c.GetUint("userID"),
			"userEmail": c.GetString("userEmail"),
		})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := token.NewIssuer("test-secret", time.Hour)
	r := newProtectedRouter(tokens)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header missing")
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	tokens := token.NewIssuer("test-secret", time.Hour)
	r := newProtectedRouter(tokens)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer "} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "Invalid authorization format")
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := token.NewIssuer("test-secret", time.Hour)
	r := newProtectedRouter(tokens)

	w := doRequest(r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := token.NewIssuer("test-secret", -time.Hour)
	jwt, err := expired.Issue(1, "ana@x.com", "Ana")
	require.NoError(t, err)

	r := newProtectedRouter(token.NewIssuer("test-secret", time.Hour))
	w := doRequest(r, "Bearer "+jwt)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	tokens := token.NewIssuer("test-secret", time.Hour)
	jwt, err := tokens.Issue(42, "ana@x.com", "Ana")
	require.NoError(t, err)

	w := doRequest(newProtectedRouter(tokens), "Bearer "+jwt)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID    uint   `json:"userID"`
		UserEmail string `json:"userEmail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uint(42), body.UserID)
	assert.Equal(t, "ana@x.com", body.UserEmail)
}
