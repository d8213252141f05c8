package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/reservation-api/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", time.Hour, "1h")
}

func protectedEngine(issuer *auth.TokenIssuer, role auth.Role) *gin.Engine {
	r := gin.New()
	r.GET("/private", AuthMiddleware(issuer), RequireRole(role), func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"loginId": p.LoginID})
	})
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Code
}

func TestAuthMiddleware(t *testing.T) {
	issuer := newIssuer()
	r := protectedEngine(issuer, auth.RoleCustomer)

	t.Run("missing header", func(t *testing.T) {
		w := do(r, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "missing_authorization_header", errorCode(t, w))
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Token abc")
		w := do(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_authorization_header", errorCode(t, w))
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := do(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_token", errorCode(t, w))
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenIssuer("other-secret", time.Hour, "1h")
		tok, err := other.Issue(auth.Principal{ID: 1, LoginID: "alice", Role: auth.RoleCustomer})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		w := do(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		tok, err := issuer.Issue(auth.Principal{ID: 1, LoginID: "bistro", Role: auth.RoleRestaurant})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
		w := do(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "forbidden", errorCode(t, w))
	})

	t.Run("ok", func(t *testing.T) {
		tok, err := issuer.Issue(auth.Principal{ID: 7, LoginID: "alice", Role: auth.RoleCustomer})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "bearer "+tok.AccessToken)
		w := do(r, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"loginId":"alice"}`, w.Body.String())
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = do(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2)
	fixed := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := do(r, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := do(r, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too_many_requests", errorCode(t, w))

	// a token refills after 30s at two per minute
	fixed = fixed.Add(31 * time.Second)
	w = do(r, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://app.example.com"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := do(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
