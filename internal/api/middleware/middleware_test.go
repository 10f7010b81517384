package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/config"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() { gin.SetMode(gin.TestMode) }

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func newAuthRouter(cfg config.AuthConfig, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(cfg)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(CtxUserID), "role": c.GetString(CtxRole)})
	})
	r.GET("/me", handlers...)
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	cfg := config.AuthConfig{Secret: testSecret}
	r := newAuthRouter(cfg)
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("bearer token", func(t *testing.T) {
		w := doGet(r, "Bearer "+sign(t, jwt.MapClaims{"sub": "u1", "role": "admin", "exp": exp}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u1","role":"admin"}`, w.Body.String())
	})

	t.Run("bare token with legacy id claim", func(t *testing.T) {
		w := doGet(r, sign(t, jwt.MapClaims{"userId": "legacy", "exp": exp}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"legacy","role":"user"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"UNAUTHORIZED"`)
	})

	t.Run("expired", func(t *testing.T) {
		w := doGet(r, "Bearer "+sign(t, jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte("other"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+tok).Code)
	})

	t.Run("no subject", func(t *testing.T) {
		w := doGet(r, "Bearer "+sign(t, jwt.MapClaims{"exp": exp}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestJWTAuthIssuerAndAudience(t *testing.T) {
	r := newAuthRouter(config.AuthConfig{Secret: testSecret, Issuer: "resume-builder", Audience: "web"})

	ok := sign(t, jwt.MapClaims{"sub": "u1", "iss": "resume-builder", "aud": "web"})
	assert.Equal(t, http.StatusOK, doGet(r, "Bearer "+ok).Code)

	badIss := sign(t, jwt.MapClaims{"sub": "u1", "iss": "other", "aud": "web"})
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+badIss).Code)

	badAud := sign(t, jwt.MapClaims{"sub": "u1", "iss": "resume-builder", "aud": "mobile"})
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Bearer "+badAud).Code)
}

func TestJWTAuthMissingSecret(t *testing.T) {
	r := newAuthRouter(config.AuthConfig{})
	assert.Equal(t, http.StatusInternalServerError, doGet(r, "Bearer x").Code)
}

func TestRequireAdmin(t *testing.T) {
	r := newAuthRouter(config.AuthConfig{Secret: testSecret}, RequireAdmin())

	admin := sign(t, jwt.MapClaims{"sub": "u1", "role": "admin"})
	assert.Equal(t, http.StatusOK, doGet(r, "Bearer "+admin).Code)

	user := sign(t, jwt.MapClaims{"sub": "u2", "role": "user"})
	w := doGet(r, "Bearer "+user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"FORBIDDEN"`)
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(CtxUserID, c.GetHeader("X-User")); c.Next() })
	r.Use(RateLimit(rl))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-User", user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, call("a").Code)
	assert.Equal(t, http.StatusNoContent, call("a").Code)

	w := call("a")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"RATE_LIMITED"`)

	// separate bucket per user
	assert.Equal(t, http.StatusNoContent, call("b").Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, call("a").Code)
}

func TestRequestLoggerEchoesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logger.Nop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestID)) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "req-123", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}
