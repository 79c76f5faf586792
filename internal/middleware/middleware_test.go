package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/school_fee_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func signToken(t *testing.T, claims jwt.RegisteredClaims, method jwt.SigningMethod) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authRouter(issuer string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(testSecret, issuer), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "school-office",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid
	noSubject.Subject = ""

	tests := []struct {
		name       string
		issuer     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + signToken(t, valid, jwt.SigningMethodHS256), wantStatus: http.StatusOK, wantBody: "user-1"},
		{name: "matching issuer", issuer: "school-office", header: "Bearer " + signToken(t, valid, jwt.SigningMethodHS512), wantStatus: http.StatusOK, wantBody: "user-1"},
		{name: "wrong issuer", issuer: "other", header: "Bearer " + signToken(t, valid, jwt.SigningMethodHS256), wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + signToken(t, expired, jwt.SigningMethodHS256), wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "no subject", header: "Bearer " + signToken(t, noSubject, jwt.SigningMethodHS256), wantStatus: http.StatusUnauthorized, wantBody: "Invalid token claims"},
		{name: "garbage", header: "Bearer not.a.token", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			authRouter(tt.issuer).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	var sawLogger bool
	r.GET("/ping", func(c *gin.Context) {
		sawLogger = middleware.GetLoggerFromCtx(c.Request.Context()) != slog.Default()
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
	assert.True(t, sawLogger)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, custom, middleware.GetLoggerFromCtx(middleware.WithLogger(context.Background(), custom)))
}

func TestRateLimit(t *testing.T) {
	l, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RateLimit(l))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS([]string{"https://office.example.edu"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://office.example.edu")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://office.example.edu", w.Header().Get("Access-Control-Allow-Origin"))
}
