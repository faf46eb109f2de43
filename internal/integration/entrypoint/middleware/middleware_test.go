package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizportal/backend/internal/application/adapter/fake"
	"github.com/bizportal/backend/internal/domain/entity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		claims, ok := GetClaimsFromContext(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, string(claims.Role))
	})
	r.GET("/resource", handlers...)
	return r
}

func get(r http.Handler, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	auth := NewAuthMiddleware(fake.TokenService{})
	r := newRouter(auth.Authenticate())
	valid := "token:" + uuid.NewString() + ":staff"

	tests := []struct {
		name          string
		target        string
		authorization string
		wantStatus    int
		wantBody      string
	}{
		{name: "missing header", target: "/resource", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", target: "/resource", authorization: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", target: "/resource", authorization: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "valid header", target: "/resource", authorization: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "staff"},
		{name: "query token", target: "/resource?access_token=" + valid, wantStatus: http.StatusOK, wantBody: "staff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target, tt.authorization)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	auth := NewAuthMiddleware(fake.TokenService{})
	r := newRouter(auth.OptionalAuthenticate())

	assert.Equal(t, "anonymous", get(r, "/resource", "").Body.String())
	assert.Equal(t, "anonymous", get(r, "/resource", "Bearer nope").Body.String())
	assert.Equal(t, "admin", get(r, "/resource", "Bearer token:"+uuid.NewString()+":admin").Body.String())
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuthMiddleware(fake.TokenService{})
	r := newRouter(auth.Authenticate(), RequireAdmin())

	w := get(r, "/resource", "Bearer token:"+uuid.NewString()+":"+string(entity.UserRoleStaff))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(r, "/resource", "Bearer token:"+uuid.NewString()+":"+string(entity.UserRoleAdmin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return now }
	r := newRouter(rl.Middleware())

	assert.Equal(t, http.StatusOK, get(r, "/resource", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/resource", "").Code)

	w := get(r, "/resource", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "61", w.Header().Get("Retry-After"))

	now = now.Add(61 * time.Second)
	assert.Equal(t, http.StatusOK, get(r, "/resource", "").Code)

	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	assert.Empty(t, rl.entries)

	rl.Disable()
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/resource", "").Code)
	}
}
