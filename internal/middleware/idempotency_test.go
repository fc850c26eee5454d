package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func idempRouter(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()
	r := gin.New()
	r.POST("/time-off/:id/approve", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-1")
		c.Next()
	}, middleware.Idempotency(rdb), handler)
	return r, mock
}

func TestIdempotency(t *testing.T) {
	const cacheKey = "idemp:/time-off/:id/approve:user-1:key-1"

	t.Run("replays cached result", func(t *testing.T) {
		called := false
		r, mock := idempRouter(t, func(c *gin.Context) { called = true })
		mock.ExpectGet(cacheKey).SetVal(`{"status":"approved"}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off/abc/approve", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called)
		assert.Contains(t, w.Body.String(), "approved")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects in flight duplicate", func(t *testing.T) {
		r, mock := idempRouter(t, func(c *gin.Context) {})
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off/abc/approve", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request runs handler and releases lock", func(t *testing.T) {
		called := false
		r, mock := idempRouter(t, func(c *gin.Context) {
			called = true
			assert.Equal(t, cacheKey, c.GetString(middleware.IdempotencyCacheKey))
			c.Status(http.StatusOK)
		})
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/time-off/abc/approve", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key passes through", func(t *testing.T) {
		called := false
		r, mock := idempRouter(t, func(c *gin.Context) { called = true })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/time-off/abc/approve", nil))

		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-1")
		c.Next()
	}, middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/protected", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
