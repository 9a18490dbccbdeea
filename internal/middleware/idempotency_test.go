package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"licitahub/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newUploadRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()

	rdb, mock := redismock.NewClientMock()
	hits := 0

	router := gin.New()
	router.POST("/api/documentos", middleware.Idempotency(rdb), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusCreated, gin.H{"id": "doc-1"})
	})

	return router, mock, &hits
}

func TestIdempotency(t *testing.T) {
	t.Run("request without key passes through untouched", func(t *testing.T) {
		router, mock, hits := newUploadRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/documentos", strings.NewReader("{}"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request with key acquires the lock and caches", func(t *testing.T) {
		router, mock, hits := newUploadRouter(t)

		cacheKey := "idemp:/api/documentos:192.0.2.1:abc-123"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, `{"id":"doc-1"}`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/documentos", strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", "abc-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeated key replays the cached response", func(t *testing.T) {
		router, mock, hits := newUploadRouter(t)

		cacheKey := "idemp:/api/documentos:192.0.2.1:abc-123"
		mock.ExpectGet(cacheKey).SetVal(`{"id":"doc-1"}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/documentos", strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", "abc-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "doc-1")
		// The handler never runs on a replay.
		assert.Equal(t, 0, *hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		router, mock, hits := newUploadRouter(t)

		cacheKey := "idemp:/api/documentos:192.0.2.1:abc-123"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/documentos", strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", "abc-123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
