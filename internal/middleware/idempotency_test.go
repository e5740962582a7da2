package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-integration/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const idempPath = "/api/v1/integration/workflows/salary-change"

func setupIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	calls := 0

	r := setupRouter()
	r.POST(idempPath, middleware.Idempotency(db, time.Hour), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r, mock, &calls
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, idempPath, nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:" + idempPath + "::abc"

	t.Run("without key passes through", func(t *testing.T) {
		r, mock, calls := setupIdempotencyRouter(t)

		rec := postWithKey(r, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request stores response", func(t *testing.T) {
		r, mock, calls := setupIdempotencyRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.Regexp().ExpectSet(cacheKey, `.*`, time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		rec := postWithKey(r, "abc")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays cached response", func(t *testing.T) {
		r, mock, calls := setupIdempotencyRouter(t)
		cached, _ := json.Marshal(map[string]any{
			"status":       http.StatusCreated,
			"content_type": "application/json",
			"body":         []byte(`{"ok":true,"replayed":1}`),
		})
		mock.ExpectGet(cacheKey).SetVal(string(cached))

		rec := postWithKey(r, "abc")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true,"replayed":1}`, rec.Body.String())
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate conflicts", func(t *testing.T) {
		r, mock, calls := setupIdempotencyRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		rec := postWithKey(r, "abc")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, 0, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure fails open", func(t *testing.T) {
		r, mock, calls := setupIdempotencyRouter(t)
		mock.ExpectGet(cacheKey).SetErr(assert.AnError)

		rec := postWithKey(r, "abc")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, *calls)
	})
}
