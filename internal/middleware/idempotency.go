package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SirTuppy/route-setter-scheduler/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	IdempotencyResultTTL = 24 * time.Hour
)

// Idempotency replays the stored result of a POST carrying a previously
// seen Idempotency-Key, and rejects a duplicate that is still in flight.
// Handlers store their result with RememberResult.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err == nil && !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "This request is already being processed", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()

		_ = rdb.Del(ctx, lockKey).Err()
	}
}

// RememberResult stores payload under the request's idempotency key, if any.
func RememberResult(c *gin.Context, rdb *redis.Client, payload any) {
	if rdb == nil {
		return
	}
	key := c.GetString(IdempotencyCacheKey)
	if key == "" {
		return
	}
	if data, err := json.Marshal(payload); err == nil {
		_ = rdb.Set(c.Request.Context(), key, data, IdempotencyResultTTL).Err()
	}
}
