package middleware

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/yourusername/trivia-catalog-api/internal/pkg/envelope"
)

// RateLimitConfig содержит настройки rate limiting
type RateLimitConfig struct {
	// MaxRequests - максимальное количество запросов за Window
	MaxRequests int
	// Window - временное окно для подсчёта запросов
	Window time.Duration
	// KeyPrefix - префикс для ключей в Redis
	KeyPrefix string
}

// DefaultWriteRateLimitConfig - лимит для создания и удаления вопросов
func DefaultWriteRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 30,
		Window:      time.Minute,
		KeyPrefix:   "rl:write",
	}
}

// RateLimiter считает запросы клиента к маршруту в фиксированном окне.
// Счётчики живут в Redis, так что лимит общий для всех инстансов API.
type RateLimiter struct {
	redisClient redis.UniversalClient
	timeout     time.Duration
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(redisClient redis.UniversalClient) *RateLimiter {
	return &RateLimiter{redisClient: redisClient, timeout: 2 * time.Second}
}

// hit увеличивает счётчик окна и возвращает его значение и время до сброса окна
func (rl *RateLimiter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := rl.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}

	if count == 1 {
		rl.expire(ctx, key, window)
		return count, window, nil
	}

	ttl, err := rl.redisClient.TTL(ctx, key).Result()
	if err != nil {
		log.Printf("[RateLimiter] Failed to read TTL for key %s: %v", key, err)
		return count, window, nil
	}
	if ttl < 0 {
		// Ключ остался без TTL (Expire первого запроса не прошёл): иначе окно никогда не сбросится
		rl.expire(ctx, key, window)
		return count, window, nil
	}
	return count, ttl, nil
}

func (rl *RateLimiter) expire(ctx context.Context, key string, window time.Duration) {
	if err := rl.redisClient.Expire(ctx, key, window).Err(); err != nil {
		log.Printf("[RateLimiter] Failed to set TTL for key %s: %v", key, err)
	}
}

// Limit возвращает Gin middleware с заданной конфигурацией.
// Ключ - IP клиента + шаблон маршрута. При ошибке Redis запрос пропускается.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	limit := strconv.Itoa(cfg.MaxRequests)

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := cfg.KeyPrefix + ":" + c.ClientIP() + ":" + route

		ctx, cancel := context.WithTimeout(c.Request.Context(), rl.timeout)
		count, resetIn, err := rl.hit(ctx, key, cfg.Window)
		cancel()
		if err != nil {
			log.Printf("[RateLimiter] Redis error for key %s: %v. Allowing request (fail-open).", key, err)
			c.Next()
			return
		}

		resetSec := strconv.Itoa(int(math.Ceil(resetIn.Seconds())))
		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(int64(cfg.MaxRequests)-count, 0), 10))
		c.Header("X-RateLimit-Reset", resetSec)

		if count > int64(cfg.MaxRequests) {
			log.Printf("[RateLimiter] Rate limit exceeded for key %s: %d > %d", key, count, cfg.MaxRequests)
			c.Header("Retry-After", resetSec)
			envelope.Abort(c, http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
