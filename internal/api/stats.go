package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/advaita02/social-media-network/internal/cache"
	"github.com/advaita02/social-media-network/internal/service"
	"github.com/advaita02/social-media-network/pkg/logging"
)

const statsCacheTTL = 5 * time.Minute

// StatsHandler serves the staff-only reporting endpoints. Responses are
// cached in Redis with a short TTL; a disabled cache degrades to direct
// queries.
type StatsHandler struct {
	stats  *service.StatsService
	cache  *cache.Cache
	logger *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *service.StatsService, redisCache *cache.Cache) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		cache:  redisCache,
		logger: logging.WithComponent("stats-handler"),
	}
}

func (h *StatsHandler) respondCached(c *gin.Context, key string, load func() (interface{}, error)) {
	if cached, err := h.cache.Get(key); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	result, err := load()
	if err != nil {
		respondError(c, err)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.cache.Set(key, payload, statsCacheTTL); err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
		h.logger.Warn("Failed to cache stats response", zap.String("key", key), zap.Error(err))
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// UsersByYear handles GET /admin-stats/users-by-year
func (h *StatsHandler) UsersByYear(c *gin.Context) {
	h.respondCached(c, "stats:users-by-year", func() (interface{}, error) {
		return h.stats.UsersByYear(c.Request.Context())
	})
}

// PostsByYear handles GET /admin-stats/posts-by-year
func (h *StatsHandler) PostsByYear(c *gin.Context) {
	h.respondCached(c, "stats:posts-by-year", func() (interface{}, error) {
		return h.stats.PostsByYear(c.Request.Context())
	})
}

// PostsByMonth handles GET /admin-stats/posts-by-month?year=YYYY.
// An absent year means the current calendar year.
func (h *StatsHandler) PostsByMonth(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		year = parsed
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	key := "stats:posts-by-month:" + strconv.Itoa(year)
	h.respondCached(c, key, func() (interface{}, error) {
		return h.stats.PostsByMonth(c.Request.Context(), year)
	})
}

// PostsByQuarter handles GET /admin-stats/posts-by-quarter
func (h *StatsHandler) PostsByQuarter(c *gin.Context) {
	h.respondCached(c, "stats:posts-by-quarter", func() (interface{}, error) {
		return h.stats.PostsByQuarter(c.Request.Context())
	})
}
