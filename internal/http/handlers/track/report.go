package track

import (
	"fmt"
	"time"

	"github.com/clicktally/clicktally/internal/cache"
	"github.com/clicktally/clicktally/internal/http/response"
	"github.com/clicktally/clicktally/internal/service"

	"github.com/gin-gonic/gin"
)

// AffiliateSummary 查询推广伙伴汇总数据
// GET /affiliate-data/:affiliate_id/summary
// 汇总覆盖该伙伴名下全部点击，结果短暂缓存
func (h *Handler) AffiliateSummary(c *gin.Context) {
	affiliateID := c.Param("affiliate_id")
	cacheKey := fmt.Sprintf("summary:%s", affiliateID)

	var cached service.AffiliateSummary
	if hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	summary, err := h.ReportService.GetAffiliateSummary(affiliateID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, msg: "Affiliate not found"},
		}, response.CodeInternal, "Error fetching affiliate summary")
		return
	}

	ttl := time.Duration(h.Config.Tracking.SummaryCacheTTLSeconds) * time.Second
	if ttl > 0 {
		if err := cache.SetJSON(c.Request.Context(), cacheKey, summary, ttl); err != nil {
			requestLog(c).Warnw("summary_cache_write_failed", "error", err)
		}
	}
	response.Success(c, summary)
}
