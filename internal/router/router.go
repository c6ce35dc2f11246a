package router

import (
	"fmt"
	"strings"

	"github.com/clicktally/clicktally/internal/cache"
	"github.com/clicktally/clicktally/internal/config"
	trackhandlers "github.com/clicktally/clicktally/internal/http/handlers/track"
	"github.com/clicktally/clicktally/internal/logger"
	"github.com/clicktally/clicktally/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	trackHandler := trackhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ct"
	}
	redisClient := cache.Client()
	trackRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:track", redisPrefix),
		WindowSeconds: cfg.Tracking.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Tracking.RateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 注册接口
	r.POST("/affiliates", trackHandler.CreateAffiliate)
	r.GET("/affiliates", trackHandler.ListAffiliates)
	r.POST("/campaigns", trackHandler.CreateCampaign)
	r.GET("/campaigns", trackHandler.ListCampaigns)

	// 追踪接口（公开，按 IP 限流）
	r.GET("/click", RateLimitMiddleware(redisClient, trackRule, KeyByIP), trackHandler.RecordClick)
	r.GET("/postback", RateLimitMiddleware(redisClient, trackRule, KeyByIPAndQueryField("click_id")), trackHandler.Postback)

	// 读侧接口
	affiliateData := r.Group("/affiliate-data")
	{
		affiliateData.GET("/:affiliate_id/clicks", trackHandler.ListAffiliateClicks)
		affiliateData.GET("/:affiliate_id/conversions", trackHandler.ListAffiliateConversions)
		affiliateData.GET("/:affiliate_id/summary", trackHandler.AffiliateSummary)
	}

	return r
}
