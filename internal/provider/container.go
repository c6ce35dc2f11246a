package provider

import (
	"github.com/clicktally/clicktally/internal/cache"
	"github.com/clicktally/clicktally/internal/config"
	"github.com/clicktally/clicktally/internal/logger"
	"github.com/clicktally/clicktally/internal/models"
	"github.com/clicktally/clicktally/internal/repository"
	"github.com/clicktally/clicktally/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	AffiliateRepo  repository.AffiliateRepository
	CampaignRepo   repository.CampaignRepository
	ClickRepo      repository.ClickRepository
	ConversionRepo repository.ConversionRepository
	ReportRepo     repository.ReportRepository

	// Services
	AffiliateService *service.AffiliateService
	CampaignService  *service.CampaignService
	ClickService     *service.ClickService
	PostbackService  *service.PostbackService
	ReportService    *service.ReportService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AffiliateRepo = repository.NewAffiliateRepository(db)
	c.CampaignRepo = repository.NewCampaignRepository(db)
	c.ClickRepo = repository.NewClickRepository(db)
	c.ConversionRepo = repository.NewConversionRepository(db)
	c.ReportRepo = repository.NewReportRepository(db)
}

func (c *Container) initServices() {
	c.AffiliateService = service.NewAffiliateService(c.AffiliateRepo)
	c.CampaignService = service.NewCampaignService(c.CampaignRepo)
	c.ClickService = service.NewClickService(
		c.ClickRepo,
		c.AffiliateRepo,
		c.CampaignRepo,
		c.Config.Tracking.ClickIDLength,
	)
	c.PostbackService = service.NewPostbackService(
		c.ConversionRepo,
		c.ClickRepo,
		c.Config.Tracking.DefaultCurrency,
	)
	c.ReportService = service.NewReportService(
		c.ReportRepo,
		c.AffiliateRepo,
		c.ClickRepo,
		c.ConversionRepo,
	)
}
