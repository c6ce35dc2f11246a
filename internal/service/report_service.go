package service

import (
	"strings"

	"github.com/clicktally/clicktally/internal/repository"
)

// ReportService 推广看板聚合服务
type ReportService struct {
	reportRepo     repository.ReportRepository
	affiliateRepo  repository.AffiliateRepository
	clickRepo      repository.ClickRepository
	conversionRepo repository.ConversionRepository
}

// NewReportService 创建看板聚合服务
func NewReportService(
	reportRepo repository.ReportRepository,
	affiliateRepo repository.AffiliateRepository,
	clickRepo repository.ClickRepository,
	conversionRepo repository.ConversionRepository,
) *ReportService {
	return &ReportService{
		reportRepo:     reportRepo,
		affiliateRepo:  affiliateRepo,
		clickRepo:      clickRepo,
		conversionRepo: conversionRepo,
	}
}

// AffiliateRevenueItem 按币种汇总的收入项
type AffiliateRevenueItem struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// AffiliateSummary 推广伙伴汇总数据
// 与逐条查询接口不同，转化与收入统计覆盖该伙伴名下全部点击
type AffiliateSummary struct {
	AffiliateID     string                 `json:"affiliate_id"`
	AffiliateName   string                 `json:"affiliate_name"`
	ClickCount      int64                  `json:"click_count"`
	ConversionCount int64                  `json:"conversion_count"`
	Revenue         []AffiliateRevenueItem `json:"revenue"`
}

// GetAffiliateSummary 汇总推广伙伴的点击数、转化数与按币种收入
func (s *ReportService) GetAffiliateSummary(affiliateID string) (*AffiliateSummary, error) {
	affiliate, err := s.affiliateRepo.GetByID(strings.TrimSpace(affiliateID))
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	clickCount, err := s.clickRepo.CountByAffiliate(affiliate.ID)
	if err != nil {
		return nil, err
	}
	conversionCount, err := s.conversionRepo.CountByAffiliate(affiliate.ID)
	if err != nil {
		return nil, err
	}
	aggregates, err := s.reportRepo.SumRevenueByAffiliate(affiliate.ID)
	if err != nil {
		return nil, err
	}

	revenue := make([]AffiliateRevenueItem, 0, len(aggregates))
	for _, row := range aggregates {
		revenue = append(revenue, AffiliateRevenueItem{
			Currency: row.Currency,
			Total:    row.Total.StringFixed(2),
		})
	}

	return &AffiliateSummary{
		AffiliateID:     affiliate.ID,
		AffiliateName:   affiliate.Name,
		ClickCount:      clickCount,
		ConversionCount: conversionCount,
		Revenue:         revenue,
	}, nil
}
