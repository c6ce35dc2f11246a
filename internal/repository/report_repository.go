package repository

import (
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AffiliateRevenueAggregate 按币种汇总的转化收入
type AffiliateRevenueAggregate struct {
	Currency string          `gorm:"column:currency" json:"currency"`
	Total    decimal.Decimal `gorm:"column:total" json:"-"`
}

// ReportRepository 看板聚合数据访问接口
type ReportRepository interface {
	SumRevenueByAffiliate(affiliateID string) ([]AffiliateRevenueAggregate, error)
}

// GormReportRepository GORM 看板聚合仓储
type GormReportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建看板聚合仓储
func NewReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// SumRevenueByAffiliate 按币种汇总推广伙伴名下全部点击的转化金额
// 无金额的线索类转化按 0 计入对应币种
func (r *GormReportRepository) SumRevenueByAffiliate(affiliateID string) ([]AffiliateRevenueAggregate, error) {
	if strings.TrimSpace(affiliateID) == "" {
		return []AffiliateRevenueAggregate{}, nil
	}
	var rows []AffiliateRevenueAggregate
	if err := r.db.Model(&models.Conversion{}).
		Select("conversions.currency AS currency, COALESCE(SUM(conversions.amount), 0) AS total").
		Joins("JOIN clicks ON clicks.click_id = conversions.click_id").
		Where("clicks.affiliate_id = ?", affiliateID).
		Group("conversions.currency").
		Order("conversions.currency asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Total = rows[i].Total.Round(2)
	}
	return rows, nil
}
