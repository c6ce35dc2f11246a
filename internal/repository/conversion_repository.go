package repository

import (
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"gorm.io/gorm"
)

// ConversionRepository 转化记录数据访问接口
type ConversionRepository interface {
	WithTx(tx *gorm.DB) ConversionRepository

	Create(conversion *models.Conversion) error
	ListByClickID(clickID string) ([]models.Conversion, error)
	CountByAffiliate(affiliateID string) (int64, error)
}

// GormConversionRepository GORM 转化记录仓储
type GormConversionRepository struct {
	db *gorm.DB
}

// NewConversionRepository 创建转化记录仓储
func NewConversionRepository(db *gorm.DB) *GormConversionRepository {
	return &GormConversionRepository{db: db}
}

// WithTx 绑定事务
func (r *GormConversionRepository) WithTx(tx *gorm.DB) ConversionRepository {
	if tx == nil {
		return r
	}
	return &GormConversionRepository{db: tx}
}

// Create 创建转化记录
func (r *GormConversionRepository) Create(conversion *models.Conversion) error {
	return r.db.Create(conversion).Error
}

// ListByClickID 按点击令牌查询转化记录
func (r *GormConversionRepository) ListByClickID(clickID string) ([]models.Conversion, error) {
	if strings.TrimSpace(clickID) == "" {
		return []models.Conversion{}, nil
	}
	var rows []models.Conversion
	if err := r.db.Where("click_id = ?", clickID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByAffiliate 统计推广伙伴名下全部点击的转化数
func (r *GormConversionRepository) CountByAffiliate(affiliateID string) (int64, error) {
	if strings.TrimSpace(affiliateID) == "" {
		return 0, nil
	}
	var total int64
	if err := r.db.Model(&models.Conversion{}).
		Joins("JOIN clicks ON clicks.click_id = conversions.click_id").
		Where("clicks.affiliate_id = ?", affiliateID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
