package repository

import (
	"errors"
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"gorm.io/gorm"
)

// ClickRepository 点击记录数据访问接口
type ClickRepository interface {
	WithTx(tx *gorm.DB) ClickRepository

	Create(click *models.Click) error
	GetByClickID(clickID string) (*models.Click, error)
	GetByClickIDWithRelations(clickID string) (*models.Click, error)
	GetFirstByAffiliate(affiliateID string) (*models.Click, error)
	ListByAffiliate(affiliateID string) ([]models.Click, error)
	CountByAffiliate(affiliateID string) (int64, error)
}

// GormClickRepository GORM 点击记录仓储
type GormClickRepository struct {
	db *gorm.DB
}

// NewClickRepository 创建点击记录仓储
func NewClickRepository(db *gorm.DB) *GormClickRepository {
	return &GormClickRepository{db: db}
}

// WithTx 绑定事务
func (r *GormClickRepository) WithTx(tx *gorm.DB) ClickRepository {
	if tx == nil {
		return r
	}
	return &GormClickRepository{db: tx}
}

// Create 创建点击记录
func (r *GormClickRepository) Create(click *models.Click) error {
	return r.db.Create(click).Error
}

// GetByClickID 按点击令牌获取点击记录
func (r *GormClickRepository) GetByClickID(clickID string) (*models.Click, error) {
	if strings.TrimSpace(clickID) == "" {
		return nil, nil
	}
	var click models.Click
	if err := r.db.Where("click_id = ?", clickID).First(&click).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &click, nil
}

// GetByClickIDWithRelations 按点击令牌获取点击记录并带出推广伙伴与活动
func (r *GormClickRepository) GetByClickIDWithRelations(clickID string) (*models.Click, error) {
	if strings.TrimSpace(clickID) == "" {
		return nil, nil
	}
	var click models.Click
	if err := r.db.Preload("Affiliate").Preload("Campaign").
		Where("click_id = ?", clickID).First(&click).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &click, nil
}

// GetFirstByAffiliate 获取推广伙伴最早入库的点击记录
func (r *GormClickRepository) GetFirstByAffiliate(affiliateID string) (*models.Click, error) {
	if strings.TrimSpace(affiliateID) == "" {
		return nil, nil
	}
	var click models.Click
	if err := r.db.Where("affiliate_id = ?", affiliateID).
		Order("id asc").First(&click).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &click, nil
}

// ListByAffiliate 查询推广伙伴全部点击记录（带活动，按创建时间倒序）
func (r *GormClickRepository) ListByAffiliate(affiliateID string) ([]models.Click, error) {
	var rows []models.Click
	if err := r.db.Preload("Campaign").
		Where("affiliate_id = ?", affiliateID).
		Order("created_at desc, id desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByAffiliate 统计推广伙伴点击数
func (r *GormClickRepository) CountByAffiliate(affiliateID string) (int64, error) {
	if strings.TrimSpace(affiliateID) == "" {
		return 0, nil
	}
	var total int64
	if err := r.db.Model(&models.Click{}).
		Where("affiliate_id = ?", affiliateID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
