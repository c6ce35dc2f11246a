package repository

import (
	"errors"
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"gorm.io/gorm"
)

// AffiliateRepository 推广伙伴数据访问接口
type AffiliateRepository interface {
	WithTx(tx *gorm.DB) AffiliateRepository

	Create(affiliate *models.Affiliate) error
	GetByID(id string) (*models.Affiliate, error)
	List() ([]models.Affiliate, error)
}

// GormAffiliateRepository GORM 推广伙伴仓储
type GormAffiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository 创建推广伙伴仓储
func NewAffiliateRepository(db *gorm.DB) *GormAffiliateRepository {
	return &GormAffiliateRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAffiliateRepository) WithTx(tx *gorm.DB) AffiliateRepository {
	if tx == nil {
		return r
	}
	return &GormAffiliateRepository{db: tx}
}

// Create 创建推广伙伴
func (r *GormAffiliateRepository) Create(affiliate *models.Affiliate) error {
	return r.db.Create(affiliate).Error
}

// GetByID 按ID获取推广伙伴
func (r *GormAffiliateRepository) GetByID(id string) (*models.Affiliate, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	var affiliate models.Affiliate
	if err := r.db.Where("id = ?", id).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// List 查询全部推广伙伴
func (r *GormAffiliateRepository) List() ([]models.Affiliate, error) {
	var rows []models.Affiliate
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
