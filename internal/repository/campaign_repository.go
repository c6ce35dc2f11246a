package repository

import (
	"errors"
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"gorm.io/gorm"
)

// CampaignRepository 推广活动数据访问接口
type CampaignRepository interface {
	WithTx(tx *gorm.DB) CampaignRepository

	Create(campaign *models.Campaign) error
	GetByID(id string) (*models.Campaign, error)
	List() ([]models.Campaign, error)
}

// GormCampaignRepository GORM 推广活动仓储
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository 创建推广活动仓储
func NewCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCampaignRepository) WithTx(tx *gorm.DB) CampaignRepository {
	if tx == nil {
		return r
	}
	return &GormCampaignRepository{db: tx}
}

// Create 创建推广活动
func (r *GormCampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID 按ID获取推广活动
func (r *GormCampaignRepository) GetByID(id string) (*models.Campaign, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	var campaign models.Campaign
	if err := r.db.Where("id = ?", id).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// List 查询全部推广活动
func (r *GormCampaignRepository) List() ([]models.Campaign, error) {
	var rows []models.Campaign
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
