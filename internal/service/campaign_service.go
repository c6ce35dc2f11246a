package service

import (
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"github.com/clicktally/clicktally/internal/repository"
	"github.com/google/uuid"
)

// CampaignService 推广活动注册业务服务
type CampaignService struct {
	repo repository.CampaignRepository
}

// NewCampaignService 创建推广活动服务
func NewCampaignService(repo repository.CampaignRepository) *CampaignService {
	return &CampaignService{repo: repo}
}

// CreateCampaign 注册推广活动
func (s *CampaignService) CreateCampaign(name string) (*models.Campaign, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrCampaignNameRequired
	}

	campaign := &models.Campaign{
		ID:   uuid.NewString(),
		Name: trimmed,
	}
	if err := s.repo.Create(campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// ListCampaigns 查询全部推广活动
func (s *CampaignService) ListCampaigns() ([]models.Campaign, error) {
	return s.repo.List()
}
