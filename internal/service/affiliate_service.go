package service

import (
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"github.com/clicktally/clicktally/internal/repository"
	"github.com/google/uuid"
)

// AffiliateService 推广伙伴注册业务服务
type AffiliateService struct {
	repo repository.AffiliateRepository
}

// NewAffiliateService 创建推广伙伴服务
func NewAffiliateService(repo repository.AffiliateRepository) *AffiliateService {
	return &AffiliateService{repo: repo}
}

// CreateAffiliate 注册推广伙伴
func (s *AffiliateService) CreateAffiliate(name string) (*models.Affiliate, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrAffiliateNameRequired
	}

	affiliate := &models.Affiliate{
		ID:   uuid.NewString(),
		Name: trimmed,
	}
	if err := s.repo.Create(affiliate); err != nil {
		return nil, err
	}
	return affiliate, nil
}

// ListAffiliates 查询全部推广伙伴
func (s *AffiliateService) ListAffiliates() ([]models.Affiliate, error) {
	return s.repo.List()
}

// GetAffiliate 按ID获取推广伙伴
func (s *AffiliateService) GetAffiliate(id string) (*models.Affiliate, error) {
	affiliate, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	return affiliate, nil
}
