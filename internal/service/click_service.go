package service

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"github.com/clicktally/clicktally/internal/repository"
)

const defaultClickIDLength = 21

// ClickService 点击记录业务服务
type ClickService struct {
	repo          repository.ClickRepository
	affiliateRepo repository.AffiliateRepository
	campaignRepo  repository.CampaignRepository
	clickIDLength int
}

// NewClickService 创建点击记录服务
func NewClickService(
	repo repository.ClickRepository,
	affiliateRepo repository.AffiliateRepository,
	campaignRepo repository.CampaignRepository,
	clickIDLength int,
) *ClickService {
	if clickIDLength <= 0 {
		clickIDLength = defaultClickIDLength
	}
	return &ClickService{
		repo:          repo,
		affiliateRepo: affiliateRepo,
		campaignRepo:  campaignRepo,
		clickIDLength: clickIDLength,
	}
}

// RecordClickInput 点击记录输入
type RecordClickInput struct {
	AffiliateID string
	CampaignID  string
	ClickID     string // 可选，缺省时由服务端生成
	IPAddress   string
	UserAgent   string
}

// RecordClick 记录一次点击
// 推广伙伴与活动的存在性校验先于写入，任一不存在时不产生点击记录
func (s *ClickService) RecordClick(input RecordClickInput) (*models.Click, error) {
	affiliateID := strings.TrimSpace(input.AffiliateID)
	if affiliateID == "" {
		return nil, ErrAffiliateIDRequired
	}
	campaignID := strings.TrimSpace(input.CampaignID)
	if campaignID == "" {
		return nil, ErrCampaignIDRequired
	}

	affiliate, err := s.affiliateRepo.GetByID(affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	clickID := strings.TrimSpace(input.ClickID)
	if clickID == "" {
		clickID, err = generateClickID(s.clickIDLength)
		if err != nil {
			return nil, err
		}
	}

	click := &models.Click{
		ClickID:     clickID,
		AffiliateID: affiliateID,
		CampaignID:  campaignID,
		IPAddress:   strings.TrimSpace(input.IPAddress),
		UserAgent:   input.UserAgent,
	}
	if err := s.repo.Create(click); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrClickIDConflict
		}
		return nil, err
	}
	return click, nil
}

// ListClicksForAffiliate 查询推广伙伴全部点击记录（带活动，按创建时间倒序）
func (s *ClickService) ListClicksForAffiliate(affiliateID string) ([]models.Click, error) {
	affiliate, err := s.affiliateRepo.GetByID(strings.TrimSpace(affiliateID))
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	return s.repo.ListByAffiliate(affiliate.ID)
}

// generateClickID 生成 URL 安全的高熵点击令牌
func generateClickID(length int) (string, error) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	var builder strings.Builder
	builder.Grow(length)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}
	return builder.String(), nil
}
