package service

import (
	"strings"

	"github.com/clicktally/clicktally/internal/models"
	"github.com/clicktally/clicktally/internal/repository"
	"github.com/google/uuid"
)

const defaultCurrency = "USD"

// PostbackService 转化回传业务服务
type PostbackService struct {
	repo      repository.ConversionRepository
	clickRepo repository.ClickRepository
	currency  string
}

// NewPostbackService 创建转化回传服务
func NewPostbackService(
	repo repository.ConversionRepository,
	clickRepo repository.ClickRepository,
	currency string,
) *PostbackService {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = defaultCurrency
	}
	return &PostbackService{
		repo:      repo,
		clickRepo: clickRepo,
		currency:  currency,
	}
}

// RecordConversionInput 转化回传输入
// AffiliateID 仅作为调用方携带的关联提示，归因以点击令牌为准
type RecordConversionInput struct {
	AffiliateID string
	ClickID     string
	Amount      string // 可选，缺省表示线索类转化
	Currency    string // 可选，缺省按默认币种
}

// ConversionReceipt 转化回执，附带归因到的推广伙伴与活动
type ConversionReceipt struct {
	Conversion *models.Conversion `json:"conversion"`
	Affiliate  *models.Affiliate  `json:"affiliate"`
	Campaign   *models.Campaign   `json:"campaign"`
}

// RecordConversion 记录一次转化
// 同一点击令牌允许重复回传，每次回传各自落一条转化记录
func (s *PostbackService) RecordConversion(input RecordConversionInput) (*ConversionReceipt, error) {
	if strings.TrimSpace(input.AffiliateID) == "" {
		return nil, ErrAffiliateIDRequired
	}
	clickID := strings.TrimSpace(input.ClickID)
	if clickID == "" {
		return nil, ErrClickIDRequired
	}

	click, err := s.clickRepo.GetByClickIDWithRelations(clickID)
	if err != nil {
		return nil, err
	}
	if click == nil {
		return nil, ErrClickNotFound
	}

	var amount *models.Money
	if raw := strings.TrimSpace(input.Amount); raw != "" {
		parsed, err := models.NewMoneyFromString(raw)
		if err != nil {
			return nil, ErrAmountInvalid
		}
		amount = &parsed
	}

	currency := strings.TrimSpace(input.Currency)
	if currency == "" {
		currency = s.currency
	}

	conversion := &models.Conversion{
		ID:       uuid.NewString(),
		ClickID:  click.ClickID,
		Amount:   amount,
		Currency: currency,
	}
	if err := s.repo.Create(conversion); err != nil {
		return nil, err
	}

	return &ConversionReceipt{
		Conversion: conversion,
		Affiliate:  click.Affiliate,
		Campaign:   click.Campaign,
	}, nil
}

// ListConversionsForAffiliate 查询推广伙伴的转化记录
// 沿用既有口径：取该伙伴最早入库的一条点击，仅返回归因到该点击令牌的转化；
// 伙伴名下没有任何点击时视为未找到
func (s *PostbackService) ListConversionsForAffiliate(affiliateID string) ([]models.Conversion, error) {
	click, err := s.clickRepo.GetFirstByAffiliate(strings.TrimSpace(affiliateID))
	if err != nil {
		return nil, err
	}
	if click == nil {
		return nil, ErrAffiliateNotFound
	}
	return s.repo.ListByClickID(click.ClickID)
}
