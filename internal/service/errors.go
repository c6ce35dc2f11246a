package service

import (
	"errors"
	"strings"
)

// 业务错误定义，由 handler 层映射为 HTTP 状态码
var (
	ErrAffiliateNameRequired = errors.New("affiliate name required")
	ErrCampaignNameRequired  = errors.New("campaign name required")
	ErrAffiliateIDRequired   = errors.New("affiliate id required")
	ErrCampaignIDRequired    = errors.New("campaign id required")
	ErrClickIDRequired       = errors.New("click id required")
	ErrAmountInvalid         = errors.New("amount invalid")

	ErrAffiliateNotFound = errors.New("affiliate not found")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrClickNotFound     = errors.New("click not found")

	ErrClickIDConflict = errors.New("click id already exists")
)

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
