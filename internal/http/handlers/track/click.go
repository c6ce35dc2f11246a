package track

import (
	"strings"

	"github.com/clicktally/clicktally/internal/http/response"
	"github.com/clicktally/clicktally/internal/service"

	"github.com/gin-gonic/gin"
)

var recordClickErrorRules = []mappedHandlerError{
	{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, msg: "Affiliate not found"},
	{target: service.ErrCampaignNotFound, code: response.CodeNotFound, msg: "Campaign not found"},
	{target: service.ErrClickIDConflict, code: response.CodeConflict, msg: "Click id already exists"},
}

// RecordClick 记录点击
// GET /click?affiliate_id=&campaign_id=&click_id=
func (h *Handler) RecordClick(c *gin.Context) {
	affiliateID := strings.TrimSpace(c.Query("affiliate_id"))
	campaignID := strings.TrimSpace(c.Query("campaign_id"))
	if affiliateID == "" || campaignID == "" {
		respondError(c, response.CodeBadRequest,
			"Missing required query parameters: affiliate_id or campaign_id", nil)
		return
	}

	click, err := h.ClickService.RecordClick(service.RecordClickInput{
		AffiliateID: affiliateID,
		CampaignID:  campaignID,
		ClickID:     c.Query("click_id"),
		IPAddress:   c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
	})
	if err != nil {
		respondWithMappedError(c, err, recordClickErrorRules,
			response.CodeInternal, "Internal Server Error")
		return
	}
	response.Created(c, click)
}

// ListAffiliateClicks 查询推广伙伴点击记录
// GET /affiliate-data/:affiliate_id/clicks
func (h *Handler) ListAffiliateClicks(c *gin.Context) {
	affiliateID := c.Param("affiliate_id")

	clicks, err := h.ClickService.ListClicksForAffiliate(affiliateID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, msg: "Affiliate not found"},
		}, response.CodeInternal, "Error fetching clicks")
		return
	}
	response.Success(c, clicks)
}
