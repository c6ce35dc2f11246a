package track

import (
	"strings"

	"github.com/clicktally/clicktally/internal/http/response"
	"github.com/clicktally/clicktally/internal/service"

	"github.com/gin-gonic/gin"
)

var recordConversionErrorRules = []mappedHandlerError{
	{target: service.ErrClickNotFound, code: response.CodeNotFound, msg: "Click not found"},
	{target: service.ErrAmountInvalid, code: response.CodeBadRequest, msg: "Invalid amount"},
}

// Postback 记录转化回传
// GET /postback?affiliate_id=&click_id=&amount=&currency=
func (h *Handler) Postback(c *gin.Context) {
	affiliateID := strings.TrimSpace(c.Query("affiliate_id"))
	clickID := strings.TrimSpace(c.Query("click_id"))
	if affiliateID == "" || clickID == "" {
		respondError(c, response.CodeBadRequest,
			"Missing required query parameters: affiliate_id or click_id", nil)
		return
	}

	receipt, err := h.PostbackService.RecordConversion(service.RecordConversionInput{
		AffiliateID: affiliateID,
		ClickID:     clickID,
		Amount:      c.Query("amount"),
		Currency:    c.Query("currency"),
	})
	if err != nil {
		respondWithMappedError(c, err, recordConversionErrorRules,
			response.CodeInternal, "Internal Server Error")
		return
	}
	response.SuccessWithMsg(c, "Conversion tracked successfully", receipt)
}

// ListAffiliateConversions 查询推广伙伴转化记录
// GET /affiliate-data/:affiliate_id/conversions
func (h *Handler) ListAffiliateConversions(c *gin.Context) {
	affiliateID := c.Param("affiliate_id")

	conversions, err := h.PostbackService.ListConversionsForAffiliate(affiliateID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, msg: "Affiliate not found"},
		}, response.CodeInternal, "Error fetching affiliate")
		return
	}
	response.Success(c, conversions)
}
