package track

import (
	"errors"

	"github.com/clicktally/clicktally/internal/http/response"
	"github.com/clicktally/clicktally/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAffiliateRequest 注册推广伙伴请求
type CreateAffiliateRequest struct {
	Name string `json:"name"`
}

// CreateAffiliate 注册推广伙伴
func (h *Handler) CreateAffiliate(c *gin.Context) {
	var req CreateAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Missing affiliate name", err)
		return
	}

	affiliate, err := h.AffiliateService.CreateAffiliate(req.Name)
	if err != nil {
		if errors.Is(err, service.ErrAffiliateNameRequired) {
			respondError(c, response.CodeBadRequest, "Missing affiliate name", nil)
			return
		}
		respondError(c, response.CodeInternal, "Internal Server Error", err)
		return
	}
	response.Created(c, affiliate)
}

// ListAffiliates 查询全部推广伙伴
func (h *Handler) ListAffiliates(c *gin.Context) {
	affiliates, err := h.AffiliateService.ListAffiliates()
	if err != nil {
		respondError(c, response.CodeInternal, "Failed to fetch affiliate data", err)
		return
	}
	response.Success(c, affiliates)
}
