package track

import (
	"errors"

	"github.com/clicktally/clicktally/internal/http/response"
	"github.com/clicktally/clicktally/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCampaignRequest 注册推广活动请求
type CreateCampaignRequest struct {
	Name string `json:"name"`
}

// CreateCampaign 注册推广活动
func (h *Handler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "Missing campaign name", err)
		return
	}

	campaign, err := h.CampaignService.CreateCampaign(req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNameRequired) {
			respondError(c, response.CodeBadRequest, "Missing campaign name", nil)
			return
		}
		respondError(c, response.CodeInternal, "Internal Server Error", err)
		return
	}
	response.Created(c, campaign)
}

// ListCampaigns 查询全部推广活动
func (h *Handler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.CampaignService.ListCampaigns()
	if err != nil {
		respondError(c, response.CodeInternal, "Internal Server Error", err)
		return
	}
	response.Success(c, campaigns)
}
