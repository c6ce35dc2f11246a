package models

import "time"

// Click 点击追踪记录
type Click struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                       // 主键
	ClickID     string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"click_id"`      // 点击令牌（外部唯一标识）
	AffiliateID string    `gorm:"type:varchar(36);not null;index" json:"affiliate_id"`        // 推广伙伴ID
	CampaignID  string    `gorm:"type:varchar(36);not null;index" json:"campaign_id"`         // 活动ID
	IPAddress   string    `gorm:"type:varchar(64)" json:"ip_address,omitempty"`               // 客户端IP
	UserAgent   string    `gorm:"type:varchar(1024)" json:"user_agent,omitempty"`             // 客户端UA
	CreatedAt   time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"` // 创建时间

	Affiliate *Affiliate `gorm:"foreignKey:AffiliateID" json:"affiliate,omitempty"` // 推广伙伴
	Campaign  *Campaign  `gorm:"foreignKey:CampaignID" json:"campaign,omitempty"`   // 活动
}

// TableName 指定表名
func (Click) TableName() string {
	return "clicks"
}
