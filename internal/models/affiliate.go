package models

import "time"

// Affiliate 联盟推广伙伴
type Affiliate struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`                      // 主键（UUID）
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`                     // 展示名称
	CreatedAt time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"` // 创建时间

	Clicks []Click `gorm:"foreignKey:AffiliateID" json:"clicks,omitempty"` // 名下点击记录
}

// TableName 指定表名
func (Affiliate) TableName() string {
	return "affiliates"
}
