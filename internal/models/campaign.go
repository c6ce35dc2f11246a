package models

import "time"

// Campaign 推广活动
type Campaign struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`                      // 主键（UUID）
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`                     // 展示名称
	CreatedAt time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"` // 创建时间

	Clicks []Click `gorm:"foreignKey:CampaignID" json:"clicks,omitempty"` // 名下点击记录
}

// TableName 指定表名
func (Campaign) TableName() string {
	return "campaigns"
}
