package models

import "time"

// Conversion 转化记录（通过点击令牌归因到 Click）
type Conversion struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`                      // 主键（UUID）
	ClickID   string    `gorm:"type:varchar(64);not null;index" json:"click_id"`            // 点击令牌（外键 -> clicks.click_id）
	Amount    *Money    `gorm:"type:decimal(20,2)" json:"amount"`                           // 金额（空表示线索类转化）
	Currency  string    `gorm:"type:varchar(8);not null;default:USD" json:"currency"`       // 币种
	CreatedAt time.Time `gorm:"index;not null;default:CURRENT_TIMESTAMP" json:"created_at"` // 创建时间
}

// TableName 指定表名
func (Conversion) TableName() string {
	return "conversions"
}
