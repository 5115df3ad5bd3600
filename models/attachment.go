package models

import "time"

// 附件类型
const (
	AttachmentImage = "image"
	AttachmentPDF   = "pdf"
)

// Attachment 付款凭证附件元数据
// StoredName 是落盘文件名（随机生成，全局唯一），OriginalName 保留用户原始文件名
type Attachment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	PaymentEntryID uint      `json:"payment_entry_id" gorm:"index;not null"`
	OriginalName   string    `json:"original_name" gorm:"size:255;not null"`
	StoredName     string    `json:"stored_name" gorm:"size:64;not null;uniqueIndex"`
	Kind           string    `json:"kind" gorm:"size:10;not null"`
	CreatedAt      time.Time `json:"created_at"`

	PaymentEntry PaymentEntry `json:"-" gorm:"foreignKey:PaymentEntryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName 设置表名
func (Attachment) TableName() string {
	return "attachments"
}
