package models

import "time"

// 支出状态
const (
	StatusCreated    = "created"     // 已创建，尚未开始扣款
	StatusActive     = "active"      // 分期进行中
	StatusFinished   = "finished"    // 分期已全部结清
	StatusUniquePaid = "unique_paid" // 一次性支出，创建即结清
)

// 付款方式
const (
	PaymentOneTime      = "one_time"     // 一次性
	PaymentInstallments = "installments" // 按月分期
)

// Expense 支出记录
// 金额一律使用最小货币单位的整数，避免浮点误差
type Expense struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"size:100;not null"`
	Amount           int64     `json:"amount" gorm:"not null"`
	Status           string    `json:"status" gorm:"size:20;not null"`
	PaymentType      string    `json:"payment_type" gorm:"size:20;not null;default:one_time"`
	BillingDay       int       `json:"billing_day"` // 每月扣款日 1-31，仅分期有效
	Note             string    `json:"note" gorm:"size:255"`
	InstallmentCount int       `json:"installment_count" gorm:"not null;default:1"`
	InstallmentsPaid int       `json:"installments_paid" gorm:"not null;default:0"`
	CategoryID       *uint     `json:"category_id" gorm:"index"`
	CreatedAt        time.Time `json:"created_at"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ValidStatuses 获取所有支出状态
func ValidStatuses() []string {
	return []string{StatusCreated, StatusActive, StatusFinished, StatusUniquePaid}
}
