package models

import "time"

// PaymentEntry 付款历史记录
// Amount 记录付款当时的支出金额快照，后续修改支出不影响历史
type PaymentEntry struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	ExpenseID         uint      `json:"expense_id" gorm:"index;not null"`
	Amount            int64     `json:"amount" gorm:"not null"`
	PaidOn            time.Time `json:"paid_on" gorm:"index;not null"`
	InstallmentNumber int       `json:"installment_number"`

	Expense Expense `json:"-" gorm:"foreignKey:ExpenseID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName 设置表名
func (PaymentEntry) TableName() string {
	return "payment_entries"
}
