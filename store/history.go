package store

import (
	"errors"
	"fmt"
	"time"

	"garage/models"

	"gorm.io/gorm"
)

// HistoryRow 付款历史的展示行，连接支出和类别后的结果
type HistoryRow struct {
	ID                uint      `json:"id"`
	ExpenseID         uint      `json:"expense_id"`
	Name              string    `json:"name"`
	Amount            int64     `json:"amount"`
	PaidOn            time.Time `json:"paid_on"`
	Category          string    `json:"category"`
	PaymentType       string    `json:"payment_type"`
	BillingDay        int       `json:"billing_day"`
	InstallmentNumber int       `json:"installment_number"`
	InstallmentCount  int       `json:"installment_count"`
	InstallmentsPaid  int       `json:"installments_paid"`
}

// MonthlyTotal 单月付款合计
type MonthlyTotal struct {
	Month string `json:"month"` // 完整月份名 + 年份，如 "January 2026"
	Total int64  `json:"total"`
}

const historySelect = `payment_entries.id, payment_entries.expense_id, expenses.name,
	payment_entries.amount, payment_entries.paid_on, payment_entries.installment_number,
	COALESCE(categories.name, '') AS category, expenses.payment_type, expenses.billing_day,
	expenses.installment_count, expenses.installments_paid`

// ListPaymentHistory 获取全部付款历史
// 按付款日期倒序，同日按 ID 倒序（后插入的在前）
func (s *Store) ListPaymentHistory() ([]HistoryRow, error) {
	return s.listHistory(s.db.Model(&models.PaymentEntry{}))
}

// ListPaymentHistoryForMonth 获取指定月份的付款历史
func (s *Store) ListPaymentHistoryForMonth(month time.Month, year int) ([]HistoryRow, error) {
	if month < time.January || month > time.December {
		return nil, NewValidationError("无效的月份: %d", month)
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)
	query := s.db.Model(&models.PaymentEntry{}).
		Where("paid_on >= ? AND paid_on < ?", start, end)
	return s.listHistory(query)
}

// ListPaymentHistoryBetween 获取日期范围内的付款历史（含两端）
func (s *Store) ListPaymentHistoryBetween(start, end time.Time) ([]HistoryRow, error) {
	query := s.db.Model(&models.PaymentEntry{}).
		Where("paid_on >= ? AND paid_on < ?", today(start), today(end).AddDate(0, 0, 1))
	return s.listHistory(query)
}

func (s *Store) listHistory(query *gorm.DB) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := query.
		Select(historySelect).
		Joins("JOIN expenses ON payment_entries.expense_id = expenses.id").
		Joins("LEFT JOIN categories ON expenses.category_id = categories.id").
		Order("payment_entries.paid_on DESC, payment_entries.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyTotals 统计最近 lastN 个自然月的付款合计
// 窗口锚定在当月月初减 lastN-1 个月，按时间升序返回，
// 没有付款的月份也会出现，合计为 0。
func (s *Store) MonthlyTotals(now time.Time, lastN int) ([]MonthlyTotal, error) {
	if lastN < 1 {
		return nil, NewValidationError("月份数必须大于等于 1")
	}

	y, m, _ := now.Date()
	firstMonth := time.Date(y, m, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(lastN - 1), 0)

	var entries []models.PaymentEntry
	if err := s.db.Where("paid_on >= ?", firstMonth).Find(&entries).Error; err != nil {
		return nil, err
	}

	sums := make(map[string]int64, lastN)
	for _, e := range entries {
		sums[monthKey(e.PaidOn)] += e.Amount
	}

	totals := make([]MonthlyTotal, 0, lastN)
	for i := 0; i < lastN; i++ {
		month := firstMonth.AddDate(0, i, 0)
		totals = append(totals, MonthlyTotal{
			Month: fmt.Sprintf("%s %d", month.Month().String(), month.Year()),
			Total: sums[monthKey(month)],
		})
	}
	return totals, nil
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// GetPaymentEntry 按 ID 获取付款记录（附件模块校验归属用）
func (s *Store) GetPaymentEntry(id uint) (*models.PaymentEntry, error) {
	var entry models.PaymentEntry
	if err := s.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "付款记录", ID: id}
		}
		return nil, err
	}
	return &entry, nil
}

// DeletePaymentHistoryEntry 删除单条付款历史（人工更正用）
// 附件行随外键级联删除，附件文件成为孤儿文件，可离线清理。
// 不回写支出的已付期数（与既有产品行为一致）。
func (s *Store) DeletePaymentHistoryEntry(id uint) error {
	res := s.db.Delete(&models.PaymentEntry{}, id)
	if res.Error != nil {
		return translateConstraint(res.Error, "付款记录仍被引用，无法删除")
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "付款记录", ID: id}
	}
	return nil
}
