package store

import (
	"log"
	"time"

	"garage/models"

	"gorm.io/gorm"
)

// SynchronizePendingPayments 推进分期支出
// 对每个处于 active 状态的分期支出：若本月尚无付款记录且扣款日
// 已到（billing_day <= 当日），则已付期数加一、写入一条当日付款
// 记录；期数付满后状态转为 finished。
//
// 整个扫描在单个事务内完成，引擎层失败整体回滚；业务上的坏行
// （如计数已满但状态未收尾）记录日志后跳过，不影响其余支出。
//
// 本月已有记录的保护条件保证了同一自然月内重复调用不会重复扣款，
// 因此既可以每次启动时调用，也可以挂在定时任务上。
//
// 已知限制：扣款日大于当月天数时（如 31 日遇到 2 月），条件
// billing_day <= 当日 当月永远不成立，该月被跳过，顺延到下个月。
func (s *Store) SynchronizePendingPayments(now time.Time) error {
	y, m, d := now.Date()
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	paidOn := today(now)

	return s.db.Transaction(func(tx *gorm.DB) error {
		existing := tx.Model(&models.PaymentEntry{}).
			Select("expense_id").
			Where("paid_on >= ? AND paid_on < ?", monthStart, nextMonth)

		var candidates []models.Expense
		err := tx.
			Where("status = ? AND payment_type = ?", models.StatusActive, models.PaymentInstallments).
			Where("billing_day <= ?", d).
			Where("id NOT IN (?)", existing).
			Order("id ASC").
			Find(&candidates).Error
		if err != nil {
			return err
		}

		for i := range candidates {
			e := &candidates[i]

			if e.InstallmentCount > 0 && e.InstallmentsPaid >= e.InstallmentCount {
				// 坏数据：计数已满但状态仍为 active，跳过该行继续
				log.Printf("同步跳过支出 %d: 已付期数 %d 达到分期数 %d 但状态为 %s",
					e.ID, e.InstallmentsPaid, e.InstallmentCount, e.Status)
				continue
			}

			e.InstallmentsPaid++

			entry := models.PaymentEntry{
				ExpenseID:         e.ID,
				Amount:            e.Amount,
				PaidOn:            paidOn,
				InstallmentNumber: e.InstallmentsPaid + 1,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}

			status := e.Status
			if e.InstallmentCount > 0 && e.InstallmentsPaid >= e.InstallmentCount {
				status = models.StatusFinished
			}
			err := tx.Model(&models.Expense{}).
				Where("id = ?", e.ID).
				Updates(map[string]interface{}{
					"installments_paid": e.InstallmentsPaid,
					"status":            status,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
