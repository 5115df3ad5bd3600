package store

import (
	"strings"
	"time"

	"garage/models"

	"gorm.io/gorm"
)

// ExpenseInput 创建支出的入参
type ExpenseInput struct {
	Name             string
	Amount           int64
	Status           string
	PaymentType      string
	BillingDay       int
	Note             string
	InstallmentCount int
	InstallmentsPaid int
	CategoryID       *uint
}

// CreateExpenseWithInitialPayment 创建支出并原子地写入首条付款记录
// 两行要么都写入要么都不写入。一次性支出创建即结清；
// 分期支出从 InstallmentsPaid 开始，由同步任务逐月推进。
// 返回新支出的 ID。
func (s *Store) CreateExpenseWithInitialPayment(now time.Time, in ExpenseInput) (uint, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, NewValidationError("支出名称不能为空")
	}
	if in.Amount <= 0 {
		return 0, NewValidationError("金额必须大于 0")
	}

	if in.PaymentType == "" {
		in.PaymentType = models.PaymentOneTime
	}
	if in.PaymentType != models.PaymentOneTime && in.PaymentType != models.PaymentInstallments {
		return 0, NewValidationError("无效的付款方式: %s", in.PaymentType)
	}

	expense := models.Expense{
		Name:        in.Name,
		Amount:      in.Amount,
		PaymentType: in.PaymentType,
		Note:        strings.TrimSpace(in.Note),
		CategoryID:  in.CategoryID,
	}

	// 首条付款记录的期号
	installmentNumber := 1

	switch in.PaymentType {
	case models.PaymentOneTime:
		// 一次性支出：单期，创建即结清
		expense.InstallmentCount = 1
		expense.InstallmentsPaid = 1
		expense.Status = models.StatusUniquePaid
		expense.BillingDay = 0
	case models.PaymentInstallments:
		if in.BillingDay < 1 || in.BillingDay > 31 {
			return 0, NewValidationError("扣款日必须在 1-31 之间")
		}
		if in.InstallmentCount < 1 {
			return 0, NewValidationError("分期数必须大于等于 1")
		}
		if in.InstallmentsPaid < 0 || in.InstallmentsPaid > in.InstallmentCount {
			return 0, NewValidationError("已付期数必须在 0 和分期数之间")
		}
		expense.BillingDay = in.BillingDay
		expense.InstallmentCount = in.InstallmentCount
		expense.InstallmentsPaid = in.InstallmentsPaid
		expense.Status = in.Status
		if expense.Status == "" {
			expense.Status = models.StatusActive
		}
		if expense.Status != models.StatusCreated && expense.Status != models.StatusActive {
			return 0, NewValidationError("无效的支出状态: %s", in.Status)
		}
		installmentNumber = expense.InstallmentsPaid + 1
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&expense).Error; err != nil {
			return translateConstraint(err, "支出引用的类别不存在")
		}
		entry := models.PaymentEntry{
			ExpenseID:         expense.ID,
			Amount:            expense.Amount,
			PaidOn:            today(now),
			InstallmentNumber: installmentNumber,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return 0, err
	}
	return expense.ID, nil
}

// ListExpenses 获取支出列表，status 为空时返回全部
func (s *Store) ListExpenses(status string) ([]models.Expense, error) {
	query := s.db.Model(&models.Expense{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var list []models.Expense
	if err := query.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
