package store

import (
	"testing"
	"time"

	"garage/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPaymentHistory_JoinAndOrder(t *testing.T) {
	s := newTestStore(t)
	cat := mustCreateCategory(t, s, "订阅服务")

	first, err := s.CreateExpenseWithInitialPayment(localDate(2025, time.June, 10), ExpenseInput{
		Name:             "Netflix",
		Amount:           500000,
		PaymentType:      models.PaymentInstallments,
		BillingDay:       15,
		InstallmentCount: 12,
		CategoryID:       &cat.ID,
	})
	require.NoError(t, err)

	// 无类别的一次性支出，付款日期更早
	second, err := s.CreateExpenseWithInitialPayment(localDate(2025, time.May, 3), ExpenseInput{
		Name:        "维修",
		Amount:      80000,
		PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)

	rows, err := s.ListPaymentHistory()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// 付款日期倒序
	assert.Equal(t, first, rows[0].ExpenseID)
	assert.Equal(t, "Netflix", rows[0].Name)
	assert.Equal(t, "订阅服务", rows[0].Category)
	assert.Equal(t, 15, rows[0].BillingDay)
	assert.Equal(t, 12, rows[0].InstallmentCount)

	assert.Equal(t, second, rows[1].ExpenseID)
	assert.Equal(t, "", rows[1].Category)
}

func TestListPaymentHistory_SameDayTieBreak(t *testing.T) {
	s := newTestStore(t)
	day := localDate(2025, time.June, 10)

	_, err := s.CreateExpenseWithInitialPayment(day, ExpenseInput{
		Name: "先插入", Amount: 100, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)
	_, err = s.CreateExpenseWithInitialPayment(day, ExpenseInput{
		Name: "后插入", Amount: 100, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)

	rows, err := s.ListPaymentHistory()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// 同日按 ID 倒序，后插入的在前
	assert.Equal(t, "后插入", rows[0].Name)
}

func TestListPaymentHistoryForMonth(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateExpenseWithInitialPayment(localDate(2025, time.June, 10), ExpenseInput{
		Name: "六月", Amount: 100, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)
	_, err = s.CreateExpenseWithInitialPayment(localDate(2025, time.July, 1), ExpenseInput{
		Name: "七月", Amount: 100, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)

	rows, err := s.ListPaymentHistoryForMonth(time.June, 2025)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "六月", rows[0].Name)

	_, err = s.ListPaymentHistoryForMonth(13, 2025)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestMonthlyTotals_FillsEmptyMonths(t *testing.T) {
	s := newTestStore(t)
	now := localDate(2025, time.June, 20)

	// 六个月窗口里只有两个月有付款
	_, err := s.CreateExpenseWithInitialPayment(localDate(2025, time.June, 5), ExpenseInput{
		Name: "a", Amount: 1000, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)
	_, err = s.CreateExpenseWithInitialPayment(localDate(2025, time.June, 15), ExpenseInput{
		Name: "b", Amount: 500, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)
	_, err = s.CreateExpenseWithInitialPayment(localDate(2025, time.March, 8), ExpenseInput{
		Name: "c", Amount: 200, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)

	totals, err := s.MonthlyTotals(now, 6)
	require.NoError(t, err)
	require.Len(t, totals, 6)

	// 按时间升序：一月在前，当月在最后
	assert.Equal(t, "January 2025", totals[0].Month)
	assert.Equal(t, "June 2025", totals[5].Month)

	assert.Equal(t, int64(0), totals[0].Total)
	assert.Equal(t, int64(0), totals[1].Total)
	assert.Equal(t, int64(200), totals[2].Total) // March
	assert.Equal(t, int64(0), totals[3].Total)
	assert.Equal(t, int64(0), totals[4].Total)
	assert.Equal(t, int64(1500), totals[5].Total) // June
}

func TestMonthlyTotals_WindowExcludesOlder(t *testing.T) {
	s := newTestStore(t)
	now := localDate(2025, time.June, 20)

	// 窗口外（七个月前）的付款不计入
	_, err := s.CreateExpenseWithInitialPayment(localDate(2024, time.November, 5), ExpenseInput{
		Name: "旧账", Amount: 9999, PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)

	totals, err := s.MonthlyTotals(now, 6)
	require.NoError(t, err)
	for _, m := range totals {
		assert.Equal(t, int64(0), m.Total)
	}
}

func TestDeletePaymentHistoryEntry(t *testing.T) {
	s := newTestStore(t)
	id := mustCreateInstallmentExpense(t, s, localDate(2025, time.June, 10), "Netflix", 15, 12)
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.July, 16)))

	entries := getEntries(t, s, id)
	require.Len(t, entries, 2)

	require.NoError(t, s.DeletePaymentHistoryEntry(entries[1].ID))
	assert.Len(t, getEntries(t, s, id), 1)

	// 删除历史不回写支出计数（与既有产品行为一致）
	assert.Equal(t, 1, getExpense(t, s, id).InstallmentsPaid)

	// 不存在的 ID 返回 NotFound 而不是硬错误
	err := s.DeletePaymentHistoryEntry(9999)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDeletePaymentHistoryEntry_CascadesAttachments(t *testing.T) {
	s := newTestStore(t)
	id := mustCreateInstallmentExpense(t, s, localDate(2025, time.June, 10), "Netflix", 15, 12)
	entries := getEntries(t, s, id)
	require.Len(t, entries, 1)

	att := models.Attachment{
		PaymentEntryID: entries[0].ID,
		OriginalName:   "factura.pdf",
		StoredName:     "deadbeef.pdf",
		Kind:           models.AttachmentPDF,
	}
	require.NoError(t, s.db.Create(&att).Error)

	require.NoError(t, s.DeletePaymentHistoryEntry(entries[0].ID))

	var attCount int64
	s.db.Model(&models.Attachment{}).Count(&attCount)
	assert.Zero(t, attCount)
}
