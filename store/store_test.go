package store

import (
	"path/filepath"
	"testing"
	"time"

	"garage/database"
	"garage/models"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.OpenFile(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return New(db)
}

// mustCreateCategory 测试辅助：创建类别
func mustCreateCategory(t *testing.T, s *Store, name string) *models.Category {
	t.Helper()
	cat, err := s.CreateCategory(name, "")
	require.NoError(t, err)
	return cat
}

// mustCreateInstallmentExpense 测试辅助：在指定日期创建分期支出
func mustCreateInstallmentExpense(t *testing.T, s *Store, now time.Time, name string, billingDay, count int) uint {
	t.Helper()
	id, err := s.CreateExpenseWithInitialPayment(now, ExpenseInput{
		Name:             name,
		Amount:           500000,
		PaymentType:      models.PaymentInstallments,
		BillingDay:       billingDay,
		InstallmentCount: count,
	})
	require.NoError(t, err)
	return id
}

func getExpense(t *testing.T, s *Store, id uint) models.Expense {
	t.Helper()
	var e models.Expense
	require.NoError(t, s.db.First(&e, id).Error)
	return e
}

func getEntries(t *testing.T, s *Store, expenseID uint) []models.PaymentEntry {
	t.Helper()
	var entries []models.PaymentEntry
	require.NoError(t, s.db.Where("expense_id = ?", expenseID).Order("id ASC").Find(&entries).Error)
	return entries
}
