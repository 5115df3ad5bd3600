package store

import (
	"testing"
	"time"

	"garage/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestSynchronize_AdvancesAfterBillingDay(t *testing.T) {
	s := newTestStore(t)
	created := localDate(2025, time.June, 10)
	id := mustCreateInstallmentExpense(t, s, created, "Netflix", 15, 12)

	// 次月 16 日：扣款日已过，推进一期
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.July, 16)))

	e := getExpense(t, s, id)
	assert.Equal(t, 1, e.InstallmentsPaid)
	assert.Equal(t, models.StatusActive, e.Status)

	entries := getEntries(t, s, id)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, entries[1].InstallmentNumber)
	assert.True(t, entries[1].PaidOn.Equal(localDate(2025, time.July, 16)))
	// 金额是支出当前金额的快照
	assert.Equal(t, int64(500000), entries[1].Amount)
}

func TestSynchronize_NotBeforeBillingDay(t *testing.T) {
	s := newTestStore(t)
	id := mustCreateInstallmentExpense(t, s, localDate(2025, time.June, 10), "Netflix", 15, 12)

	// 次月 10 日：扣款日未到
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.July, 10)))

	assert.Equal(t, 0, getExpense(t, s, id).InstallmentsPaid)
	assert.Len(t, getEntries(t, s, id), 1)
}

func TestSynchronize_IdempotentWithinMonth(t *testing.T) {
	s := newTestStore(t)
	id := mustCreateInstallmentExpense(t, s, localDate(2025, time.June, 10), "Netflix", 15, 12)

	// 同一自然月内反复调用，最多推进一次
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.July, 16)))
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.July, 16)))
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.July, 28)))

	assert.Equal(t, 1, getExpense(t, s, id).InstallmentsPaid)
	assert.Len(t, getEntries(t, s, id), 2)
}

func TestSynchronize_FinishesAfterAllInstallments(t *testing.T) {
	s := newTestStore(t)
	id := mustCreateInstallmentExpense(t, s, localDate(2025, time.January, 2), "短期分期", 5, 2)

	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.February, 6)))
	e := getExpense(t, s, id)
	assert.Equal(t, 1, e.InstallmentsPaid)
	assert.Equal(t, models.StatusActive, e.Status)

	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.March, 6)))
	e = getExpense(t, s, id)
	assert.Equal(t, 2, e.InstallmentsPaid)
	assert.Equal(t, models.StatusFinished, e.Status)

	// 结清后继续同步不再产生记录
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.April, 6)))
	e = getExpense(t, s, id)
	assert.Equal(t, 2, e.InstallmentsPaid)
	assert.Equal(t, models.StatusFinished, e.Status)
	assert.Len(t, getEntries(t, s, id), 3)
}

func TestSynchronize_SkipsShortMonths(t *testing.T) {
	s := newTestStore(t)
	// 扣款日 31：二月没有 31 日，条件永远不成立，该月被跳过
	id := mustCreateInstallmentExpense(t, s, localDate(2025, time.January, 5), "月末扣款", 31, 12)

	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.February, 28)))
	assert.Equal(t, 0, getExpense(t, s, id).InstallmentsPaid)
	assert.Len(t, getEntries(t, s, id), 1)

	// 三月有 31 日，顺延到三月推进
	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.March, 31)))
	assert.Equal(t, 1, getExpense(t, s, id).InstallmentsPaid)
	assert.Len(t, getEntries(t, s, id), 2)
}

func TestSynchronize_ExcludesOneTimeAndFinished(t *testing.T) {
	s := newTestStore(t)
	created := localDate(2025, time.June, 1)

	_, err := s.CreateExpenseWithInitialPayment(created, ExpenseInput{
		Name:        "一次性",
		Amount:      100,
		PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)

	require.NoError(t, s.SynchronizePendingPayments(localDate(2025, time.July, 31)))

	var entryCount int64
	s.db.Model(&models.PaymentEntry{}).Count(&entryCount)
	assert.Equal(t, int64(1), entryCount)
}
