package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sacco-desk/internal/core/domain"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	transactions := []domain.Transaction{
		{ID: 1, TransactionType: domain.TxDeposit, Amount: 60, Status: domain.StatusApproved},
		{ID: 2, TransactionType: domain.TxDeposit, Amount: 40, Status: domain.StatusApproved},
		// Pending and rejected rows never count toward the totals.
		{ID: 3, TransactionType: domain.TxDeposit, Amount: 999, Status: domain.StatusPending, CreatedAt: now},
		{ID: 4, TransactionType: domain.TxDeposit, Amount: 999, Status: domain.StatusRejected},
		{ID: 5, TransactionType: domain.TxWithdrawal, Amount: 30, Status: domain.StatusApproved},
		{ID: 6, TransactionType: domain.TxLoanRepayment, Amount: 25, Status: domain.StatusApproved},
		// Pending loans go to the committee, not the pending queue. They
		// still count toward yesterday's raw pending figure.
		{ID: 7, TransactionType: domain.TxLoan, Amount: 8000, Status: domain.StatusPending, CreatedAt: yesterday},
		{ID: 8, TransactionType: domain.TxWithdrawal, Amount: 10, Status: domain.StatusPending, CreatedAt: yesterday},
	}

	summary := Summarize(transactions, now)
	require.Equal(t, 100.0, summary.TotalDeposits)
	require.Equal(t, 30.0, summary.TotalWithdrawals)
	require.Equal(t, 25.0, summary.TotalLoanRepayments)

	// Pending: ids 3 and 8 (7 is a loan). Yesterday: ids 8 and 7.
	require.Equal(t, 2, summary.PendingCount)
	require.Equal(t, 2, summary.PendingYesterday)
	require.Equal(t, 0, summary.PendingDelta)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, time.Now())
	require.Zero(t, summary.TotalDeposits)
	require.Zero(t, summary.PendingCount)
	require.Zero(t, summary.PendingDelta)
}

func TestPendingQueues(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: 1, TransactionType: domain.TxDeposit, Status: domain.StatusPending},
		{ID: 2, TransactionType: domain.TxLoan, Status: domain.StatusPending},
		{ID: 3, TransactionType: domain.TxWithdrawal, Status: domain.StatusApproved},
		{ID: 4, TransactionType: domain.TxWithdrawal, Status: domain.StatusPending},
	}

	queue := PendingQueue(transactions)
	require.Len(t, queue, 2)
	require.Equal(t, uint(1), queue[0].ID)
	require.Equal(t, uint(4), queue[1].ID)

	loans := PendingLoans(transactions)
	require.Len(t, loans, 1)
	require.Equal(t, uint(2), loans[0].ID)
}

func TestDisplayAmount(t *testing.T) {
	require.Equal(t, 100.0, DisplayAmount(domain.Transaction{TransactionType: domain.TxDeposit, Amount: 100}))
	require.Equal(t, -50.0, DisplayAmount(domain.Transaction{TransactionType: domain.TxWithdrawal, Amount: 50}))
	require.Equal(t, -8000.0, DisplayAmount(domain.Transaction{TransactionType: domain.TxLoan, Amount: 8000}))
	require.Equal(t, 25.0, DisplayAmount(domain.Transaction{TransactionType: domain.TxLoanRepayment, Amount: 25}))
}
