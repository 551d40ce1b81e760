package services

import (
	"time"

	"sacco-desk/internal/core/domain"
)

// DashboardSummary represents the dashboard's aggregate figures, computed
// over an already-fetched transaction collection.
type DashboardSummary struct {
	TotalDeposits       float64 `json:"total_deposits"`
	TotalWithdrawals    float64 `json:"total_withdrawals"`
	TotalLoanRepayments float64 `json:"total_loan_repayments"`

	PendingCount     int `json:"pending_count"`
	PendingYesterday int `json:"pending_yesterday"`
	PendingDelta     int `json:"pending_delta"`
}

// Summarize computes the dashboard aggregates from a transaction slice.
//
// Precondition: the slice must come from an unfiltered fetch covering the
// dashboard's time window. A collection fetched with a narrow filter
// silently understates every figure here.
func Summarize(transactions []domain.Transaction, now time.Time) DashboardSummary {
	var summary DashboardSummary
	yesterday := now.AddDate(0, 0, -1)

	for _, tx := range transactions {
		if tx.Status == domain.StatusApproved {
			switch tx.TransactionType {
			case domain.TxDeposit:
				summary.TotalDeposits += tx.Amount
			case domain.TxWithdrawal:
				summary.TotalWithdrawals += tx.Amount
			case domain.TxLoanRepayment:
				summary.TotalLoanRepayments += tx.Amount
			}
		}

		if tx.Status == domain.StatusPending {
			// Loans are reviewed by the committee, not the accountant's
			// pending queue.
			if tx.TransactionType != domain.TxLoan {
				summary.PendingCount++
			}
			if sameDay(tx.CreatedAt, yesterday) {
				summary.PendingYesterday++
			}
		}
	}

	summary.PendingDelta = summary.PendingCount - summary.PendingYesterday
	return summary
}

// PendingQueue returns the transactions awaiting accountant action, loans
// excluded, preserving server order.
func PendingQueue(transactions []domain.Transaction) []domain.Transaction {
	var pending []domain.Transaction
	for _, tx := range transactions {
		if tx.Status == domain.StatusPending && tx.TransactionType != domain.TxLoan {
			pending = append(pending, tx)
		}
	}
	return pending
}

// PendingLoans returns the loan applications awaiting committee review.
func PendingLoans(transactions []domain.Transaction) []domain.Transaction {
	var pending []domain.Transaction
	for _, tx := range transactions {
		if tx.Status == domain.StatusPending && tx.TransactionType == domain.TxLoan {
			pending = append(pending, tx)
		}
	}
	return pending
}

// DisplayAmount applies the sign convention for display: outflow types
// (withdrawals and loans going out to the member) render negative.
func DisplayAmount(tx domain.Transaction) float64 {
	switch tx.TransactionType {
	case domain.TxWithdrawal, domain.TxLoan:
		if tx.Amount > 0 {
			return -tx.Amount
		}
	}
	return tx.Amount
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
