package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/core/services"
)

func newTransactionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List and process transactions",
	}
	cmd.AddCommand(newTransactionsListCmd(a), newTransactionsProcessCmd(a))
	return cmd
}

func newTransactionsListCmd(a *app) *cobra.Command {
	var filter domain.TransactionFilter
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions matching the filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Transactions.Fetch(ctx, filter); err != nil {
				return renderErr(err)
			}

			items := a.set.Transactions.Items()
			if pendingOnly {
				items = services.PendingQueue(items)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tAMOUNT\tSTATUS\tREASON\tDATE")
			for _, tx := range items {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\t%s\n",
					tx.ID, tx.TransactionType, services.DisplayAmount(tx),
					tx.Status, tx.Reason, tx.CreatedAt.Format("2006-01-02"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filter.TransactionType, "type", "", "transaction type (deposit, withdrawal, loan, 'loan repayment')")
	cmd.Flags().StringVar(&filter.Status, "status", "", "status (pending, approved, rejected)")
	cmd.Flags().StringVar(&filter.AmountMin, "amount-min", "", "minimum amount")
	cmd.Flags().StringVar(&filter.AmountMax, "amount-max", "", "maximum amount")
	cmd.Flags().StringVar(&filter.Search, "search", "", "search in reason text")
	cmd.Flags().IntVar(&filter.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&filter.PerPage, "per-page", 0, "page size")
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "show only the pending queue (loans excluded)")
	return cmd
}

func newTransactionsProcessCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "process <id> <action>",
		Short: "Approve, reject or recommend on a transaction",
		Long:  "Actions: approve, reject, recommend-approval, recommend-rejection.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleAccountant, domain.RoleManager, domain.RoleLoanCommittee); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Transactions.Process(ctx, id, args[1]); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Transaction %d: %s\n", id, args[1])
			return nil
		},
	}
}

// newSubmitCmd builds one money-request command. The four customer
// submissions differ only in type and wording.
func newSubmitCmd(a *app, use, short, txType string, receiptFlag bool) *cobra.Command {
	var amount float64
	var reason, receipt string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleCustomer); err != nil {
				return err
			}

			req := domain.MoneyRequest{Type: txType, Amount: amount, Reason: reason}
			if receipt != "" {
				data, err := os.ReadFile(receipt)
				if err != nil {
					return err
				}
				req.ReceiptName = filepath.Base(receipt)
				req.Receipt = data
			}

			ctx, cancel := a.ctx()
			defer cancel()
			created, err := a.set.Transactions.Submit(ctx, req)
			if err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Request submitted (id %d, status %s)\n", created.ID, created.Status)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for the request")
	if receiptFlag {
		cmd.Flags().StringVar(&receipt, "receipt", "", "receipt image to attach")
	}
	cmd.MarkFlagRequired("amount")
	return cmd
}

func newDepositCmd(a *app) *cobra.Command {
	return newSubmitCmd(a, "deposit", "Request a deposit", domain.TxDeposit, true)
}

func newWithdrawCmd(a *app) *cobra.Command {
	return newSubmitCmd(a, "withdraw", "Request a withdrawal", domain.TxWithdrawal, false)
}

func newRepayCmd(a *app) *cobra.Command {
	return newSubmitCmd(a, "repay", "Request a loan repayment", domain.TxLoanRepayment, true)
}

func newApplyLoanCmd(a *app) *cobra.Command {
	return newSubmitCmd(a, "apply-loan", "Apply for a loan", domain.TxLoan, true)
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
