package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/core/services"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the role dashboard figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			ctx, cancel := a.ctx()
			defer cancel()

			// Aggregates need the full window, so no filter here.
			if err := a.set.Transactions.Fetch(ctx, domain.TransactionFilter{}); err != nil {
				return renderErr(err)
			}
			transactions := a.set.Transactions.Items()
			summary := services.Summarize(transactions, time.Now())

			if a.set.Session.Role() == domain.RoleCustomer {
				balances, err := a.client.CustomerData(ctx, a.set.Session.Token())
				if err != nil {
					return renderErr(err)
				}
				a.set.Session.SetBalances(balances.SavingBalance, balances.LoanBalance)
				fmt.Printf("Saving balance:  %12.2f\n", balances.SavingBalance)
				fmt.Printf("Loan balance:    %12.2f\n", balances.LoanBalance)
				fmt.Println()
			}

			fmt.Printf("Approved deposits:       %12.2f\n", summary.TotalDeposits)
			fmt.Printf("Approved withdrawals:    %12.2f\n", summary.TotalWithdrawals)
			fmt.Printf("Approved loan repayments:%12.2f\n", summary.TotalLoanRepayments)
			fmt.Printf("Pending requests:        %6d (%+d vs yesterday)\n", summary.PendingCount, summary.PendingDelta)
			fmt.Printf("Pending loan applications:%5d\n", len(services.PendingLoans(transactions)))
			return nil
		},
	}
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the session's data fresh in the background",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			refresher := services.NewRefresher(a.cfg.Client.RefreshSpec, a.set, a.client)
			if err := refresher.Start(); err != nil {
				return err
			}
			defer refresher.Stop()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			return nil
		},
	}
}
