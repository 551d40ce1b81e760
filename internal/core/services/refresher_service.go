package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/core/stores"
)

// refreshTimeout bounds one background refresh cycle.
const refreshTimeout = 30 * time.Second

// Refresher periodically re-fetches the data a mounted dashboard would
// refetch: the transaction collection and, for customers, the two display
// balances. It only runs while a session is authenticated.
type Refresher struct {
	cron   *cron.Cron
	client *rest.Client
	set    *stores.Set
	spec   string
}

// NewRefresher creates a refresher on the given cron spec (e.g. "@every 5m").
func NewRefresher(spec string, set *stores.Set, client *rest.Client) *Refresher {
	return &Refresher{
		cron:   cron.New(),
		client: client,
		set:    set,
		spec:   spec,
	}
}

// Start schedules the refresh job.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.refresh); err != nil {
		return err
	}
	r.cron.Start()
	log.Printf("🔄 Refresher started [%s]", r.spec)
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Refresher stopped")
}

func (r *Refresher) refresh() {
	session := r.set.Session
	if !session.Authenticated() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	// Unfiltered fetch: the dashboard aggregates depend on the full window.
	if err := r.set.Transactions.Fetch(ctx, domain.TransactionFilter{}); err != nil {
		log.Printf("⚠️ Refresh transactions failed: %v", err)
	}

	if session.Role() == domain.RoleCustomer {
		balances, err := r.client.CustomerData(ctx, session.Token())
		if err != nil {
			log.Printf("⚠️ Refresh balances failed: %v", err)
			return
		}
		session.SetBalances(balances.SavingBalance, balances.LoanBalance)
	}
}
