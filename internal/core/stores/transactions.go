package stores

import (
	"context"
	"fmt"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/core/domain"
)

// Transactions owns the transaction collection. It is the richest store:
// the full filter set, server-driven status transitions and customer money
// requests all live here.
type Transactions struct {
	Resource[domain.Transaction]
	client *rest.Client
}

// NewTransactions creates the transaction store.
func NewTransactions(session *Session, client *rest.Client) *Transactions {
	t := &Transactions{client: client}
	t.init(session, API[domain.Transaction]{
		Fetch: client.Transactions,
	}, func(tx domain.Transaction) uint { return tx.ID })
	return t
}

// Fetch replaces the collection with the transactions matching the filter.
func (t *Transactions) Fetch(ctx context.Context, filter domain.TransactionFilter) error {
	return t.fetch(ctx, filter.Values())
}

// Process requests a status transition (approve, reject, or a committee
// recommendation) and reflects the server's returned record. Concurrent
// calls for the same id are an accepted race: the server is the arbiter
// and the store shows whichever response arrived last.
func (t *Transactions) Process(ctx context.Context, id uint, action string) error {
	switch action {
	case domain.ActionApprove, domain.ActionReject,
		domain.ActionRecommendApproval, domain.ActionRecommendRejection:
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}

	token := t.session.Token()
	updated, err := t.client.ProcessTransaction(ctx, token, id, action)
	if err != nil {
		return err
	}
	t.replaceRecord(*updated)
	return nil
}

// Submit files a customer money request and appends the created
// transaction to the collection.
func (t *Transactions) Submit(ctx context.Context, req domain.MoneyRequest) (*domain.Transaction, error) {
	token := t.session.Token()
	created, err := t.client.SubmitMoneyRequest(ctx, token, req)
	if err != nil {
		return nil, err
	}
	if created != nil && created.ID != 0 {
		t.append(*created)
	}
	return created, nil
}
