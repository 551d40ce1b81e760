package stores

import (
	"context"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/core/domain"
)

// Customers owns the customer collection (accountant views).
type Customers struct {
	Resource[domain.Customer]
}

// NewCustomers creates the customer store.
func NewCustomers(session *Session, client *rest.Client) *Customers {
	c := &Customers{}
	c.init(session, API[domain.Customer]{
		Fetch:  client.Customers,
		Create: client.RegisterCustomer,
		Update: client.UpdateCustomer,
		Delete: client.DeleteCustomer,
	}, func(cust domain.Customer) uint { return cust.ID })
	return c
}

// Fetch replaces the collection with the customers matching the filter.
func (c *Customers) Fetch(ctx context.Context, filter domain.CustomerFilter) error {
	return c.fetch(ctx, filter.Values())
}

// Register creates a customer account and appends the created record.
func (c *Customers) Register(ctx context.Context, payload map[string]interface{}) (*domain.Customer, error) {
	return c.create(ctx, payload)
}

// Update shallow-merges the patch into the matching cached record after a
// successful write.
func (c *Customers) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	return c.update(ctx, id, patch)
}

// Delete removes the customer from the backend and the cache.
func (c *Customers) Delete(ctx context.Context, id uint) error {
	return c.delete(ctx, id)
}
