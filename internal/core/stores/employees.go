package stores

import (
	"context"
	"net/url"
	"sync"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/query"
)

// Employees owns the employee collection (manager views). Employee lists
// are the one paginated endpoint, so the store also tracks the server's
// pagination metadata.
type Employees struct {
	Resource[domain.Employee]
	client *rest.Client

	metaMu sync.RWMutex
	meta   query.Meta
}

// NewEmployees creates the employee store.
func NewEmployees(session *Session, client *rest.Client) *Employees {
	e := &Employees{client: client}
	e.init(session, API[domain.Employee]{
		Create: client.CreateEmployee,
		Update: client.UpdateEmployee,
		Delete: client.DeleteEmployee,
	}, func(emp domain.Employee) uint { return emp.ID })
	return e
}

// Fetch replaces the collection with one page of employees and records the
// pagination metadata. Follows the same stale-completion rule as every
// other fetch.
func (e *Employees) Fetch(ctx context.Context, filter domain.EmployeeFilter) error {
	values := filter.Values()
	if values.Get("per_page") == "" {
		values.Set("per_page", "10")
	}
	if values.Get("page") == "" {
		values.Set("page", "1")
	}

	token, seq := e.begin()
	items, meta, err := e.fetchPage(ctx, token, values)
	applied, err := e.complete(seq, items, err)
	if applied {
		e.metaMu.Lock()
		e.meta = meta
		e.metaMu.Unlock()
	}
	return err
}

func (e *Employees) fetchPage(ctx context.Context, token string, values url.Values) ([]domain.Employee, query.Meta, error) {
	return e.client.Employees(ctx, token, values)
}

// Meta returns the pagination metadata of the last applied fetch.
func (e *Employees) Meta() query.Meta {
	e.metaMu.RLock()
	defer e.metaMu.RUnlock()
	return e.meta
}

// Add creates an employee record and appends the created record.
func (e *Employees) Add(ctx context.Context, payload map[string]interface{}) (*domain.Employee, error) {
	return e.create(ctx, payload)
}

// Update shallow-merges the patch into the matching cached record after a
// successful write.
func (e *Employees) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	return e.update(ctx, id, patch)
}

// Delete removes the employee from the backend and the cache.
func (e *Employees) Delete(ctx context.Context, id uint) error {
	return e.delete(ctx, id)
}
