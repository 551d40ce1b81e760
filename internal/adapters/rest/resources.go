package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/pkg/query"
)

// Customers fetches the customer collection.
func (c *Client) Customers(ctx context.Context, token string, q url.Values) ([]domain.Customer, error) {
	var result struct {
		Data []domain.Customer `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/customers", token, q, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// RegisterCustomer creates a customer account (accountant operation) and
// returns the created record.
func (c *Client) RegisterCustomer(ctx context.Context, token string, payload map[string]interface{}) (*domain.Customer, error) {
	var result struct {
		Customer domain.Customer `json:"customer"`
	}
	if err := c.do(ctx, http.MethodPost, "/register-customer", token, nil, payload, &result); err != nil {
		return nil, err
	}
	return &result.Customer, nil
}

// UpdateCustomer applies a partial update to a customer record.
func (c *Client) UpdateCustomer(ctx context.Context, token string, id uint, patch map[string]interface{}) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), token, nil, patch, nil)
}

// DeleteCustomer removes a customer record.
func (c *Client) DeleteCustomer(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), token, nil, nil, nil)
}

// Employees fetches one page of the employee collection along with the
// server's pagination metadata.
func (c *Client) Employees(ctx context.Context, token string, q url.Values) ([]domain.Employee, query.Meta, error) {
	var result struct {
		Data []domain.Employee `json:"data"`
		query.Meta
	}
	if err := c.do(ctx, http.MethodGet, "/employees", token, q, nil, &result); err != nil {
		return nil, query.Meta{}, err
	}
	return result.Data, result.Meta, nil
}

// CreateEmployee creates an employee record and returns the created record.
func (c *Client) CreateEmployee(ctx context.Context, token string, payload map[string]interface{}) (*domain.Employee, error) {
	var result struct {
		Employee domain.Employee `json:"employee"`
	}
	if err := c.do(ctx, http.MethodPost, "/employees", token, nil, payload, &result); err != nil {
		return nil, err
	}
	return &result.Employee, nil
}

// UpdateEmployee applies a partial update to an employee record.
func (c *Client) UpdateEmployee(ctx context.Context, token string, id uint, patch map[string]interface{}) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), token, nil, patch, nil)
}

// DeleteEmployee removes an employee record.
func (c *Client) DeleteEmployee(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), token, nil, nil, nil)
}

// Users fetches the account list (admin operation).
func (c *Client) Users(ctx context.Context, token string) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser provisions a new account (admin operation).
func (c *Client) CreateUser(ctx context.Context, token string, payload map[string]interface{}) (*domain.User, error) {
	var result struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/signup", token, nil, payload, &result); err != nil {
		return nil, err
	}
	return &result.User, nil
}

// UpdateUser applies a partial update to an account.
func (c *Client) UpdateUser(ctx context.Context, token string, id uint, patch map[string]interface{}) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), token, nil, patch, nil)
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), token, nil, nil, nil)
}
