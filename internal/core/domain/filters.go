package domain

import (
	"net/url"
	"strconv"

	"sacco-desk/internal/pkg/query"
)

// FilterAll is the sentinel meaning "no constraint" for select-style filters.
// It is stripped before a query string is built, same as the empty string.
const FilterAll = "all"

// TransactionFilter narrows a transaction fetch. Zero values mean
// unconstrained; FilterAll and "" are equivalent sentinels.
type TransactionFilter struct {
	TransactionType string
	Status          string
	AmountMin       string
	AmountMax       string
	Search          string
	UserID          uint
	Page            int
	PerPage         int
}

// Values encodes the filter as cleaned query parameters.
func (f TransactionFilter) Values() url.Values {
	v := url.Values{}
	query.Set(v, "transaction_type", f.TransactionType)
	query.Set(v, "status", f.Status)
	query.Set(v, "amount_min", f.AmountMin)
	query.Set(v, "amount_max", f.AmountMax)
	query.Set(v, "search", f.Search)
	if f.UserID != 0 {
		v.Set("user_id", strconv.FormatUint(uint64(f.UserID), 10))
	}
	query.SetPage(v, f.Page, f.PerPage)
	return v
}

// CustomerFilter narrows a customer fetch.
type CustomerFilter struct {
	Search  string
	Page    int
	PerPage int
}

// Values encodes the filter as cleaned query parameters.
func (f CustomerFilter) Values() url.Values {
	v := url.Values{}
	query.Set(v, "search", f.Search)
	query.SetPage(v, f.Page, f.PerPage)
	return v
}

// EmployeeFilter narrows an employee fetch.
type EmployeeFilter struct {
	Search   string
	Position string
	Page     int
	PerPage  int
}

// Values encodes the filter as cleaned query parameters.
func (f EmployeeFilter) Values() url.Values {
	v := url.Values{}
	query.Set(v, "search", f.Search)
	query.Set(v, "position", f.Position)
	query.SetPage(v, f.Page, f.PerPage)
	return v
}
