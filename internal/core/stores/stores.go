// Package stores implements the client-side data caches behind the desk
// console: one session store shared by six resource stores, each owning one
// backend collection. Stores are explicit objects constructed once at
// startup and passed by reference; there are no package-level singletons.
package stores

import "sacco-desk/internal/adapters/rest"

// Set bundles every store constructed for one application run.
type Set struct {
	Session      *Session
	Transactions *Transactions
	Customers    *Customers
	Employees    *Employees
	Users        *Users
	Feedbacks    *Feedbacks
	Meetings     *Meetings
}

// NewSet wires the resource stores to a shared session and API client.
func NewSet(session *Session, client *rest.Client) *Set {
	return &Set{
		Session:      session,
		Transactions: NewTransactions(session, client),
		Customers:    NewCustomers(session, client),
		Employees:    NewEmployees(session, client),
		Users:        NewUsers(session, client),
		Feedbacks:    NewFeedbacks(session, client),
		Meetings:     NewMeetings(session, client),
	}
}
