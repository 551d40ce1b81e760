package stores

import (
	"context"
	"net/url"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/core/domain"
)

// Users owns the account collection (admin views).
type Users struct {
	Resource[domain.User]
}

// NewUsers creates the user store.
func NewUsers(session *Session, client *rest.Client) *Users {
	u := &Users{}
	u.init(session, API[domain.User]{
		Fetch: func(ctx context.Context, token string, _ url.Values) ([]domain.User, error) {
			return client.Users(ctx, token)
		},
		Create: client.CreateUser,
		Update: client.UpdateUser,
		Delete: client.DeleteUser,
	}, func(user domain.User) uint { return user.ID })
	return u
}

// Fetch replaces the collection with the full account list.
func (u *Users) Fetch(ctx context.Context) error {
	return u.fetch(ctx, nil)
}

// Add provisions a new account and appends the created record.
func (u *Users) Add(ctx context.Context, payload map[string]interface{}) (*domain.User, error) {
	return u.create(ctx, payload)
}

// Update shallow-merges the patch into the matching cached record after a
// successful write.
func (u *Users) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	return u.update(ctx, id, patch)
}

// Delete removes the account from the backend and the cache.
func (u *Users) Delete(ctx context.Context, id uint) error {
	return u.delete(ctx, id)
}
