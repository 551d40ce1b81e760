package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sacco-desk/internal/core/domain"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state", "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadEmpty(t *testing.T) {
	store := openStore(t)

	_, _, _, err := store.Load()
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := openStore(t)

	user := &domain.UserProfile{ID: 7, Name: "Feven Masresha", Username: "feven", Role: domain.RoleCustomer}
	require.NoError(t, store.Save(user, "token-1", domain.RoleCustomer))

	got, token, role, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, user.Username, got.Username)
	require.Equal(t, "token-1", token)
	require.Equal(t, domain.RoleCustomer, role)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Save(&domain.UserProfile{ID: 1, Username: "first"}, "t1", domain.RoleCustomer))
	require.NoError(t, store.Save(&domain.UserProfile{ID: 2, Username: "second"}, "t2", domain.RoleManager))

	got, token, role, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, uint(2), got.ID)
	require.Equal(t, "t2", token)
	require.Equal(t, domain.RoleManager, role)
}

func TestClearIsIdempotent(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Save(&domain.UserProfile{ID: 1}, "t", domain.RoleAdmin))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	_, _, _, err := store.Load()
	require.ErrorIs(t, err, domain.ErrNoSession)
}
