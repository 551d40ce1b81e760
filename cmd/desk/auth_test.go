package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/config"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/core/stores"
)

// newTestApp wires an app against a fake backend with an in-memory session.
func newTestApp(t *testing.T, handler http.Handler) *app {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session, err := stores.NewSession(nil)
	require.NoError(t, err)
	client := rest.NewClient(server.URL, 5*time.Second)

	return &app{
		cfg: &config.Config{
			AppMode: "dev",
			Client:  config.ClientConfig{APIBaseURL: server.URL, Timeout: 5 * time.Second},
		},
		client: client,
		set:    stores.NewSet(session, client),
	}
}

// feedStdin replaces stdin with a pipe holding the given input for the
// duration of the test, so password prompts read scripted lines.
func feedStdin(t *testing.T, input string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		r.Close()
	})
}

func TestLoginCommandPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "feven", body["username"])
		require.Equal(t, "secret123", body["password"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "issued-token",
			"user":  domain.UserProfile{ID: 5, Name: "Feven Masresha", Username: "feven", Role: domain.RoleCustomer},
		})
	})
	a := newTestApp(t, mux)
	feedStdin(t, "secret123\n")

	cmd := newLoginCmd(a)
	cmd.SetArgs([]string{"--username", "feven"})
	require.NoError(t, cmd.Execute())

	require.True(t, a.set.Session.Authenticated())
	require.Equal(t, "issued-token", a.set.Session.Token())
	require.Equal(t, domain.RoleCustomer, a.set.Session.Role())
	require.Equal(t, "feven", a.set.Session.User().Username)
}

func TestWhoamiRefreshRehydratesProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(domain.UserProfile{
			ID: 5, Name: "Feven M. (updated)", Username: "feven", Role: domain.RoleCustomer,
		})
	})
	a := newTestApp(t, mux)
	require.NoError(t, a.set.Session.SetAuthData(
		&domain.UserProfile{ID: 5, Name: "Feven Masresha", Username: "feven", Role: domain.RoleCustomer}, "tok"))

	cmd := newWhoamiCmd(a)
	cmd.SetArgs([]string{"--refresh"})
	require.NoError(t, cmd.Execute())

	// Fresh profile is in the session, credential untouched.
	require.Equal(t, "Feven M. (updated)", a.set.Session.User().Name)
	require.Equal(t, "tok", a.set.Session.Token())
}

func TestWhoamiRefreshRequiresLogin(t *testing.T) {
	a := newTestApp(t, http.NewServeMux())

	cmd := newWhoamiCmd(a)
	cmd.SetArgs([]string{"--refresh"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrNotAuthenticated)
}
