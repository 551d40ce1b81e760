package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sacco-desk/internal/adapters/persistence/snapshot"
	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/config"
	"sacco-desk/internal/core/domain"
	"sacco-desk/internal/core/stores"
)

// app bundles everything a command needs: configuration, the API client,
// the session and the resource stores. Built once per invocation.
type app struct {
	cfg      *config.Config
	client   *rest.Client
	snapshot *snapshot.Store
	set      *stores.Set
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	snap, err := snapshot.Open(filepath.Join(cfg.Client.StateDir, "session.db"))
	if err != nil {
		return nil, fmt.Errorf("open session snapshot: %w", err)
	}

	client := rest.NewClient(cfg.Client.APIBaseURL, cfg.Client.Timeout)
	session, err := stores.NewSession(snap)
	if err != nil {
		snap.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &app{
		cfg:      cfg,
		client:   client,
		snapshot: snap,
		set:      stores.NewSet(session, client),
	}, nil
}

func (a *app) close() {
	if a.snapshot != nil {
		a.snapshot.Close()
	}
}

// ctx returns a request context bounded by the configured API timeout.
func (a *app) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.Client.Timeout)
}

// requireAuth fails fast before a command hits the API without a credential.
func (a *app) requireAuth() error {
	if !a.set.Session.Authenticated() {
		return fmt.Errorf("%w (run: desk login)", domain.ErrNotAuthenticated)
	}
	return nil
}

// requireRole restricts a command to the given roles. Admin always passes.
func (a *app) requireRole(roles ...domain.Role) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	current := a.set.Session.Role()
	if current == domain.RoleAdmin {
		return nil
	}
	for _, role := range roles {
		if current == role {
			return nil
		}
	}
	return fmt.Errorf("command requires role %v, you are %q", roles, current)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "desk",
		Short:         "Savings and credit association desk console",
		Long:          "Terminal console for the savings and credit association: sessions, transactions, members, employees, feedback and meetings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newPasswdCmd(a),
		newProfilePictureCmd(a),
		newDashboardCmd(a),
		newWatchCmd(a),
		newTransactionsCmd(a),
		newDepositCmd(a),
		newWithdrawCmd(a),
		newRepayCmd(a),
		newApplyLoanCmd(a),
		newCustomersCmd(a),
		newEmployeesCmd(a),
		newUsersCmd(a),
		newFeedbackCmd(a),
		newMeetingsCmd(a),
	)
	return root
}

func main() {
	a, err := newApp()
	if err != nil {
		log.Fatalf("❌ Failed to start: %v", err)
	}
	defer a.close()

	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
