package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sacco-desk/internal/adapters/rest"
)

// readPassword prompts without echoing. Falls back to a plain line read when
// stdin is not a terminal (piped input in scripts and tests).
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", err
	}
	return line, nil
}

// renderErr expands validation failures into their per-field messages.
func renderErr(err error) error {
	var verr *rest.ValidationError
	if errors.As(err, &verr) {
		var b strings.Builder
		b.WriteString(verr.Message)
		for field, messages := range verr.Fields {
			fmt.Fprintf(&b, "\n  %s: %s", field, strings.Join(messages, "; "))
		}
		return errors.New(b.String())
	}
	return err
}

func newLoginCmd(a *app) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				fmt.Print("Username: ")
				if _, err := fmt.Fscanln(os.Stdin, &username); err != nil {
					return err
				}
			}
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			ctx, cancel := a.ctx()
			defer cancel()

			result, err := a.client.Login(ctx, username, password)
			if err != nil {
				return renderErr(err)
			}
			if err := a.set.Session.SetAuthData(&result.User, result.Token); err != nil {
				return fmt.Errorf("persist session: %w", err)
			}

			fmt.Printf("✅ Logged in as %s [%s]\n", result.User.Name, result.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session locally and on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := a.set.Session.Token()
			if token != "" {
				ctx, cancel := a.ctx()
				defer cancel()
				// Server-side invalidation is best effort: the local session
				// is cleared even when the server is unreachable.
				if err := a.client.Logout(ctx, token); err != nil {
					fmt.Fprintf(os.Stderr, "⚠️ Server logout failed: %v\n", err)
				}
			}
			if err := a.set.Session.ClearAuthData(); err != nil {
				return err
			}
			fmt.Println("✅ Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if refresh {
				if err := a.requireAuth(); err != nil {
					return err
				}
				ctx, cancel := a.ctx()
				defer cancel()

				token := a.set.Session.Token()
				profile, err := a.client.Me(ctx, token)
				if err != nil {
					return renderErr(err)
				}
				if err := a.set.Session.SetAuthData(profile, token); err != nil {
					return fmt.Errorf("persist session: %w", err)
				}
			}

			user := a.set.Session.User()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s (%s)\n", user.Name, user.Username)
			fmt.Printf("  role:  %s\n", user.Role)
			fmt.Printf("  email: %s\n", user.Email)
			if user.AccountNo != "" {
				fmt.Printf("  account: %s\n", user.AccountNo)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch the profile from the server before showing it")
	return cmd
}

func newPasswdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			current, err := readPassword("Current password: ")
			if err != nil {
				return err
			}
			updated, err := readPassword("New password: ")
			if err != nil {
				return err
			}

			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.client.ChangePassword(ctx, a.set.Session.Token(), current, updated); err != nil {
				return renderErr(err)
			}
			fmt.Println("✅ Password changed")
			return nil
		},
	}
}

func newProfilePictureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-picture <file>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.ctx()
			defer cancel()
			ref, err := a.client.UploadProfilePicture(ctx, a.set.Session.Token(), filepath.Base(args[0]), data)
			if err != nil {
				return renderErr(err)
			}
			if err := a.set.Session.SetUserProfilePicture(ref); err != nil {
				return err
			}
			fmt.Printf("✅ Profile picture updated: %s\n", ref)
			return nil
		},
	}
}
