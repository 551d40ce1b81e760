package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sacco-desk/internal/core/domain"
)

// parseFields turns key=value args into an update patch. Keys are the wire
// field names (name, email, phone, ...).
func parseFields(args []string) (map[string]interface{}, error) {
	patch := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		patch[key] = value
	}
	return patch, nil
}

func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage member accounts",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleAccountant); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Customers.Fetch(ctx, domain.CustomerFilter{Search: search}); err != nil {
				return renderErr(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tACCOUNT\tSAVING\tLOAN\tPHONE")
			for _, c := range a.set.Customers.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%s\n",
					c.ID, c.Name, c.AccountNo, c.SavingBalance, c.LoanBalance, c.Phone)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&search, "search", "", "search by name, account number or email")

	var name, email, phone, accountNo string
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a new member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleAccountant); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			customer, err := a.set.Customers.Register(ctx, map[string]interface{}{
				"name":       name,
				"email":      email,
				"phone":      phone,
				"account_no": accountNo,
			})
			if err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Member registered (id %d, account %s)\n", customer.ID, customer.AccountNo)
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "member name")
	register.Flags().StringVar(&email, "email", "", "email")
	register.Flags().StringVar(&phone, "phone", "", "phone")
	register.Flags().StringVar(&accountNo, "account-no", "", "account number")
	register.MarkFlagRequired("name")
	register.MarkFlagRequired("account-no")

	update := &cobra.Command{
		Use:   "update <id> key=value ...",
		Short: "Update member fields",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleAccountant); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := parseFields(args[1:])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Customers.Update(ctx, id, patch); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Member %d updated\n", id)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleAccountant); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Customers.Delete(ctx, id); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Member %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, register, update, del)
	return cmd
}

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Manage employees",
	}

	var filter domain.EmployeeFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List employees (paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleManager); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Employees.Fetch(ctx, filter); err != nil {
				return renderErr(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPOSITION\tSALARY\tEMAIL")
			for _, e := range a.set.Employees.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n", e.ID, e.Name, e.Position, e.Salary, e.Email)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			meta := a.set.Employees.Meta()
			fmt.Printf("page %d/%d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
			return nil
		},
	}
	list.Flags().StringVar(&filter.Search, "search", "", "search by name or email")
	list.Flags().StringVar(&filter.Position, "position", "", "filter by position")
	list.Flags().IntVar(&filter.Page, "page", 0, "page number")
	list.Flags().IntVar(&filter.PerPage, "per-page", 0, "page size")

	var name, email, phone, position string
	var salary float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleManager); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			employee, err := a.set.Employees.Add(ctx, map[string]interface{}{
				"name":     name,
				"email":    email,
				"phone":    phone,
				"position": position,
				"salary":   salary,
			})
			if err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Employee added (id %d)\n", employee.ID)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "employee name")
	add.Flags().StringVar(&email, "email", "", "email")
	add.Flags().StringVar(&phone, "phone", "", "phone")
	add.Flags().StringVar(&position, "position", "", "position")
	add.Flags().Float64Var(&salary, "salary", 0, "monthly salary")
	add.MarkFlagRequired("name")
	add.MarkFlagRequired("position")
	add.MarkFlagRequired("salary")

	update := &cobra.Command{
		Use:   "update <id> key=value ...",
		Short: "Update employee fields",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleManager); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := parseFields(args[1:])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Employees.Update(ctx, id, patch); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Employee %d updated\n", id)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleManager); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Employees.Delete(ctx, id); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Employee %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage login accounts (admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Users.Fetch(ctx); err != nil {
				return renderErr(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tEMAIL")
			for _, u := range a.set.Users.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Role, u.Email)
			}
			return w.Flush()
		},
	}

	var name, username, email, role, password string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			user, err := a.set.Users.Add(ctx, map[string]interface{}{
				"name":     name,
				"username": username,
				"email":    email,
				"role":     role,
				"password": password,
			})
			if err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Account created (id %d, role %s)\n", user.ID, user.Role)
			return nil
		},
	}
	add.Flags().StringVar(&name, "name", "", "full name")
	add.Flags().StringVar(&username, "username", "", "username")
	add.Flags().StringVar(&email, "email", "", "email")
	add.Flags().StringVar(&role, "role", string(domain.RoleCustomer), "role")
	add.Flags().StringVar(&password, "password", "", "initial password")
	add.MarkFlagRequired("username")
	add.MarkFlagRequired("password")

	update := &cobra.Command{
		Use:   "update <id> key=value ...",
		Short: "Update account fields",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			patch, err := parseFields(args[1:])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Users.Update(ctx, id, patch); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Account %d updated\n", id)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Users.Delete(ctx, id); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Account %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, add, update, del)
	return cmd
}

func newFeedbackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Customer feedback and staff responses",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Feedbacks.Fetch(ctx); err != nil {
				return renderErr(err)
			}
			for _, f := range a.set.Feedbacks.Items() {
				fmt.Printf("#%d [%s] %s\n", f.ID, f.CreatedAt.Format("2006-01-02"), f.Subject)
				fmt.Printf("    %s\n", f.Message)
				if f.Response != "" {
					fmt.Printf("    ↳ %s\n", f.Response)
				}
			}
			return nil
		},
	}

	var subject, message string
	send := &cobra.Command{
		Use:   "send",
		Short: "Send feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleCustomer); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			feedback, err := a.set.Feedbacks.Send(ctx, subject, message)
			if err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Feedback sent (id %d)\n", feedback.ID)
			return nil
		},
	}
	send.Flags().StringVar(&subject, "subject", "", "subject line")
	send.Flags().StringVar(&message, "message", "", "feedback text")
	send.MarkFlagRequired("message")

	respond := &cobra.Command{
		Use:   "respond <id> <text>",
		Short: "Respond to a feedback entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleManager, domain.RoleAccountant); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Feedbacks.Respond(ctx, id, strings.Join(args[1:], " ")); err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Response recorded on feedback %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, send, respond)
	return cmd
}

func newMeetingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Association meetings",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List scheduled meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			if err := a.set.Meetings.Fetch(ctx); err != nil {
				return renderErr(err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTIME\tTITLE\tLOCATION")
			for _, m := range a.set.Meetings.Items() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Date, m.Time, m.Title, m.Location)
			}
			return w.Flush()
		},
	}

	var title, date, timeOfDay, location, agenda string
	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a meeting",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole(domain.RoleManager); err != nil {
				return err
			}
			ctx, cancel := a.ctx()
			defer cancel()
			meeting, err := a.set.Meetings.Add(ctx, map[string]interface{}{
				"title":    title,
				"date":     date,
				"time":     timeOfDay,
				"location": location,
				"agenda":   agenda,
			})
			if err != nil {
				return renderErr(err)
			}
			fmt.Printf("✅ Meeting scheduled (id %d, %s %s)\n", meeting.ID, meeting.Date, meeting.Time)
			return nil
		},
	}
	schedule.Flags().StringVar(&title, "title", "", "meeting title")
	schedule.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	schedule.Flags().StringVar(&timeOfDay, "time", "", "time (HH:MM)")
	schedule.Flags().StringVar(&location, "location", "", "location")
	schedule.Flags().StringVar(&agenda, "agenda", "", "agenda")
	schedule.MarkFlagRequired("title")
	schedule.MarkFlagRequired("date")

	cmd.AddCommand(list, schedule)
	return cmd
}
