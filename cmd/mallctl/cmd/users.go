package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/admin"
	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/page"
	"github.com/hqh-mall/mallclient/internal/domain/user"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage accounts (admins)",
}

var (
	usersPageNum  int
	usersPageSize int
	usersType     string
	usersStatus   string
	usersAccount  string
	usersPending  bool
)

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Long: `List accounts.

Pass --pending to list merchant accounts awaiting audit; rows the backend
reports without a status show as locked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/users"); err != nil {
			return err
		}

		params := user.ListParams{
			Query:    page.Query{PageNum: usersPageNum, PageSize: usersPageSize},
			UserType: usersType,
			Status:   usersStatus,
			Account:  usersAccount,
		}

		var result page.ListPage[user.AdminUser]
		if usersPending {
			result = a.client.AdminPendingMerchants(cmd.Context(), params)
		} else {
			result = a.client.AdminUsers(cmd.Context(), params)
		}

		for _, u := range result.List {
			name := "-"
			if u.Username != nil {
				name = *u.Username
			}
			fmt.Printf("%-10d %-20s %-20s %-10s %s\n", u.UserID, u.Account, name, u.UserType, u.Status)
		}
		fmt.Printf("Page %d/%d, %d total\n", result.PageNum, result.TotalPage, result.Total)
		return nil
	},
}

var usersShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/users"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user id must be numeric: %q", args[0])
		}

		u, err := a.client.AdminUserDetail(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Printf("Account:   %s (#%d)\n", u.Account, u.UserID)
		fmt.Printf("Type:      %s\n", u.UserType)
		fmt.Printf("Status:    %s\n", u.Status)
		if u.Username != nil {
			fmt.Printf("Username:  %s\n", *u.Username)
		}
		if u.Email != nil {
			fmt.Printf("Email:     %s\n", *u.Email)
		}
		if u.Phone != nil {
			fmt.Printf("Phone:     %s\n", *u.Phone)
		}
		return nil
	},
}

var usersStatusCmd = &cobra.Command{
	Use:   "status <user-id> <status>",
	Short: "Change an account's status",
	Long: `Change an account's status: active, inactive, or locked.

Approving a pending merchant is "users status <id> active".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/users"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user id must be numeric: %q", args[0])
		}

		res, err := a.client.UpdateUserStatus(cmd.Context(), id, args[1])
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Println(res.Message)
		if res.Simulated {
			fmt.Println("(backend route missing, result simulated)")
		}
		return nil
	},
}

var usersAuditCmd = &cobra.Command{
	Use:   "audit <user-id> <status>",
	Short: "Resolve a pending merchant account",
	Long: `Resolve a pending merchant account.

Status is one of: active (approve), inactive (reject), locked (re-lock).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/users"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("user id must be numeric: %q", args[0])
		}

		res, err := a.client.AuditMerchant(cmd.Context(), admin.AuditParams{ID: id, Status: args[1]})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Println(res.Message)
		if res.Simulated {
			fmt.Println("(backend route missing, result simulated)")
		}
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the admin dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/dashboard"); err != nil {
			return err
		}

		d := a.client.AdminDashboard(cmd.Context())
		fmt.Printf("New users today:     %d\n", d.NewUserCount)
		fmt.Printf("Transactions today:  %.2f\n", d.TodayTransactionAmount)
		fmt.Printf("New orders:          %d\n", d.NewOrderCount)
		fmt.Printf("Completed orders:    %d\n", d.CompletedOrderCount)
		return nil
	},
}

func init() {
	usersListCmd.Flags().IntVar(&usersPageNum, "page", 1, "page number")
	usersListCmd.Flags().IntVar(&usersPageSize, "page-size", 10, "page size")
	usersListCmd.Flags().StringVar(&usersType, "type", "", "filter by user type")
	usersListCmd.Flags().StringVar(&usersStatus, "status", "", "filter by status")
	usersListCmd.Flags().StringVar(&usersAccount, "account", "", "filter by account")
	usersListCmd.Flags().BoolVar(&usersPending, "pending", false, "list merchants awaiting audit")

	usersCmd.AddCommand(usersListCmd, usersShowCmd, usersStatusCmd, usersAuditCmd)
	rootCmd.AddCommand(usersCmd, dashboardCmd)
}
