package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/user"
	"github.com/hqh-mall/mallclient/internal/port/outbound"
)

var (
	loginAccount  string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	Long: `Authenticate against the backend and persist the session locally.

The token and identity are stored in the state directory, so subsequent
mallctl invocations reuse the session until it expires or you log out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		a.nav.Enter("/login")

		creds, err := a.client.Login(cmd.Context(), user.LoginParams{
			Account:  loginAccount,
			Password: loginPassword,
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		if err := a.sessions.Establish(creds); err != nil {
			// The login itself worked; a persistence failure only costs
			// session reuse across invocations.
			a.logger.Warn("session will not survive this process", "error", err)
		}

		fmt.Printf("Logged in as %s (%s)\n", creds.Username, creds.UserType)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		a.nav.Enter("/logout")

		if !a.sessions.IsActive() {
			fmt.Println("Not logged in")
			return nil
		}

		// Best effort server side; the local session goes regardless.
		if err := a.client.Logout(cmd.Context()); err != nil && !apierr.IsUnauthenticated(err) {
			a.logger.Warn("server-side logout failed", "error", err)
		}
		a.sessions.Evict(outbound.ReasonLogout)
		a.shops.Reset()
		a.cart.Clear()

		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()

		id := a.sessions.Identity()
		if !a.sessions.IsActive() || id == nil {
			fmt.Println("Not logged in")
			return nil
		}

		fmt.Printf("Account:   %s\n", id.Account)
		fmt.Printf("Username:  %s\n", id.Username)
		fmt.Printf("User type: %s\n", id.UserType)
		return nil
	},
}

var registerAccount, registerPassword, registerEmail string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new customer account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		a.nav.Enter("/register")

		err = a.client.Register(cmd.Context(), user.RegisterParams{
			Account:  registerAccount,
			Password: registerPassword,
			Email:    registerEmail,
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Printf("Account %s created, you can log in now\n", registerAccount)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginAccount, "account", "", "account name")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password")
	_ = loginCmd.MarkFlagRequired("account")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerAccount, "account", "", "account name")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "password")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	_ = registerCmd.MarkFlagRequired("account")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, registerCmd)
}
