// Package cmd provides the CLI commands for mallctl.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mallctl",
	Short: "mallctl - mall platform client",
	Long: `mallctl is a command-line client for the mall platform backend.

It talks to the same API the web frontends use, tolerates the backend's
known payload quirks, and keeps your session across invocations.

Quick start:
  1. Point it at a backend: export MALLCTL_API_BASE_URL=https://mall.example.com
  2. Log in: mallctl login --account you --password pw
  3. Explore: mallctl shop show, mallctl orders list, ...

Configuration:
  Config is loaded from mallctl.yaml in the current directory,
  $HOME/.mallctl/, or /etc/mallctl/.

  Environment variables can override config values with the MALLCTL_ prefix.
  Example: MALLCTL_API_TIMEOUT=30s

Commands:
  login       Log in and persist the session
  logout      Log out and clear the session
  whoami      Show the current session
  shop        Manage your shop (merchants)
  products    Manage your products (merchants)
  orders      List and manage orders
  users       Manage accounts (admins)
  dashboard   Show the admin dashboard
  config      Inspect the effective configuration
  version     Print version information`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./mallctl.yaml)")
}

func initConfig() {
	config.InitViper(cfgFile)
}
