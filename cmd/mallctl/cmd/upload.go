package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
)

var uploadFolder string

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file to object storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/upload"); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()

		res, err := a.client.Upload(cmd.Context(), uploadFolder, filepath.Base(args[0]), f)
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Println(res.URL)
		return nil
	},
}

var avatarCmd = &cobra.Command{
	Use:   "avatar <user-id> <file>",
	Short: "Upload an avatar for an account (admins)",
	Args:  cobra.ExactArgs(2),
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

		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()

		res, err := a.client.UploadUserAvatar(cmd.Context(), id, filepath.Base(args[1]), f)
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

func init() {
	uploadCmd.Flags().StringVar(&uploadFolder, "folder", "misc", "destination folder inside the bucket")

	usersCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(uploadCmd)
}
