package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/address"
	"github.com/hqh-mall/mallclient/internal/domain/apierr"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "Manage the shipping address book",
}

var addressesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/address"); err != nil {
			return err
		}

		book := a.client.Addresses(cmd.Context())
		for _, addr := range book {
			marker := " "
			if addr.IsDefault {
				marker = "*"
			}
			fmt.Printf("%s %-8d %-20s %-15s %s\n", marker, addr.AddressID, addr.RecipientName, addr.Phone, addr.FullAddress)
		}
		fmt.Printf("%d addresses\n", len(book))
		return nil
	},
}

var (
	addressRecipient string
	addressPhone     string
	addressFull      string
	addressDefault   bool
)

var addressesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a new address",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/address"); err != nil {
			return err
		}

		saved, err := a.client.AddAddress(cmd.Context(), address.CreateParams{
			RecipientName: addressRecipient,
			Phone:         addressPhone,
			FullAddress:   addressFull,
			IsDefault:     addressDefault,
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		if saved != nil {
			fmt.Printf("Address %d saved\n", saved.AddressID)
		} else {
			fmt.Println("Address saved")
		}
		return nil
	},
}

var addressesUpdateCmd = &cobra.Command{
	Use:   "update <address-id>",
	Short: "Replace a saved address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/address"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("address id must be numeric: %q", args[0])
		}

		err = a.client.UpdateAddress(cmd.Context(), address.UpdateParams{
			AddressID: id,
			CreateParams: address.CreateParams{
				RecipientName: addressRecipient,
				Phone:         addressPhone,
				FullAddress:   addressFull,
				IsDefault:     addressDefault,
			},
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Printf("Address %d updated\n", id)
		return nil
	},
}

var addressesDeleteCmd = &cobra.Command{
	Use:   "delete <address-id>",
	Short: "Remove a saved address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/address"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("address id must be numeric: %q", args[0])
		}

		if err := a.client.DeleteAddress(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}
		fmt.Printf("Address %d deleted\n", id)
		return nil
	},
}

var addressesDefaultCmd = &cobra.Command{
	Use:   "default [address-id]",
	Short: "Show or set the default address",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/address"); err != nil {
			return err
		}

		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("address id must be numeric: %q", args[0])
			}
			if err := a.client.SetDefaultAddress(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", apierr.ClientMessage(err))
			}
			fmt.Printf("Address %d is now the default\n", id)
			return nil
		}

		addr, err := a.client.DefaultAddress(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}
		if addr == nil {
			fmt.Println("No default address set")
			return nil
		}
		fmt.Printf("%-8d %-20s %-15s %s\n", addr.AddressID, addr.RecipientName, addr.Phone, addr.FullAddress)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{addressesAddCmd, addressesUpdateCmd} {
		c.Flags().StringVar(&addressRecipient, "recipient", "", "recipient name")
		c.Flags().StringVar(&addressPhone, "phone", "", "recipient phone")
		c.Flags().StringVar(&addressFull, "address", "", "full address text")
		c.Flags().BoolVar(&addressDefault, "default", false, "make this the default address")
	}
	_ = addressesAddCmd.MarkFlagRequired("recipient")
	_ = addressesAddCmd.MarkFlagRequired("phone")
	_ = addressesAddCmd.MarkFlagRequired("address")

	addressesCmd.AddCommand(addressesListCmd, addressesAddCmd, addressesUpdateCmd, addressesDeleteCmd, addressesDefaultCmd)
	rootCmd.AddCommand(addressesCmd)
}
