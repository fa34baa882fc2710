package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage your shop (merchants)",
}

var shopShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your shop profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/shop"); err != nil {
			return err
		}

		p, err := a.shops.Fetch(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		printShop(p, a.shops.LogoURL())
		return nil
	},
}

var shopUpdateName, shopUpdateDescription string

var shopUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your shop profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/shop"); err != nil {
			return err
		}

		p, err := a.shops.Update(cmd.Context(), shop.UpdateParams{
			ShopName:    shopUpdateName,
			Description: shopUpdateDescription,
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Println("Shop updated")
		printShop(p, a.shops.LogoURL())
		return nil
	},
}

var shopLogoCmd = &cobra.Command{
	Use:   "logo <file>",
	Short: "Upload a new shop logo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/shop"); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open logo file: %w", err)
		}
		defer func() { _ = f.Close() }()

		p, err := a.shops.UploadLogo(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Printf("Logo uploaded: %s\n", p.LogoPath)
		return nil
	},
}

var shopStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your shop's statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/shop"); err != nil {
			return err
		}

		s := a.client.ShopStatistics(cmd.Context())
		fmt.Printf("Shop:              %s (#%d)\n", s.ShopName, s.ShopID)
		fmt.Printf("Products:          %d (%d on sale)\n", s.ProductCount, s.OnSaleProductCount)
		fmt.Printf("Orders:            %d (%d pending)\n", s.OrderCount, s.PendingOrderCount)
		fmt.Printf("Total sales:       %.2f\n", s.TotalSales)
		return nil
	},
}

func printShop(p *shop.Profile, logoURL string) {
	fmt.Printf("Shop:        %s (#%d)\n", p.ShopName, p.ShopID)
	fmt.Printf("Status:      %s\n", p.Status)
	fmt.Printf("Description: %s\n", p.Description)
	fmt.Printf("Logo:        %s\n", logoURL)
}

func init() {
	shopUpdateCmd.Flags().StringVar(&shopUpdateName, "name", "", "new shop name")
	shopUpdateCmd.Flags().StringVar(&shopUpdateDescription, "description", "", "new shop description")

	shopCmd.AddCommand(shopShowCmd, shopUpdateCmd, shopLogoCmd, shopStatsCmd)
	rootCmd.AddCommand(shopCmd)
}
