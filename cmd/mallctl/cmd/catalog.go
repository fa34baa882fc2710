package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/product"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the product catalog",
}

var (
	catalogCategory int64
	catalogName     string
	catalogLimit    int
)

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products",
	Long: `List catalog products.

The catalog is public; no login is needed. Category filtering and name
search share the same listing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		a.nav.Enter("/home")

		products := a.client.HomeProducts(cmd.Context(), product.BrowseParams{
			CategoryID:  catalogCategory,
			ProductName: catalogName,
			Limit:       catalogLimit,
		})

		for _, p := range products {
			price := "-"
			if p.Price != nil {
				price = fmt.Sprintf("%.2f", *p.Price)
			}
			fmt.Printf("%-10d %-30s %8s  %d skus\n", p.ProductID, p.ProductName, price, len(p.Skus))
		}
		fmt.Printf("%d products\n", len(products))
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show one product with its SKUs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		a.nav.Enter("/product")

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("product id must be numeric: %q", args[0])
		}

		p, err := a.client.ProductDetail(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Printf("%s (#%d)\n", p.ProductName, p.ProductID)
		fmt.Printf("  Status: %s\n", p.Status)
		fmt.Printf("  %s\n", p.Description)
		for _, sku := range p.Skus {
			fmt.Printf("  - sku %-8d %-20s %-12s %8.2f  stock %d\n", sku.SkuID, sku.SkuName, sku.SkuType, sku.Price, sku.Stock)
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().Int64Var(&catalogCategory, "category", 0, "filter by category id")
	catalogListCmd.Flags().StringVar(&catalogName, "name", "", "filter by product name")
	catalogListCmd.Flags().IntVar(&catalogLimit, "limit", 0, "maximum number of products (backend default 18)")

	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
