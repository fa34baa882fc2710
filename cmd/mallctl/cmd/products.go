package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/page"
	"github.com/hqh-mall/mallclient/internal/domain/product"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage your products (merchants)",
}

var (
	productsPageNum  int
	productsPageSize int
	productsStatus   string
	productsName     string
)

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your products",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/products"); err != nil {
			return err
		}

		result := a.client.ShopProducts(cmd.Context(), product.ListParams{
			Query:       page.Query{PageNum: productsPageNum, PageSize: productsPageSize},
			Status:      productsStatus,
			ProductName: productsName,
		})

		for _, p := range result.List {
			price := "-"
			if p.Price != nil {
				price = fmt.Sprintf("%.2f", *p.Price)
			}
			fmt.Printf("%-10d %-30s %-10s %8s  %d skus\n", p.ProductID, p.ProductName, p.Status, price, len(p.Skus))
		}
		fmt.Printf("Page %d/%d, %d total\n", result.PageNum, result.TotalPage, result.Total)
		return nil
	},
}

var (
	productAddName        string
	productAddDescription string
	productAddCategory    int64
	productAddStatus      string
)

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/products"); err != nil {
			return err
		}

		err = a.client.AddProduct(cmd.Context(), product.AddParams{
			ProductName: productAddName,
			Description: productAddDescription,
			CategoryID:  productAddCategory,
			Status:      productAddStatus,
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}
		fmt.Printf("Product %q created\n", productAddName)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "Delete a product and its SKUs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/products"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("product id must be numeric: %q", args[0])
		}

		if err := a.client.DeleteProduct(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}
		fmt.Printf("Product %d deleted\n", id)
		return nil
	},
}

var (
	skuProductID int64
	skuName      string
	skuType      string
	skuPrice     float64
	skuStock     int64
)

var productsSkuAddCmd = &cobra.Command{
	Use:   "sku-add",
	Short: "Attach a new SKU to a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/products"); err != nil {
			return err
		}

		err = a.client.AddSKU(cmd.Context(), product.AddSkuParams{
			ProductID: skuProductID,
			SkuName:   skuName,
			SkuType:   skuType,
			Price:     skuPrice,
			Stock:     skuStock,
			Status:    product.StatusOnSale,
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}
		fmt.Printf("SKU %q added to product %d\n", skuName, skuProductID)
		return nil
	},
}

var productsSkuDeleteCmd = &cobra.Command{
	Use:   "sku-delete <sku-id>",
	Short: "Remove a SKU",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/products"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("sku id must be numeric: %q", args[0])
		}

		if err := a.client.DeleteSKU(cmd.Context(), id); err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}
		fmt.Printf("SKU %d deleted\n", id)
		return nil
	},
}

func init() {
	productsListCmd.Flags().IntVar(&productsPageNum, "page", 1, "page number")
	productsListCmd.Flags().IntVar(&productsPageSize, "page-size", 10, "page size")
	productsListCmd.Flags().StringVar(&productsStatus, "status", "", "filter by status")
	productsListCmd.Flags().StringVar(&productsName, "name", "", "filter by product name")

	productsAddCmd.Flags().StringVar(&productAddName, "name", "", "product name")
	productsAddCmd.Flags().StringVar(&productAddDescription, "description", "", "product description")
	productsAddCmd.Flags().Int64Var(&productAddCategory, "category", 0, "category id")
	productsAddCmd.Flags().StringVar(&productAddStatus, "status", product.StatusOffSale, "initial status")
	_ = productsAddCmd.MarkFlagRequired("name")

	productsSkuAddCmd.Flags().Int64Var(&skuProductID, "product", 0, "product id")
	productsSkuAddCmd.Flags().StringVar(&skuName, "name", "", "sku name")
	productsSkuAddCmd.Flags().StringVar(&skuType, "type", "", "sku type")
	productsSkuAddCmd.Flags().Float64Var(&skuPrice, "price", 0, "price")
	productsSkuAddCmd.Flags().Int64Var(&skuStock, "stock", 0, "stock")
	_ = productsSkuAddCmd.MarkFlagRequired("product")
	_ = productsSkuAddCmd.MarkFlagRequired("name")

	productsCmd.AddCommand(productsListCmd, productsAddCmd, productsDeleteCmd, productsSkuAddCmd, productsSkuDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
