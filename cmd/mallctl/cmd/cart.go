package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/cart"
	"github.com/hqh-mall/mallclient/internal/domain/order"
	"github.com/hqh-mall/mallclient/internal/service"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Inspect the cart and check out",
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the server-side cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/cart"); err != nil {
			return err
		}

		items := a.client.CartItems(cmd.Context())
		for _, it := range items {
			marker := " "
			if it.Checked {
				marker = "*"
			}
			fmt.Printf("%s sku %-8d %-30s x%-4d %8.2f\n", marker, it.SkuID, it.Sku.SkuName, it.Quantity, it.Sku.Price)
		}
		fmt.Printf("%d items (* = checked for checkout)\n", len(items))
		return nil
	},
}

var (
	checkoutConsignee string
	checkoutPhone     string
	checkoutAddress   string
	checkoutAddressID int64
	checkoutSkip      []int64
)

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout [sku[:qty]...]",
	Short: "Place an order from the cart",
	Long: `Place an order from the cart.

Without arguments every checked cart row is ordered at its cart
quantity; name SKUs explicitly (sku or sku:qty) to order a subset, and
--skip to drop rows from the default selection. Prices are captured from
the cart at checkout time.

Shipping details come from --address-id (a saved address) or from
--consignee, --phone, and --address given directly; explicit flags
override the saved address field by field.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/checkout"); err != nil {
			return err
		}

		rows := a.client.CartItems(cmd.Context())
		if err := selectForCheckout(a.cart, rows, args); err != nil {
			return err
		}
		for _, skuID := range checkoutSkip {
			a.cart.Deselect(skuID)
		}

		selection := a.cart.Items()
		if len(selection) == 0 {
			return fmt.Errorf("nothing to order; the cart has no checked items")
		}

		consignee, phone, addr := checkoutConsignee, checkoutPhone, checkoutAddress
		if checkoutAddressID != 0 {
			saved, err := a.client.AddressByID(cmd.Context(), checkoutAddressID)
			if err != nil {
				return fmt.Errorf("%s", apierr.ClientMessage(err))
			}
			if consignee == "" {
				consignee = saved.RecipientName
			}
			if phone == "" {
				phone = saved.Phone
			}
			if addr == "" {
				addr = saved.FullAddress
			}
		}
		if consignee == "" || phone == "" || addr == "" {
			return fmt.Errorf("shipping details incomplete; pass --address-id or all of --consignee, --phone, --address")
		}

		items := make([]order.CreateItem, 0, len(selection))
		for _, sel := range selection {
			items = append(items, order.CreateItem{
				ProductID: sel.ProductID,
				SkuID:     sel.SkuID,
				Quantity:  sel.Quantity,
				Price:     sel.Price,
			})
		}

		total := a.cart.Total()
		id, err := a.client.CreateOrder(cmd.Context(), order.CreateParams{
			Consignee:  consignee,
			Phone:      phone,
			Address:    addr,
			OrderItems: items,
		})
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		a.cart.Clear()
		fmt.Printf("Order %d placed, total %.2f\n", id, total)
		return nil
	},
}

// selectForCheckout fills the checkout selection from the cart rows:
// the named sku[:qty] arguments, or every checked row when none are named.
func selectForCheckout(c *service.CartService, rows []cart.Item, args []string) error {
	bySku := make(map[int64]cart.Item, len(rows))
	for _, it := range rows {
		bySku[it.SkuID] = it
	}

	if len(args) == 0 {
		for _, it := range rows {
			if it.Checked {
				c.Select(selectionOf(it, it.Quantity))
			}
		}
		return nil
	}

	for _, arg := range args {
		spec, qtyStr, hasQty := strings.Cut(arg, ":")
		skuID, err := strconv.ParseInt(spec, 10, 64)
		if err != nil {
			return fmt.Errorf("sku must be numeric: %q", arg)
		}
		it, ok := bySku[skuID]
		if !ok {
			return fmt.Errorf("sku %d is not in the cart", skuID)
		}
		qty := it.Quantity
		if hasQty {
			qty, err = strconv.ParseInt(qtyStr, 10, 64)
			if err != nil || qty <= 0 {
				return fmt.Errorf("quantity must be a positive number: %q", arg)
			}
		}
		c.Select(selectionOf(it, qty))
	}
	return nil
}

func selectionOf(it cart.Item, qty int64) cart.Selection {
	return cart.Selection{
		ProductID: it.Sku.ProductID,
		SkuID:     it.SkuID,
		Quantity:  qty,
		Price:     it.Sku.Price,
		SkuName:   it.Sku.SkuName,
	}
}

func init() {
	cartCheckoutCmd.Flags().StringVar(&checkoutConsignee, "consignee", "", "recipient name")
	cartCheckoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "recipient phone")
	cartCheckoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "full shipping address")
	cartCheckoutCmd.Flags().Int64Var(&checkoutAddressID, "address-id", 0, "saved address to ship to")
	cartCheckoutCmd.Flags().Int64SliceVar(&checkoutSkip, "skip", nil, "cart SKUs to leave out of the order")

	cartCmd.AddCommand(cartListCmd, cartCheckoutCmd)
	rootCmd.AddCommand(cartCmd)
}
