package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hqh-mall/mallclient/internal/domain/admin"
	"github.com/hqh-mall/mallclient/internal/domain/apierr"
	"github.com/hqh-mall/mallclient/internal/domain/order"
	"github.com/hqh-mall/mallclient/internal/domain/page"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and manage orders",
}

var (
	ordersPageNum  int
	ordersPageSize int
	ordersStatus   string
	ordersOrderNo  string
	ordersAll      bool
	ordersMine     bool
)

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Long: `List orders.

Merchants see their shop's orders; pass --mine as a customer to list your
own orders, or --all as an admin to list every order on the platform.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/orders"); err != nil {
			return err
		}

		params := order.ListParams{
			Query:   page.Query{PageNum: ordersPageNum, PageSize: ordersPageSize},
			Status:  ordersStatus,
			OrderNo: ordersOrderNo,
		}

		var result page.ListPage[order.Order]
		switch {
		case ordersAll:
			result = a.client.AdminOrders(cmd.Context(), params)
		case ordersMine:
			result = a.client.MyOrders(cmd.Context(), params)
		default:
			result = a.client.ShopOrders(cmd.Context(), params)
		}

		printOrders(result)
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/orders"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("order id must be numeric: %q", args[0])
		}

		var o *order.Order
		if ordersAll {
			o, err = a.client.AdminOrderDetail(cmd.Context(), id)
		} else {
			o, err = a.client.ShopOrderDetail(cmd.Context(), id)
		}
		if err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}

		fmt.Printf("Order %s (#%d)\n", o.OrderNo, o.OrderID)
		fmt.Printf("  Status: %s  Total: %.2f\n", o.Status, o.TotalAmount)
		fmt.Printf("  Address: %s\n", o.ShippingAddress)
		if o.PaymentTime != nil {
			fmt.Printf("  Paid at: %s\n", *o.PaymentTime)
		}
		for _, it := range o.Items {
			fmt.Printf("  - %s / %s x%d @ %.2f\n", it.ProductName, it.SkuName, it.Quantity, it.Price)
		}
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Update an order's status (merchants)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/orders"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("order id must be numeric: %q", args[0])
		}

		if err := a.client.UpdateOrderStatus(cmd.Context(), id, args[1]); err != nil {
			return fmt.Errorf("%s", apierr.ClientMessage(err))
		}
		fmt.Printf("Order %d -> %s\n", id, args[1])
		return nil
	},
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel <order-id>",
	Short: "Cancel an order on a customer's behalf (admins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp()
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.enterAuthenticated("/orders"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("order id must be numeric: %q", args[0])
		}

		res, err := a.client.CancelOrder(cmd.Context(), admin.CancelParams{ID: id, Status: order.StatusCancelled})
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

func printOrders(result page.ListPage[order.Order]) {
	for _, o := range result.List {
		fmt.Printf("%-10d %-20s %-10s %10.2f  %s\n", o.OrderID, o.OrderNo, o.Status, o.TotalAmount, o.CreateTime)
	}
	fmt.Printf("Page %d/%d, %d total\n", result.PageNum, result.TotalPage, result.Total)
}

func init() {
	ordersCmd.PersistentFlags().BoolVar(&ordersAll, "all", false, "operate on all orders (admin)")
	ordersListCmd.Flags().BoolVar(&ordersMine, "mine", false, "list your own orders (customer)")
	ordersListCmd.Flags().IntVar(&ordersPageNum, "page", 1, "page number")
	ordersListCmd.Flags().IntVar(&ordersPageSize, "page-size", 10, "page size")
	ordersListCmd.Flags().StringVar(&ordersStatus, "status", "", "filter by status")
	ordersListCmd.Flags().StringVar(&ordersOrderNo, "order-no", "", "filter by order number")

	ordersCmd.AddCommand(ordersListCmd, ordersShowCmd, ordersStatusCmd, ordersCancelCmd)
	rootCmd.AddCommand(ordersCmd)
}
