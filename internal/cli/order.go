package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Place and track orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := apiClient().ListOrders(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(orders)
	},
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create <offer-detail-id>",
	Short: "Order a pricing tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detailID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		o, err := apiClient().CreateOrder(cmd.Context(), detailID)
		if err != nil {
			return err
		}
		return printJSON(o)
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <completed|cancelled>",
	Short: "Transition an order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		o, err := apiClient().UpdateOrderStatus(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}
		return printJSON(o)
	},
}

var ordersCountCmd = &cobra.Command{
	Use:   "count <business-user-id>",
	Short: "Show in-progress and completed order counts for a business user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		c := apiClient()
		inProgress, err := c.OrderCount(cmd.Context(), id)
		if err != nil {
			return err
		}
		completed, err := c.CompletedOrderCount(cmd.Context(), id)
		if err != nil {
			return err
		}

		printf("in_progress: %d", inProgress)
		printf("completed:   %d", completed)
		return nil
	},
}

func init() {
	ordersCmd.AddCommand(ordersListCmd, ordersCreateCmd, ordersStatusCmd, ordersCountCmd)
	rootCmd.AddCommand(ordersCmd)
}
