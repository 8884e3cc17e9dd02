package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/internal/utils"
)

func newOrdersCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and progress orders",
	}
	cmd.AddCommand(
		newOrdersListCmd(console),
		newOrdersGetCmd(console),
		newOrdersStatusCmd(console),
	)
	return cmd
}

type orderPageParams struct {
	MerchantCode string
	Page         int
}

func newOrdersListCmd(console *Console) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			data, err := load(cmd.Context(),
				func(ctx context.Context, p orderPageParams, tok string) (*api.OrderPage, error) {
					return console.Services.Order.GetAll(ctx, p.MerchantCode, p.Page, tok)
				},
				&api.OrderPage{Orders: []api.Order{}},
				orderPageParams{MerchantCode: merchantCode, Page: page}, token)
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			tw := newTable(console.Out, table.Row{"ORDER", "DATE", "TOTAL", "PAID", "STATUS"})
			for _, o := range data.Orders {
				tw.AppendRow(table.Row{o.ID, day(o.CreatedAt), money(currency, o.Total), yesNo(o.IsPaid), o.OrderStatus})
			}
			tw.Render()
			pageFooter(console.Out, page, data.TotalPages, data.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newOrdersGetCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			order, err := load(cmd.Context(),
				func(ctx context.Context, orderID string, tok string) (*api.Order, error) {
					return console.Services.Order.Get(ctx, merchantCode, orderID, tok)
				}, nil, args[0], token)
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			fmt.Fprintf(console.Out, "order %s, placed %s\n", order.ID, day(order.CreatedAt))
			fmt.Fprintf(console.Out, "status:    %s\n", order.OrderStatus)
			fmt.Fprintf(console.Out, "paid:      %s", yesNo(order.IsPaid))
			if order.PaidAt != nil {
				fmt.Fprintf(console.Out, " (%s)", day(*order.PaidAt))
			}
			fmt.Fprintln(console.Out)
			fmt.Fprintf(console.Out, "delivered: %s", yesNo(order.IsDelivered))
			if order.DeliveredAt != nil {
				fmt.Fprintf(console.Out, " (%s)", day(*order.DeliveredAt))
			}
			fmt.Fprintln(console.Out)
			fmt.Fprintf(console.Out, "ship to:   %s, %s, %s (%s)\n",
				order.ShippingDetails.Address,
				order.ShippingDetails.State,
				order.ShippingDetails.Country,
				order.ShippingDetails.Phone)

			tw := newTable(console.Out, table.Row{"ITEM", "QTY", "PRICE"})
			for _, item := range order.OrderItems {
				tw.AppendRow(table.Row{item.Name, item.Quantity, money(currency, item.Price)})
			}
			tw.AppendFooter(table.Row{"TOTAL", "", money(currency, order.Total)})
			tw.Render()
			return nil
		},
	}
}

func newOrdersStatusCmd(console *Console) *cobra.Command {
	var status string
	var paid, delivered bool

	cmd := &cobra.Command{
		Use:   "status <order-id>",
		Short: "Advance an order's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			req := api.OrderStatusRequest{OrderStatus: status}
			if cmd.Flags().Changed("paid") {
				req.IsPaid = utils.Ptr(paid)
			}
			if cmd.Flags().Changed("delivered") {
				req.IsDelivered = utils.Ptr(delivered)
			}

			order, err := console.Services.Order.UpdateStatus(cmd.Context(), merchantCode, args[0], req, token)
			if err != nil {
				return err
			}

			console.Notifier.Success("", fmt.Sprintf("Order %s is now %s.", order.ID, order.OrderStatus))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "set", "", "new status (processing, shipped, delivered)")
	cmd.Flags().BoolVar(&paid, "paid", false, "mark the order as paid")
	cmd.Flags().BoolVar(&delivered, "delivered", false, "mark the order as delivered")
	_ = cmd.MarkFlagRequired("set")
	return cmd
}
