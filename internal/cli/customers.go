package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
)

func newCustomersCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Inspect your customers",
	}
	cmd.AddCommand(
		newCustomersListCmd(console),
		newCustomersGetCmd(console),
		newCustomersOrdersCmd(console),
		newCustomersDeleteCmd(console),
	)
	return cmd
}

type customerPageParams struct {
	MerchantCode string
	Page         int
}

func newCustomersListCmd(console *Console) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
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
				func(ctx context.Context, p customerPageParams, tok string) (*api.CustomerPage, error) {
					return console.Services.Customer.GetAll(ctx, p.MerchantCode, p.Page, tok)
				},
				&api.CustomerPage{Customers: []api.Customer{}},
				customerPageParams{MerchantCode: merchantCode, Page: page}, token)
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			tw := newTable(console.Out, table.Row{"USERNAME", "EMAIL", "ORDERS", "SPENT"})
			for _, c := range data.Customers {
				tw.AppendRow(table.Row{c.Username, c.Email, c.TotalOrders, money(currency, c.TotalSpent)})
			}
			tw.Render()
			pageFooter(console.Out, page, data.TotalPages, data.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newCustomersGetCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Show one customer",
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

			customer, err := load(cmd.Context(),
				func(ctx context.Context, username string, tok string) (*api.Customer, error) {
					return console.Services.Customer.Get(ctx, merchantCode, username, tok)
				}, nil, args[0], token)
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			fmt.Fprintf(console.Out, "%s <%s>\n", customer.Username, customer.Email)
			fmt.Fprintf(console.Out, "orders: %d\n", customer.TotalOrders)
			fmt.Fprintf(console.Out, "spent:  %s\n", money(currency, customer.TotalSpent))
			return nil
		},
	}
}

func newCustomersOrdersCmd(console *Console) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "orders <username>",
		Short: "List one customer's orders",
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

			data, err := load(cmd.Context(),
				func(ctx context.Context, username string, tok string) (*api.OrderPage, error) {
					return console.Services.Customer.Orders(ctx, merchantCode, username, page, tok)
				},
				&api.OrderPage{Orders: []api.Order{}},
				args[0], token)
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			tw := newTable(console.Out, table.Row{"ORDER", "DATE", "TOTAL", "STATUS"})
			for _, o := range data.Orders {
				tw.AppendRow(table.Row{o.ID, day(o.CreatedAt), money(currency, o.Total), o.OrderStatus})
			}
			tw.Render()
			pageFooter(console.Out, page, data.TotalPages, data.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newCustomersDeleteCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <customer-id>",
		Short: "Remove a customer from your store",
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

			if err := console.Services.Customer.Delete(cmd.Context(), merchantCode, args[0], token); err != nil {
				return err
			}

			console.Notifier.Success("", "Customer removed.")
			return nil
		},
	}
}
