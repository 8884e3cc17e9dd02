package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
)

func newMerchantCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchant",
		Short: "Manage the store profile",
	}
	cmd.AddCommand(
		newMerchantGetCmd(console),
		newMerchantCreateCmd(console),
		newMerchantUpdateCmd(console),
		newMerchantSalesCmd(console),
	)
	return cmd
}

func newMerchantGetCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the store profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}

			merchant, err := load(cmd.Context(),
				func(ctx context.Context, _ struct{}, tok string) (*api.Merchant, error) {
					return console.Services.Merchant.Get(ctx, tok)
				}, nil, struct{}{}, token)
			if err != nil {
				return err
			}
			if merchant == nil {
				fmt.Fprintln(console.Out, "no store yet")
				return nil
			}

			fmt.Fprintf(console.Out, "%s (%s)\n", merchant.MerchantName, merchant.MerchantCode)
			fmt.Fprintf(console.Out, "email:    %s\n", merchant.MerchantEmail)
			fmt.Fprintf(console.Out, "currency: %s\n", merchant.Currency)
			fmt.Fprintf(console.Out, "address:  %s\n", merchant.Address)
			return nil
		},
	}
}

func merchantFlags(cmd *cobra.Command, req *api.MerchantRequest) {
	cmd.Flags().StringVar(&req.MerchantName, "name", "", "store name")
	cmd.Flags().StringVar(&req.MerchantEmail, "email", "", "store contact email")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "ISO currency code")
	cmd.Flags().StringVar(&req.Description, "description", "", "store description")
	cmd.Flags().StringVar(&req.Address, "address", "", "store address")
}

func newMerchantCreateCmd(console *Console) *cobra.Command {
	var req api.MerchantRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create your store",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}

			merchant, err := console.Services.Merchant.Create(cmd.Context(), req, token)
			if err != nil {
				return err
			}

			console.Session.SetMerchant(merchant)
			console.Notifier.Success("", fmt.Sprintf("Store %s created.", merchant.MerchantName))
			return nil
		},
	}

	merchantFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newMerchantUpdateCmd(console *Console) *cobra.Command {
	var req api.MerchantRequest

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the store profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			current := console.Session.Merchant()
			if current == nil {
				return fmt.Errorf("no store yet, run 'sellerconsole merchant create' first")
			}

			merchant, err := console.Services.Merchant.Update(cmd.Context(), current.ID, req, token)
			if err != nil {
				return err
			}

			console.Session.SetMerchant(merchant)
			console.Notifier.Success("", "Store updated.")
			return nil
		},
	}

	merchantFlags(cmd, &req)
	return cmd
}

func newMerchantSalesCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "Show the sales summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			sales, err := load(cmd.Context(),
				func(ctx context.Context, code string, tok string) (*api.SalesSummary, error) {
					return console.Services.Merchant.Sales(ctx, code, tok)
				}, nil, merchantCode, token)
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			fmt.Fprintf(console.Out, "total sales:    %s\n", money(currency, sales.TotalSales))
			fmt.Fprintf(console.Out, "total orders:   %d\n", sales.TotalOrders)
			fmt.Fprintf(console.Out, "total products: %d\n", sales.TotalProducts)
			return nil
		},
	}
}
