package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/internal/utils"
)

func newTaxesCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxes",
		Short: "Manage tax rates",
	}
	cmd.AddCommand(
		newTaxesListCmd(console),
		newTaxesCreateCmd(console),
		newTaxesUpdateCmd(console),
		newTaxesDeleteCmd(console),
	)
	return cmd
}

func newTaxesListCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tax rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			taxes, err := load(cmd.Context(),
				func(ctx context.Context, code string, tok string) ([]api.Tax, error) {
					return console.Services.Tax.GetAll(ctx, code, tok)
				}, []api.Tax{}, merchantCode, token)
			if err != nil {
				return err
			}

			tw := newTable(console.Out, table.Row{"ID", "STATE", "COUNTRY", "RATE", "STATUS"})
			for _, t := range taxes {
				tw.AppendRow(table.Row{
					t.ID,
					t.Address.State,
					t.Address.Country,
					fmt.Sprintf("%.2f %%", t.Rate.StandardRate),
					activeBadge(t.Enabled),
				})
			}
			tw.Render()
			return nil
		},
	}
}

func taxFlags(cmd *cobra.Command, req *api.TaxRequest) {
	cmd.Flags().StringVar(&req.Address.State, "state", "", "state the rate applies to")
	cmd.Flags().StringVar(&req.Address.Country, "country", "", "country the rate applies to")
	cmd.Flags().Float64Var(&req.Rate.StandardRate, "rate", 0, "standard rate percentage")
}

func newTaxesCreateCmd(console *Console) *cobra.Command {
	var req api.TaxRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tax rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			if _, err := console.Services.Tax.Create(cmd.Context(), merchantCode, req, token); err != nil {
				return err
			}

			console.Notifier.Success("", "Tax rate created.")
			return nil
		},
	}

	taxFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("country")
	return cmd
}

func newTaxesUpdateCmd(console *Console) *cobra.Command {
	var req api.TaxRequest
	var enabled bool

	cmd := &cobra.Command{
		Use:   "update <tax-id>",
		Short: "Update a tax rate",
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
			if cmd.Flags().Changed("enabled") {
				req.Enabled = utils.Ptr(enabled)
			}

			if _, err := console.Services.Tax.Update(cmd.Context(), merchantCode, args[0], req, token); err != nil {
				return err
			}

			console.Notifier.Success("", "Tax rate updated.")
			return nil
		},
	}

	taxFlags(cmd, &req)
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the rate is applied at checkout")
	return cmd
}

func newTaxesDeleteCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <tax-id>",
		Short: "Delete a tax rate",
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

			if err := console.Services.Tax.Delete(cmd.Context(), merchantCode, args[0], token); err != nil {
				return err
			}

			console.Notifier.Success("", "Tax rate deleted.")
			return nil
		},
	}
}

func newShippingCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipping",
		Short: "Manage shipping rates",
	}
	cmd.AddCommand(
		newShippingListCmd(console),
		newShippingCreateCmd(console),
		newShippingUpdateCmd(console),
		newShippingDeleteCmd(console),
	)
	return cmd
}

func newShippingListCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shipping rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			rates, err := load(cmd.Context(),
				func(ctx context.Context, code string, tok string) ([]api.ShippingRate, error) {
					return console.Services.Shipping.GetAll(ctx, code, tok)
				}, []api.ShippingRate{}, merchantCode, token)
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			tw := newTable(console.Out, table.Row{"ID", "STATE", "COUNTRY", "FEE"})
			for _, r := range rates {
				tw.AppendRow(table.Row{r.ID, r.State, r.Country, money(currency, r.Fee)})
			}
			tw.Render()
			return nil
		},
	}
}

func shippingFlags(cmd *cobra.Command, req *api.ShippingRequest) {
	cmd.Flags().StringVar(&req.State, "state", "", "state the fee applies to")
	cmd.Flags().StringVar(&req.Country, "country", "", "country the fee applies to")
	cmd.Flags().Float64Var(&req.Fee, "fee", 0, "delivery fee")
}

func newShippingCreateCmd(console *Console) *cobra.Command {
	var req api.ShippingRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shipping rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			if _, err := console.Services.Shipping.Create(cmd.Context(), merchantCode, req, token); err != nil {
				return err
			}

			console.Notifier.Success("", "Shipping rate created.")
			return nil
		},
	}

	shippingFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("fee")
	return cmd
}

func newShippingUpdateCmd(console *Console) *cobra.Command {
	var req api.ShippingRequest

	cmd := &cobra.Command{
		Use:   "update <shipping-id>",
		Short: "Update a shipping rate",
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

			if _, err := console.Services.Shipping.Update(cmd.Context(), merchantCode, args[0], req, token); err != nil {
				return err
			}

			console.Notifier.Success("", "Shipping rate updated.")
			return nil
		},
	}

	shippingFlags(cmd, &req)
	return cmd
}

func newShippingDeleteCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <shipping-id>",
		Short: "Delete a shipping rate",
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

			if err := console.Services.Shipping.Delete(cmd.Context(), merchantCode, args[0], token); err != nil {
				return err
			}

			console.Notifier.Success("", "Shipping rate deleted.")
			return nil
		},
	}
}
