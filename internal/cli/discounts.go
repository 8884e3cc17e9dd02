package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/internal/utils"
)

func newDiscountsCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discounts",
		Short: "Manage discount codes",
	}
	cmd.AddCommand(
		newDiscountsListCmd(console),
		newDiscountsCreateCmd(console),
		newDiscountsUpdateCmd(console),
		newDiscountsDeleteCmd(console),
	)
	return cmd
}

func newDiscountsListCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List discount codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			discounts, err := load(cmd.Context(),
				func(ctx context.Context, code string, tok string) ([]api.Discount, error) {
					return console.Services.Discount.GetAll(ctx, code, tok)
				}, []api.Discount{}, merchantCode, token)
			if err != nil {
				return err
			}

			tw := newTable(console.Out, table.Row{"CODE", "VALUE", "QTY", "STARTS", "ENDS", "STATUS"})
			for _, d := range discounts {
				tw.AppendRow(table.Row{
					d.DiscountCode,
					fmt.Sprintf("%.0f %%", d.DiscountValue),
					d.Quantity,
					day(d.StartDate),
					day(d.EndDate),
					activeBadge(d.Enabled),
				})
			}
			tw.Render()
			return nil
		},
	}
}

func discountFlags(cmd *cobra.Command, req *api.DiscountRequest, start, end *string) {
	cmd.Flags().StringVar(&req.DiscountCode, "code", "", "discount code")
	cmd.Flags().Float64Var(&req.DiscountValue, "value", 0, "percentage off")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 0, "number of redemptions")
	cmd.Flags().StringVar(start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(end, "end", "", "end date (YYYY-MM-DD)")
}

func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	return &t, nil
}

func newDiscountsCreateCmd(console *Console) *cobra.Command {
	var req api.DiscountRequest
	var start, end string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a discount code",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}
			if req.StartDate, err = parseDateFlag(start); err != nil {
				return err
			}
			if req.EndDate, err = parseDateFlag(end); err != nil {
				return err
			}

			discount, err := console.Services.Discount.Create(cmd.Context(), merchantCode, req, token)
			if err != nil {
				return err
			}

			console.Notifier.Success("", fmt.Sprintf("Discount %s created.", discount.DiscountCode))
			return nil
		},
	}

	discountFlags(cmd, &req, &start, &end)
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newDiscountsUpdateCmd(console *Console) *cobra.Command {
	var req api.DiscountRequest
	var start, end string
	var enabled bool

	cmd := &cobra.Command{
		Use:   "update <discount-id>",
		Short: "Update a discount code",
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
			if req.StartDate, err = parseDateFlag(start); err != nil {
				return err
			}
			if req.EndDate, err = parseDateFlag(end); err != nil {
				return err
			}
			if cmd.Flags().Changed("enabled") {
				req.Enabled = utils.Ptr(enabled)
			}

			discount, err := console.Services.Discount.Update(cmd.Context(), merchantCode, args[0], req, token)
			if err != nil {
				return err
			}

			console.Notifier.Success("", fmt.Sprintf("Discount %s updated.", discount.DiscountCode))
			return nil
		},
	}

	discountFlags(cmd, &req, &start, &end)
	cmd.Flags().BoolVar(&enabled, "enabled", true, "whether the code can be redeemed")
	return cmd
}

func newDiscountsDeleteCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <discount-id>",
		Short: "Delete a discount code",
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

			if err := console.Services.Discount.Delete(cmd.Context(), merchantCode, args[0], token); err != nil {
				return err
			}

			console.Notifier.Success("", "Discount deleted.")
			return nil
		},
	}
}
