package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/internal/utils"
)

func newProductsCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalogue",
	}
	cmd.AddCommand(
		newProductsListCmd(console),
		newProductsGetCmd(console),
		newProductsAddCmd(console),
		newProductsUpdateCmd(console),
		newProductsDeleteCmd(console),
	)
	return cmd
}

type productPageParams struct {
	MerchantCode string
	Page         int
}

func newProductsListCmd(console *Console) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			data, err := load(cmd.Context(),
				func(ctx context.Context, p productPageParams, _ string) (*api.ProductPage, error) {
					return console.Services.Product.GetAll(ctx, p.MerchantCode, p.Page)
				},
				&api.ProductPage{Products: []api.Product{}},
				productPageParams{MerchantCode: merchantCode, Page: page}, "")
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			tw := newTable(console.Out, table.Row{"PRODUCT", "PRICE", "STOCK", "STATUS"})
			for _, p := range data.Products {
				tw.AppendRow(table.Row{p.Name, money(currency, p.Price), yesNo(p.InStock), activeBadge(p.IsActive)})
			}
			tw.Render()
			pageFooter(console.Out, page, data.TotalPages, data.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newProductsGetCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "get <slug>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			product, err := load(cmd.Context(),
				func(ctx context.Context, slug string, _ string) (*api.Product, error) {
					return console.Services.Product.Get(ctx, merchantCode, slug)
				}, nil, args[0], "")
			if err != nil {
				return err
			}

			currency := console.Session.Merchant().Currency
			fmt.Fprintf(console.Out, "%s (%s)\n", product.Name, product.Slug)
			fmt.Fprintf(console.Out, "price:    %s\n", money(currency, product.Price))
			fmt.Fprintf(console.Out, "quantity: %d\n", product.Quantity)
			fmt.Fprintf(console.Out, "category: %s\n", product.Category)
			fmt.Fprintf(console.Out, "status:   %s\n", activeBadge(product.IsActive))
			if product.Description != "" {
				fmt.Fprintf(console.Out, "\n%s\n", product.Description)
			}
			return nil
		},
	}
}

func productFlags(cmd *cobra.Command, req *api.ProductRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "product name")
	cmd.Flags().StringVar(&req.Description, "description", "", "product description")
	cmd.Flags().StringVar(&req.Image, "image", "", "image URL")
	cmd.Flags().StringVar(&req.Category, "category", "", "category name")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "unit price")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 0, "units in stock")
}

func newProductsAddCmd(console *Console) *cobra.Command {
	var req api.ProductRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			product, err := console.Services.Product.Add(cmd.Context(), merchantCode, req, token)
			if err != nil {
				return err
			}

			console.Notifier.Success("", fmt.Sprintf("Product %s added.", product.Name))
			return nil
		},
	}

	productFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newProductsUpdateCmd(console *Console) *cobra.Command {
	var req api.ProductRequest
	var active bool

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Update a product",
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
			if cmd.Flags().Changed("active") {
				req.IsActive = utils.Ptr(active)
			}

			product, err := console.Services.Product.Update(cmd.Context(), merchantCode, args[0], req, token)
			if err != nil {
				return err
			}

			console.Notifier.Success("", fmt.Sprintf("Product %s updated.", product.Name))
			return nil
		},
	}

	productFlags(cmd, &req)
	cmd.Flags().BoolVar(&active, "active", true, "whether the product is visible in the storefront")
	return cmd
}

func newProductsDeleteCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
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

			if err := console.Services.Product.Delete(cmd.Context(), merchantCode, args[0], token); err != nil {
				return err
			}

			console.Notifier.Success("", "Product deleted.")
			return nil
		},
	}
}
