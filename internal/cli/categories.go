package cli

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
)

func newCategoriesCmd(console *Console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage product categories",
	}
	cmd.AddCommand(
		newCategoriesListCmd(console),
		newCategoriesCreateCmd(console),
		newCategoriesUpdateCmd(console),
		newCategoriesDeleteCmd(console),
	)
	return cmd
}

func newCategoriesListCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			categories, err := load(cmd.Context(),
				func(ctx context.Context, code string, _ string) ([]api.Category, error) {
					return console.Services.Category.GetAll(ctx, code)
				}, []api.Category{}, merchantCode, "")
			if err != nil {
				return err
			}

			tw := newTable(console.Out, table.Row{"ID", "NAME", "DESCRIPTION"})
			for _, c := range categories {
				tw.AppendRow(table.Row{c.ID, c.Name, c.Description})
			}
			tw.Render()
			return nil
		},
	}
}

func newCategoriesCreateCmd(console *Console) *cobra.Command {
	var req api.CategoryRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := console.requireLogin()
			if err != nil {
				return err
			}
			merchantCode, err := console.requireMerchant()
			if err != nil {
				return err
			}

			category, err := console.Services.Category.Create(cmd.Context(), merchantCode, req, token)
			if err != nil {
				return err
			}

			console.Notifier.Success("", fmt.Sprintf("Category %s created.", category.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "category name")
	cmd.Flags().StringVar(&req.Description, "description", "", "category description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newCategoriesUpdateCmd(console *Console) *cobra.Command {
	var req api.CategoryRequest

	cmd := &cobra.Command{
		Use:   "update <category-id>",
		Short: "Update a category",
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

			category, err := console.Services.Category.Update(cmd.Context(), merchantCode, args[0], req, token)
			if err != nil {
				return err
			}

			console.Notifier.Success("", fmt.Sprintf("Category %s updated.", category.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "category name")
	cmd.Flags().StringVar(&req.Description, "description", "", "category description")
	return cmd
}

func newCategoriesDeleteCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category",
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

			if err := console.Services.Category.Delete(cmd.Context(), merchantCode, args[0], token); err != nil {
				return err
			}

			console.Notifier.Success("", "Category deleted.")
			return nil
		},
	}
}
