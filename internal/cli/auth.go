package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
)

func newLoginCmd(console *Console) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := console.Services.User.Login(cmd.Context(), api.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			console.Session.SetSession(cmd.Context(), resp.AccessToken, resp.RefreshToken)
			msg := resp.Msg
			if msg == "" {
				msg = "Logged in."
			}
			console.Notifier.Success("", msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(console *Console) *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a seller account",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := console.Services.User.Register(cmd.Context(), api.RegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			console.Session.SetSession(cmd.Context(), resp.AccessToken, resp.RefreshToken)
			msg := resp.Msg
			if msg == "" {
				msg = "Account created."
			}
			console.Notifier.Success("", msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "unique username")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			console.Session.Logout()
			return nil
		},
	}
}

func newWhoamiCmd(console *Console) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in seller and store",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := console.Session.User()
			if user == nil {
				fmt.Fprintln(console.Out, "not logged in")
				return nil
			}

			fmt.Fprintf(console.Out, "user: %s <%s>\n", user.Username, user.Email)
			if merchant := console.Session.Merchant(); merchant != nil {
				fmt.Fprintf(console.Out, "store: %s (%s), currency %s\n",
					merchant.MerchantName, merchant.MerchantCode, merchant.Currency)
			} else {
				fmt.Fprintln(console.Out, "store: none yet")
			}
			return nil
		},
	}
}
