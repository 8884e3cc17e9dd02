// Package cli wires the session controller, the API services and the
// resource fetcher into cobra commands. Commands render to stdout; notices
// and the spinner go to stderr.
package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sellerhq/seller-console/api"
	"github.com/sellerhq/seller-console/internal/config"
	"github.com/sellerhq/seller-console/notify"
	"github.com/sellerhq/seller-console/session"
)

// Console bundles everything a command needs.
type Console struct {
	Config   config.Config
	Services *api.Services
	Session  *session.Controller
	Notifier notify.Notifier
	Logger   zerolog.Logger
	Out      io.Writer
}

// NewRootCmd builds the command tree. The console is initialised once in
// the persistent pre-run so every command sees a rehydrated session with
// the renewal loop running, and torn down afterwards.
func NewRootCmd() *cobra.Command {
	console := &Console{Out: os.Stdout}

	root := &cobra.Command{
		Use:           "sellerconsole",
		Short:         "Manage your storefront from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := console.init(); err != nil {
				return err
			}
			console.Session.Start(cmd.Context())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if console.Session != nil {
				console.Session.Close()
			}
		},
	}

	root.AddCommand(
		newLoginCmd(console),
		newRegisterCmd(console),
		newLogoutCmd(console),
		newWhoamiCmd(console),
		newMerchantCmd(console),
		newProductsCmd(console),
		newCategoriesCmd(console),
		newDiscountsCmd(console),
		newTaxesCmd(console),
		newShippingCmd(console),
		newOrdersCmd(console),
		newCustomersCmd(console),
	)
	return root
}

func (c *Console) init() error {
	cfg := config.New()
	c.Config = cfg

	logLevel := zerolog.WarnLevel
	if cfg.GetEnv() == "DEV" {
		logLevel = zerolog.DebugLevel
	}
	c.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(logLevel).With().Timestamp().Logger()

	c.Notifier = notify.NewDeduped(notify.NewConsole())

	services, err := api.NewServices(
		cfg.GetAPIBaseURL(),
		api.WithLogger(c.Logger),
		api.WithTimeout(cfg.GetRequestTimeout()),
	)
	if err != nil {
		return errors.Wrap(err, "[Console.init] build api services")
	}
	c.Services = services

	store, err := session.NewFileStore(cfg.GetStateDir(), session.WithPassphrase(cfg.GetStorePassphrase()))
	if err != nil {
		return errors.Wrap(err, "[Console.init] open session store")
	}

	controller, err := session.NewController(session.Deps{
		Users:     services.User,
		Merchants: services.Merchant,
		Store:     store,
		Notifier:  c.Notifier,
	},
		session.WithLogger(c.Logger),
		session.WithRenewalInterval(cfg.GetRenewalInterval()),
		session.WithExpiryLeeway(cfg.GetExpiryLeeway()),
		session.WithRequestTimeout(cfg.GetRequestTimeout()),
	)
	if err != nil {
		return errors.Wrap(err, "[Console.init] build session controller")
	}
	c.Session = controller
	return nil
}

// requireLogin returns the current access token or an instruction to log in.
func (c *Console) requireLogin() (string, error) {
	token := c.Session.AccessToken()
	if token == "" {
		return "", errors.New("not logged in, run 'sellerconsole login' first")
	}
	return token, nil
}

// requireMerchant returns the merchant code, failing when the seller has
// not created a store yet.
func (c *Console) requireMerchant() (string, error) {
	merchant := c.Session.Merchant()
	if merchant == nil || merchant.MerchantCode == "" {
		return "", errors.New("no store yet, run 'sellerconsole merchant create' first")
	}
	return merchant.MerchantCode, nil
}
