package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/app/storefront"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/i18n"
)

// cli carries the flags and the App shared by all commands.
type cli struct {
	store    string
	file     string
	apiURL   string
	lang     string
	logLevel string

	app *storefront.App
}

// translator returns the translator for the --lang flag or the persisted
// preference.
func (c *cli) translator(ctx context.Context) *i18n.Translator {
	return c.app.Translator(ctx, c.lang)
}

func (c *cli) printf(cmd *cobra.Command, key string, values ...i18n.M) {
	fmt.Fprintln(cmd.OutOrStdout(), c.translator(cmd.Context()).T(key, values...))
}

// open builds the App from the environment and the persistent flags, then
// hydrates the session and the cart.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	var cfg storefront.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if c.store != "" {
		cfg.Store = c.store
	}
	if c.file != "" {
		cfg.FilePath = c.file
	}
	if c.apiURL != "" {
		cfg.Fakestore.BaseURL = c.apiURL
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	app, err := storefront.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	c.app = app
	c.app.Bootstrap(cmd.Context())
	return nil
}

func (c *cli) close(*cobra.Command, []string) error {
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "Browse the Fake Store, manage a cart and an account",
		Long: `storefront is a client for the Fake Store REST API.

The session and the cart are kept in a local key-value store and restored on
every run. Commands that need a logged-in user are refused otherwise.`,
		PersistentPreRunE:  c.open,
		PersistentPostRunE: c.close,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	root.PersistentFlags().StringVar(&c.store, "store", "", "Storage backend: memory, file, redis, sqlite, postgres, mongo (default from STOREFRONT_STORE)")
	root.PersistentFlags().StringVar(&c.file, "file", "", "Storage file for the file backend (default from STOREFRONT_FILE)")
	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "Fake Store API base URL (default from FAKESTORE_BASE_URL)")
	root.PersistentFlags().StringVar(&c.lang, "lang", "", "Output language for this run (default: saved preference)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newServeCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newProductsCmd(c),
		newCartCmd(c),
		newUserCmd(c),
		newHistoryCmd(c),
		newLangCmd(c),
	)
	return root
}

// execute runs the command tree and prints failures in the user's language.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	msg := err.Error()
	if c.app != nil {
		if storefront.Classify(err) != storefront.KindInternal {
			msg = storefront.Message(c.translator(ctx), err)
		}
		_ = c.app.Close()
	}
	fmt.Fprintln(stderr, msg)
	return 1
}
