package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/app/storefront"
	"github.com/dmitrymomot/storefront/core/catalog"
	"github.com/dmitrymomot/storefront/core/i18n"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the storefront operations as a JSON API on SERVER_ADDR.

The server shares the session and the cart with the CLI through the
configured store and stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context())
		},
	}
}

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> [password]",
		Short: "Log in with a Fake Store account",
		Long: `Log in and keep the session for later runs.

When the password is omitted it is read from the first line of stdin.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 2 {
				password = args[1]
			} else {
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				password = strings.TrimRight(line, "\r\n")
			}

			sess, err := c.app.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			c.printf(cmd, "login.success", i18n.M{"name": sess.DisplayName()})
			return nil
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.app.Logout(cmd.Context()) {
				c.printf(cmd, "logout.already")
				return nil
			}
			c.printf(cmd, "logout.success")
			return nil
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess := c.app.Whoami()
			if !sess.IsAuthenticated() {
				c.printf(cmd, "whoami.anonymous")
				return nil
			}
			c.printf(cmd, "whoami.user", i18n.M{"name": sess.DisplayName()})
			return nil
		},
	}
}

func newProductsCmd(c *cli) *cobra.Command {
	var req storefront.ProductsRequest
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Long: `List the catalog, optionally narrowed to a category and filtered by
title and maximum price.

Categories: ` + strings.Join(catalog.Categories, ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			products, err := c.app.Products(cmd.Context(), req)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				c.printf(cmd, "products.none")
				return nil
			}
			t := c.translator(cmd.Context())
			for _, p := range products {
				c.printf(cmd, "products.line", i18n.M{
					"id":       p.ID,
					"title":    p.Title,
					"category": p.Category,
					"price":    t.FormatPrice(p.Price),
				})
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Category, "category", "", "Category to list")
	cmd.Flags().StringVar(&req.Sort, "sort", "asc", "Sort order: asc or desc")
	cmd.Flags().StringVar(&req.Search, "search", "", "Case-insensitive title filter")
	cmd.Flags().StringVar(&req.MaxPrice, "max-price", "", "Maximum price")
	return cmd
}

func newCartCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			receipt, err := c.app.Cart(cmd.Context())
			if err != nil {
				return err
			}
			c.printReceipt(cmd, receipt)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the cart with prices",
			Args:  cobra.NoArgs,
			RunE:  cmd.RunE,
		},
		&cobra.Command{
			Use:   "add <product-id>",
			Short: "Add one unit of a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				state, err := c.app.AddToCart(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c.printf(cmd, "cart.added", i18n.M{"id": args[0]})
				c.printf(cmd, "cart.total_items", i18n.M{"count": state.TotalItems})
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove one unit of a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				state, err := c.app.RemoveFromCart(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				c.printf(cmd, "cart.removed", i18n.M{"id": args[0]})
				c.printf(cmd, "cart.total_items", i18n.M{"count": state.TotalItems})
				return nil
			},
		},
		&cobra.Command{
			Use:   "checkout",
			Short: "Check out and empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				receipt, err := c.app.Checkout(cmd.Context())
				if err != nil {
					return err
				}
				c.printReceipt(cmd, receipt)
				c.printf(cmd, "cart.checkout")
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) printReceipt(cmd *cobra.Command, r catalog.Receipt) {
	if r.TotalItems == 0 {
		c.printf(cmd, "cart.empty")
		return
	}
	t := c.translator(cmd.Context())
	for _, l := range r.Lines {
		title := l.Title
		if !l.Known {
			title = t.T("unknown_product")
		}
		c.printf(cmd, "cart.line", i18n.M{
			"title":    title,
			"price":    t.FormatPrice(l.Price),
			"quantity": l.Quantity,
		})
	}
	c.printf(cmd, "cart.total_items", i18n.M{"count": r.TotalItems})
	c.printf(cmd, "cart.total_price", i18n.M{"price": t.FormatPrice(r.TotalPrice)})
}

func newUserCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Create, update or delete a Fake Store account",
	}

	var create storefront.CreateUserForm
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.CreateUser(cmd.Context(), create)
			if err != nil {
				return err
			}
			c.printf(cmd, "user.created", i18n.M{"id": user.ID})
			return nil
		},
	}
	bindUserFlags(createCmd, &create.Username, &create.Password, &create.Email, &create.Firstname, &create.Lastname, &create.Phone)

	var update storefront.UpdateUserForm
	updateCmd := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Replace an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.app.UpdateUser(cmd.Context(), args[0], update); err != nil {
				return err
			}
			c.printf(cmd, "user.updated")
			return nil
		},
	}
	bindUserFlags(updateCmd, &update.Username, &update.Password, &update.Email, &update.Firstname, &update.Lastname, &update.Phone)

	deleteCmd := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.printf(cmd, "user.deleted")
			return nil
		},
	}

	cmd.AddCommand(createCmd, updateCmd, deleteCmd)
	return cmd
}

func bindUserFlags(cmd *cobra.Command, username, password, email, first, last, phone *string) {
	cmd.Flags().StringVar(username, "username", "", "Username")
	cmd.Flags().StringVar(password, "password", "", "Password")
	cmd.Flags().StringVar(email, "email", "", "Email address")
	cmd.Flags().StringVar(first, "firstname", "", "First name")
	cmd.Flags().StringVar(last, "lastname", "", "Last name")
	cmd.Flags().StringVar(phone, "phone", "", "Phone number")
}

func newHistoryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "history <user-id> [order-id]",
		Short: "List past orders of a user",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := c.translator(cmd.Context())
			if len(args) == 2 {
				detail, err := c.app.Order(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Tn("history.order", detail.TotalItems, i18n.M{
					"id": detail.ID, "date": detail.Date, "count": detail.TotalItems,
				}))
				for _, item := range detail.Items {
					c.printf(cmd, "cart.line", i18n.M{
						"title":    item.Product.Title,
						"price":    t.FormatPrice(item.Product.Price),
						"quantity": item.Quantity,
					})
				}
				return nil
			}

			list, err := c.app.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(list) == 0 {
				c.printf(cmd, "history.none")
				return nil
			}
			for _, o := range list {
				fmt.Fprintln(cmd.OutOrStdout(), t.Tn("history.order", o.TotalItems, i18n.M{
					"id": o.ID, "date": o.Date, "count": o.TotalItems,
				}))
			}
			return nil
		},
	}
}

func newLangCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [language]",
		Short: "Show or set the preferred language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), c.app.Language(ctx))
				return nil
			}
			if err := c.app.SetLanguage(ctx, args[0]); err != nil {
				return err
			}
			c.lang = args[0]
			c.printf(cmd, "language.changed", i18n.M{"lang": args[0]})
			return nil
		},
	}
}
