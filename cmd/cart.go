package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sessionrender "github.com/sparkvibe/sparkvibe-cli/internal/adapters/render/session"
	"github.com/sparkvibe/sparkvibe-cli/internal/catalog"
	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your shopping cart",
	}

	cmd.AddCommand(
		newCartAddCmd(app),
		newCartRemoveCmd(app),
		newCartSetCmd(app),
		newCartListCmd(app),
		newCartClearCmd(app),
	)

	return cmd
}

func newCartAddCmd(app *app) *cobra.Command {
	var (
		productID string
		quantity  int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			notifier := app.notify(cmd)

			product, err := catalog.ByID(domain.ProductID(productID))
			if err != nil {
				notifier.Error("Product not found")
				return err
			}

			if err := app.cart.Add(cmd.Context(), product, quantity); err != nil {
				if errors.Is(err, domain.ErrOutOfStock) {
					notifier.Error("Sorry, that product is out of stock")
				}
				return err
			}

			notifier.Success("Added to cart!")
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "Product ID")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Quantity to add")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newCartRemoveCmd(app *app) *cobra.Command {
	var productID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a product from the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			notifier := app.notify(cmd)

			if err := app.cart.Remove(cmd.Context(), domain.ProductID(productID)); err != nil {
				if errors.Is(err, domain.ErrProductNotFound) {
					notifier.Error("That product is not in your cart")
				}
				return err
			}

			notifier.Info("Removed from cart")
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "Product ID")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newCartSetCmd(app *app) *cobra.Command {
	var (
		productID string
		quantity  int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the quantity of a cart entry (0 removes it)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			notifier := app.notify(cmd)

			if err := app.cart.SetQuantity(cmd.Context(), domain.ProductID(productID), quantity); err != nil {
				if errors.Is(err, domain.ErrProductNotFound) {
					notifier.Error("That product is not in your cart")
				}
				return err
			}

			notifier.Success("Cart updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "Product ID")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "New quantity")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newCartListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := app.cart.Items(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), sessionrender.RenderCart(items))
			return err
		},
	}
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cart.Clear(cmd.Context()); err != nil {
				return err
			}

			app.notify(cmd).Info("Cart cleared")
			return nil
		},
	}
}
