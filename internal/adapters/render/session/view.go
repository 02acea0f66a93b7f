// Package session renders the signed-in session and the cart for the
// terminal.
package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

// Render produces the status view: who is signed in, their preferences and
// a one-line cart summary.
func Render(sess domain.Session, cartItems []domain.CartItem) string {
	return renderView(sess, cartItems, newStyles())
}

func renderView(sess domain.Session, cartItems []domain.CartItem, s styles) string {
	lines := []string{
		s.title.Render("SparkVibe"),
	}

	if sess.Account == nil {
		lines = append(lines, s.empty.Render("Not signed in."))
	} else {
		account := sess.Account
		lines = append(lines,
			s.account.Render(fmt.Sprintf("%s <%s>", account.DisplayName, account.Email)),
			s.detail.Render(preferencesLine(account.Preferences)),
		)
		if !account.CreatedAt.IsZero() {
			lines = append(lines, s.header.Render("member since "+account.CreatedAt.Format("Jan 2, 2006")))
		}
	}

	lines = append(lines, s.section.Render(cartSummary(cartItems, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderCart produces the full cart listing with line totals.
func RenderCart(items []domain.CartItem) string {
	s := newStyles()

	if len(items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Your Cart"),
			s.empty.Render("Your cart is empty."),
		)
	}

	lines := []string{
		s.title.Render("Your Cart"),
		s.header.Render(fmt.Sprintf("items: %d", domain.CartTotalItems(items))),
	}

	for _, item := range items {
		name := s.detail.Render(fmt.Sprintf("%dx %s", item.Quantity, item.Product.Name))
		price := s.price.Render(fmt.Sprintf("$%.2f", item.Product.Price*float64(item.Quantity)))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, name, "  ", price))
	}

	lines = append(lines, s.section.Render(
		s.label.Render("total: ")+s.price.Render(fmt.Sprintf("$%.2f", domain.CartTotalPrice(items))),
	))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func preferencesLine(prefs domain.Preferences) string {
	return fmt.Sprintf("theme: %s · notifications: %s · newsletter: %s",
		prefs.Theme, onOff(prefs.Notifications), onOff(prefs.Newsletter))
}

func cartSummary(items []domain.CartItem, s styles) string {
	count := domain.CartTotalItems(items)
	if count == 0 {
		return s.empty.Render("cart: empty")
	}

	return s.label.Render(fmt.Sprintf("cart: %d item(s) · ", count)) +
		s.price.Render(fmt.Sprintf("$%.2f", domain.CartTotalPrice(items)))
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}

	return "off"
}
