package shop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bakerra/internal/booking"
	"bakerra/internal/chatbot"
	"bakerra/internal/checkout"
	"bakerra/internal/notify"
)

func (m Model) View() string {
	var body string
	switch m.view {
	case CartView:
		body = m.viewCart()
	case CheckoutView:
		body = m.viewCheckout()
	case BookingView:
		body = m.viewBooking()
	case ChatView:
		body = m.viewChat()
	default:
		body = m.viewBrowse()
	}

	sections := []string{m.viewHeader(), body}
	if toasts := m.viewToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.viewFooter())
	return strings.Join(sections, "\n")
}

func (m Model) viewHeader() string {
	title := m.styles.Header.Render(" Bakerra · Fresh Artisan Bakery ")
	badge := m.styles.Muted.Render(fmt.Sprintf("  cart: %d item(s)", m.cart.Len()))
	return title + badge
}

func (m Model) viewFooter() string {
	var help string
	switch m.view {
	case CartView:
		help = "↑/↓ select · +/- quantity · x remove · enter checkout · esc close"
	case CheckoutView:
		switch m.checkout.Step() {
		case checkout.StepShipping:
			help = "tab next field · enter continue to payment · esc close"
		case checkout.StepPayment:
			help = "tab next field · enter complete purchase · ctrl+b back · esc close"
		default:
			help = "enter continue shopping"
		}
	case BookingView:
		help = "tab next field · ctrl+k booking type · enter confirm · esc close"
	case ChatView:
		help = "type and press enter · pgup/pgdn scroll · esc close"
	default:
		help = "↑/↓ browse · ←/→ category · enter add to cart · c cart · b book · t chat · q quit"
	}
	return m.styles.Footer.Render(help)
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	// Category tabs.
	var tabs []string
	for i, cat := range m.categories {
		if i == m.categoryIdx {
			tabs = append(tabs, m.styles.TabActive.Render(cat))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(cat))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render("Bakerra Ranges"))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Carefully crafted with the finest ingredients"))
	b.WriteString("\n\n")

	for i, p := range m.filtered() {
		line := fmt.Sprintf("%-18s %8s  %s", p.Name, p.Price, m.styles.Muted.Render(p.Description))
		if i == m.cursor {
			b.WriteString(m.styles.RowSelected.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewCart() string {
	var b strings.Builder
	items := m.cart.Items()

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Shopping Cart (%d)", len(items))))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(m.styles.Muted.Render("Your cart is empty"))
		return m.styles.Modal.Render(b.String())
	}

	for i, it := range items {
		line := fmt.Sprintf("%-18s %8s  × %d", it.Name, it.UnitPrice, it.Quantity)
		if i == m.cartCursor {
			b.WriteString(m.styles.RowSelected.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Divider.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-18s %8s\n", "Subtotal", m.cart.Subtotal()))
	b.WriteString(fmt.Sprintf("%-18s %8s\n", "Delivery", m.cart.DeliveryFee()))
	b.WriteString(m.styles.Price.Render(fmt.Sprintf("%-18s %8s", "Total", m.cart.Total())))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Button.Render("Proceed to Checkout"))

	return m.styles.Modal.Render(b.String())
}

func (m Model) viewCheckout() string {
	switch m.checkout.Step() {
	case checkout.StepPayment:
		return m.viewPaymentStep()
	case checkout.StepConfirmation:
		return m.viewConfirmationStep()
	default:
		return m.viewShippingStep()
	}
}

func (m Model) checkoutField(label string, idx int) string {
	l := m.styles.Label.Render(label)
	if idx == m.checkoutFocus {
		l = m.styles.FieldFocus.Render(fmt.Sprintf("%-16s", label))
	}
	return l + m.checkoutInputs[idx].View()
}

func (m Model) viewShippingStep() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Delivery Information"))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render("step 1 of 2"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		idx   int
	}{
		{"Full Name *", fieldName},
		{"Email *", fieldEmail},
		{"Phone *", fieldPhone},
		{"Street Address *", fieldAddress},
		{"City", fieldCity},
		{"ZIP Code", fieldZip},
	}
	for _, r := range rows {
		b.WriteString(m.checkoutField(r.label, r.idx))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Button.Render("Continue to Payment"))
	return m.styles.Modal.Render(b.String())
}

func (m Model) viewPaymentStep() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Payment Details"))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render("step 2 of 2"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		idx   int
	}{
		{"Card Number *", fieldCardNumber},
		{"Expiry Date *", fieldCardExpiry},
		{"CVC *", fieldCardCvc},
	}
	for _, r := range rows {
		b.WriteString(m.checkoutField(r.label, r.idx))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-18s %8s\n", "Subtotal:", m.cart.Subtotal()))
	b.WriteString(fmt.Sprintf("%-18s %8s\n", "Delivery Fee:", m.cart.DeliveryFee()))
	b.WriteString(m.styles.Price.Render(fmt.Sprintf("%-18s %8s", "Total:", m.cart.Total())))
	b.WriteString("\n\n")

	if m.checkout.Processing() {
		b.WriteString(m.styles.ButtonBusy.Render(m.spinner.View() + " Processing..."))
	} else {
		b.WriteString(m.styles.Button.Render("Complete Purchase"))
	}
	return m.styles.Modal.Render(b.String())
}

func (m Model) viewConfirmationStep() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Order Confirmed!"))
	b.WriteString("\n\n")
	b.WriteString("Thank you for your order. We'll prepare it fresh and have it ready for delivery.\n\n")
	b.WriteString(fmt.Sprintf("Order Total: %s\n", m.styles.Price.Render(m.confirmedTotal)))
	b.WriteString("Delivery: Tomorrow, between 10am - 2pm\n")
	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("A confirmation email has been sent to %s", m.confirmedEmail)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Button.Render("Continue Shopping"))
	return m.styles.Modal.Render(b.String())
}

func (m Model) viewBooking() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Book with Bakerra"))
	b.WriteString("\n\n")

	kind := m.booking.Request().Kind
	var tabs []string
	for _, k := range booking.Kinds {
		if k == kind {
			tabs = append(tabs, m.styles.TabActive.Render(k.TabLabel()))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(k.TabLabel()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render(kind.Description()))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		idx   int
	}{
		{"Full Name *", bkName},
		{"Email *", bkEmail},
		{"Phone Number *", bkPhone},
		{"Preferred Date *", bkDate},
	}
	for _, r := range rows {
		b.WriteString(m.bookingField(r.label, r.idx))
		b.WriteString("\n")
	}

	b.WriteString(m.viewSlotSelector())
	b.WriteString("\n")
	b.WriteString(m.bookingField("Special Requests", bkNotes))
	b.WriteString("\n\n")

	if m.booking.Submitting() {
		b.WriteString(m.styles.ButtonBusy.Render(m.spinner.View() + " Processing..."))
	} else {
		b.WriteString(m.styles.Button.Render("Confirm Booking"))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("We'll contact you within 2 hours to confirm your booking."))
	return m.styles.Modal.Render(b.String())
}

func (m Model) bookingField(label string, idx int) string {
	l := m.styles.Label.Render(label)
	if idx == m.bookingFocus {
		l = m.styles.FieldFocus.Render(fmt.Sprintf("%-16s", label))
	}
	return l + m.bookingInput[idx].View()
}

func (m Model) viewSlotSelector() string {
	label := m.styles.Label.Render("Preferred Time *")
	if m.bookingFocus == bkTime {
		label = m.styles.FieldFocus.Render(fmt.Sprintf("%-16s", "Preferred Time *"))
	}
	slots := booking.Slots()
	if m.slotIdx < 0 {
		return label + m.styles.Muted.Render("← → select a time")
	}
	return label + m.styles.Body.Render("◂ "+slots[m.slotIdx].Label+" ▸")
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Bakerra Chat"))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render("We're here to help!"))
	b.WriteString("\n\n")

	b.WriteString(m.chatVP.View())
	b.WriteString("\n")

	if m.chat.Pending() {
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Muted.Render(" typing..."))
		b.WriteString("\n")
	} else if len(m.chat.Messages()) == 1 {
		b.WriteString(m.styles.Muted.Render("Popular questions:"))
		b.WriteString("\n")
		for _, q := range chatbot.SuggestedQuestions[:3] {
			b.WriteString(m.styles.Muted.Render("  • " + q))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.chatInput.View())
	return m.styles.Modal.Render(b.String())
}

// renderChat builds the viewport content for the conversation. Bot replies
// run through the markdown renderer when one is available.
func (m Model) renderChat() string {
	var b strings.Builder
	for _, msg := range m.chat.Messages() {
		if msg.Role == chatbot.RoleUser {
			b.WriteString(m.styles.UserBubble.Render("You: " + msg.Content))
			b.WriteString("\n")
			continue
		}
		content := msg.Content
		if m.renderer != nil {
			if rendered, err := m.renderer.Render(content); err == nil {
				content = strings.TrimSpace(rendered)
			}
		}
		b.WriteString(m.styles.BotBubble.Render("Bakerra: " + content))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var rendered []string
	for _, n := range m.toasts {
		var style = m.styles.ToastInfo
		switch n.Type {
		case notify.TypeSuccess:
			style = m.styles.ToastSuccess
		case notify.TypeError:
			style = m.styles.ToastError
		case notify.TypeWarning:
			style = m.styles.ToastWarning
		}
		rendered = append(rendered, style.Render(n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
