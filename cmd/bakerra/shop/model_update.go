package shop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"bakerra/internal/booking"
	"bakerra/internal/checkout"
	"bakerra/internal/config"
	"bakerra/internal/notify"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		chatWidth := min(msg.Width-4, 72)
		m.chatVP.Width = chatWidth
		m.chatVP.Height = max(msg.Height-8, 6)
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(chatWidth-4),
		)
		m.chatVP.SetContent(m.renderChat())
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastsMsg:
		m.toasts = msg
		return m, nil

	case configReloadedMsg:
		m.cfg = config.Config(msg)
		m.cart.SetDeliveryFee(m.cfg.DeliveryFee)
		m.log.Info("tunables applied",
			zap.String("delivery_fee", m.cfg.DeliveryFee.String()))
		return m, nil

	case processingDoneMsg:
		if m.checkout.FinishProcessing(msg.epoch) {
			// Capture confirmation copy before anything resets the session.
			m.confirmedTotal = m.cart.Total().String()
			m.confirmedEmail = m.checkout.Shipping().Email
			m.log.Info("order confirmed", zap.String("total", m.confirmedTotal))
		}
		return m, nil

	case bookingDoneMsg:
		if m.booking.FinishSubmit(msg.epoch) {
			m.resetBookingInputs()
			m.view = BrowseView
		}
		return m, nil

	case chatReplyMsg:
		if m.chat.CompleteReply(msg.epoch, time.Now()) {
			m.chatVP.SetContent(m.renderChat())
			m.chatVP.GotoBottom()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.view {
		case BrowseView:
			return m.updateBrowse(msg)
		case CartView:
			return m.updateCart(msg)
		case CheckoutView:
			return m.updateCheckout(msg)
		case BookingView:
			return m.updateBooking(msg)
		case ChatView:
			return m.updateChat(msg)
		}
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "left", "[":
		m.categoryIdx = (m.categoryIdx + len(m.categories) - 1) % len(m.categories)
		m.cursor = 0
	case "right", "]", "tab":
		m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		}

	case "enter", "a":
		if p, ok := m.selectedProduct(); ok {
			m.cart.Add(p)
			m.notifier.Publish(fmt.Sprintf("%s added to cart!", p.Name),
				notify.TypeSuccess, m.cfg.NotificationDuration.Std())
		}

	case "c":
		m.cartCursor = 0
		m.view = CartView

	case "b":
		// A fresh form each time the modal opens.
		m.booking = booking.NewForm(booking.KindPreOrder, m.notifier)
		m.resetBookingInputs()
		m.bookingInput[bkName].Focus()
		m.view = BookingView

	case "t":
		m.chatVP.SetContent(m.renderChat())
		m.chatVP.GotoBottom()
		m.chatInput.Focus()
		m.view = ChatView
	}
	return m, nil
}

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.cart.Items()

	switch msg.String() {
	case "esc", "c", "q":
		m.view = BrowseView
		return m, nil

	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case "down", "j":
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}

	case "+", "right":
		if m.cartCursor < len(items) {
			it := items[m.cartCursor]
			m.cart.SetQuantity(it.ProductID, it.Quantity+1)
			m.notifier.Publish(fmt.Sprintf("%s quantity updated", it.Name),
				notify.TypeInfo, m.cfg.NotificationDuration.Std())
		}

	case "-", "left":
		if m.cartCursor < len(items) {
			it := items[m.cartCursor]
			if it.Quantity <= 1 {
				m.cart.Remove(it.ProductID)
				m.notifier.Publish(fmt.Sprintf("%s removed from cart", it.Name),
					notify.TypeInfo, m.cfg.NotificationDuration.Std())
			} else {
				m.cart.SetQuantity(it.ProductID, it.Quantity-1)
				m.notifier.Publish(fmt.Sprintf("%s quantity updated", it.Name),
					notify.TypeInfo, m.cfg.NotificationDuration.Std())
			}
			m.clampCursors()
		}

	case "x", "delete", "backspace":
		if m.cartCursor < len(items) {
			it := items[m.cartCursor]
			m.cart.Remove(it.ProductID)
			m.notifier.Publish(fmt.Sprintf("%s removed from cart", it.Name),
				notify.TypeInfo, m.cfg.NotificationDuration.Std())
			m.clampCursors()
		}

	case "enter":
		if !m.cart.IsEmpty() {
			// A fresh session each time checkout opens.
			m.checkout = checkout.NewSession(m.notifier)
			m.resetCheckoutInputs()
			m.setCheckoutFocus(fieldName)
			m.view = CheckoutView
		}
	}
	return m, nil
}

func (m Model) updateCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.checkout.Step() {
	case checkout.StepShipping:
		switch msg.String() {
		case "esc":
			return m.closeCheckout()
		case "tab", "down":
			m.setCheckoutFocus(m.nextCheckoutField(+1))
			return m, nil
		case "shift+tab", "up":
			m.setCheckoutFocus(m.nextCheckoutField(-1))
			return m, nil
		case "enter":
			if err := m.checkout.SubmitShipping(m.shippingFromInputs()); err == nil {
				m.setCheckoutFocus(fieldCardNumber)
			}
			return m, nil
		}

	case checkout.StepPayment:
		switch msg.String() {
		case "esc":
			return m.closeCheckout()
		case "ctrl+b":
			m.checkout.Back()
			m.setCheckoutFocus(fieldName)
			return m, nil
		case "tab", "down":
			m.setCheckoutFocus(m.nextCheckoutField(+1))
			return m, nil
		case "shift+tab", "up":
			m.setCheckoutFocus(m.nextCheckoutField(-1))
			return m, nil
		case "enter":
			epoch, err := m.checkout.SubmitPayment(m.paymentFromInputs())
			if err != nil {
				return m, nil
			}
			m.log.Info("payment submitted, processing",
				zap.Duration("delay", m.cfg.PaymentProcessingDelay.Std()))
			return m, tick(m.cfg.PaymentProcessingDelay.Std(), processingDoneMsg{epoch: epoch})
		}

	case checkout.StepConfirmation:
		switch msg.String() {
		case "enter", "esc":
			m.checkout.Finish()
			m.resetCheckoutInputs()
			m.view = BrowseView
			return m, nil
		}
		return m, nil
	}

	// Everything else edits the focused field.
	var cmd tea.Cmd
	m.checkoutInputs[m.checkoutFocus], cmd = m.checkoutInputs[m.checkoutFocus].Update(msg)
	return m, cmd
}

func (m Model) closeCheckout() (tea.Model, tea.Cmd) {
	m.checkout.Close()
	m.resetCheckoutInputs()
	m.view = CartView
	return m, nil
}

// nextCheckoutField cycles focus within the fields of the current step.
func (m Model) nextCheckoutField(dir int) int {
	if m.checkout.Step() == checkout.StepPayment {
		i := m.checkoutFocus - paymentFieldStart
		i = (i + dir + paymentFieldCount) % paymentFieldCount
		return paymentFieldStart + i
	}
	return (m.checkoutFocus + dir + shippingFieldCount) % shippingFieldCount
}

func (m *Model) setCheckoutFocus(i int) {
	for j := range m.checkoutInputs {
		m.checkoutInputs[j].Blur()
	}
	m.checkoutFocus = i
	m.checkoutInputs[i].Focus()
}

func (m Model) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.booking.Close()
		m.resetBookingInputs()
		m.view = BrowseView
		return m, nil

	case "ctrl+k":
		// Cycle booking kind; entered fields are preserved.
		kinds := booking.Kinds
		cur := m.booking.Request().Kind
		m.booking.SetKind(kinds[(int(cur)+1)%len(kinds)])
		return m, nil

	case "tab", "down":
		m.setBookingFocus((m.bookingFocus + 1) % numBookingFields)
		return m, nil
	case "shift+tab", "up":
		m.setBookingFocus((m.bookingFocus + numBookingFields - 1) % numBookingFields)
		return m, nil

	case "enter":
		m.syncBookingFields()
		epoch, err := m.booking.Submit(time.Now())
		if err != nil {
			return m, nil
		}
		m.log.Info("booking submitted",
			zap.Duration("delay", m.cfg.BookingSubmitDelay.Std()))
		return m, tick(m.cfg.BookingSubmitDelay.Std(), bookingDoneMsg{epoch: epoch})
	}

	// The time slot row is a selector, not a text input.
	if m.bookingFocus == bkTime {
		switch msg.String() {
		case "left", "h":
			if m.slotIdx > 0 {
				m.slotIdx--
			} else if m.slotIdx < 0 {
				m.slotIdx = 0
			}
		case "right", "l", " ":
			if m.slotIdx < len(booking.Slots())-1 {
				m.slotIdx++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.bookingInput[m.bookingFocus], cmd = m.bookingInput[m.bookingFocus].Update(msg)
	return m, cmd
}

func (m *Model) setBookingFocus(i int) {
	for j := range m.bookingInput {
		m.bookingInput[j].Blur()
	}
	m.bookingFocus = i
	if i != bkTime {
		m.bookingInput[i].Focus()
	}
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatInput.Blur()
		m.view = BrowseView
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.chatVP, cmd = m.chatVP.Update(msg)
		return m, cmd

	case "enter":
		epoch, ok := m.chat.Post(m.chatInput.Value(), time.Now())
		if !ok {
			return m, nil
		}
		m.chatInput.SetValue("")
		m.chatVP.SetContent(m.renderChat())
		m.chatVP.GotoBottom()
		return m, tick(m.cfg.ChatReplyDelay.Std(), chatReplyMsg{epoch: epoch})
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}
