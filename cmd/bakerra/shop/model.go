// Package shop implements the interactive Bakerra storefront: product
// browsing, the shopping cart, the checkout wizard, the booking modal, the
// chat assistant and the toast stack, all in one bubbletea model.
package shop

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"bakerra/cmd/bakerra/ui"
	"bakerra/internal/booking"
	"bakerra/internal/cart"
	"bakerra/internal/catalog"
	"bakerra/internal/chatbot"
	"bakerra/internal/checkout"
	"bakerra/internal/config"
	"bakerra/internal/notify"
)

// Model is the root model for the storefront.
type Model struct {
	cfg    config.Config
	log    *zap.Logger
	styles ui.Styles

	width  int
	height int

	view ViewMode

	// Browse
	categories  []string
	categoryIdx int
	products    []catalog.Product
	cursor      int

	// Notifications
	notifier *notify.Broadcaster
	toasts   []notify.Notification

	// Cart
	cart       *cart.Cart
	cartCursor int

	// Checkout
	checkout       *checkout.Session
	checkoutInputs []textinput.Model
	checkoutFocus  int
	// Confirmation copy captured when the order confirms, before reset.
	confirmedTotal string
	confirmedEmail string

	// Booking
	booking      *booking.Form
	bookingInput []textinput.Model
	bookingFocus int
	slotIdx      int

	// Chat
	chat      *chatbot.Log
	chatInput textinput.Model
	chatVP    viewport.Model
	renderer  *glamour.TermRenderer

	spinner spinner.Model
}

// New builds the storefront model. The broadcaster and logger are injected;
// the model subscribes to nothing itself (Run wires the broadcaster to the
// program's message loop).
func New(cfg config.Config, notifier *notify.Broadcaster, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	styles := ui.NewStyles(ui.DetectTheme())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Subtitle

	m := Model{
		cfg:        cfg,
		log:        log,
		styles:     styles,
		categories: catalog.Categories(),
		products:   catalog.Products(),
		notifier:   notifier,
		cart:       cart.New(cfg.DeliveryFee),
		checkout:   checkout.NewSession(notifier),
		booking:    booking.NewForm(booking.KindPreOrder, notifier),
		chat:       chatbot.NewLog(time.Now()),
		spinner:    sp,
		slotIdx:    -1,
	}

	m.checkoutInputs = newCheckoutInputs()
	m.bookingInput = newBookingInputs()

	m.chatInput = textinput.New()
	m.chatInput.Placeholder = "Ask me anything..."
	m.chatInput.CharLimit = 200
	m.chatVP = viewport.New(60, 14)

	return m
}

func newCheckoutInputs() []textinput.Model {
	placeholders := []string{
		"John Doe",
		"john@example.com",
		"(555) 123-4567",
		"123 Main Street",
		"New York",
		"10001",
		"1234 5678 9012 3456",
		"MM/YY",
		"123",
	}
	inputs := make([]textinput.Model, numCheckoutFields)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[fieldCardNumber].CharLimit = 19
	inputs[fieldCardExpiry].CharLimit = 5
	inputs[fieldCardCvc].CharLimit = 3
	return inputs
}

func newBookingInputs() []textinput.Model {
	placeholders := []string{
		"Your name",
		"your@email.com",
		"(555) 123-4567",
		booking.DateLayout,
		"", // slot selector, unused
		"Any special requests?",
	}
	inputs := make([]textinput.Model, numBookingFields)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		inputs[i] = ti
	}
	inputs[bkDate].CharLimit = len(booking.DateLayout)
	return inputs
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// filtered returns the product list for the active category tab.
func (m Model) filtered() []catalog.Product {
	return catalog.Filter(m.categories[m.categoryIdx])
}

// selectedProduct returns the product under the browse cursor.
func (m Model) selectedProduct() (catalog.Product, bool) {
	ps := m.filtered()
	if len(ps) == 0 || m.cursor < 0 || m.cursor >= len(ps) {
		return catalog.Product{}, false
	}
	return ps[m.cursor], true
}

// clampCursors keeps selection indexes valid after list mutations.
func (m *Model) clampCursors() {
	if n := len(m.filtered()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if n := m.cart.Len(); m.cartCursor >= n {
		m.cartCursor = n - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

// shippingFromInputs assembles the shipping form from the text inputs.
func (m Model) shippingFromInputs() checkout.ShippingInfo {
	return checkout.ShippingInfo{
		Name:    m.checkoutInputs[fieldName].Value(),
		Email:   m.checkoutInputs[fieldEmail].Value(),
		Phone:   m.checkoutInputs[fieldPhone].Value(),
		Address: m.checkoutInputs[fieldAddress].Value(),
		City:    m.checkoutInputs[fieldCity].Value(),
		ZipCode: m.checkoutInputs[fieldZip].Value(),
	}
}

// paymentFromInputs assembles the card form from the text inputs.
func (m Model) paymentFromInputs() checkout.PaymentInfo {
	return checkout.PaymentInfo{
		CardNumber: m.checkoutInputs[fieldCardNumber].Value(),
		CardExpiry: m.checkoutInputs[fieldCardExpiry].Value(),
		CardCvc:    m.checkoutInputs[fieldCardCvc].Value(),
	}
}

// syncBookingFields pushes the current inputs into the booking form.
func (m *Model) syncBookingFields() {
	slots := booking.Slots()
	slot := ""
	if m.slotIdx >= 0 && m.slotIdx < len(slots) {
		slot = slots[m.slotIdx].Value
	}
	m.booking.SetFields(
		m.bookingInput[bkName].Value(),
		m.bookingInput[bkEmail].Value(),
		m.bookingInput[bkPhone].Value(),
		m.bookingInput[bkDate].Value(),
		slot,
		m.bookingInput[bkNotes].Value(),
	)
}

func (m *Model) resetCheckoutInputs() {
	for i := range m.checkoutInputs {
		m.checkoutInputs[i].SetValue("")
		m.checkoutInputs[i].Blur()
	}
	m.checkoutFocus = 0
}

func (m *Model) resetBookingInputs() {
	for i := range m.bookingInput {
		m.bookingInput[i].SetValue("")
		m.bookingInput[i].Blur()
	}
	m.bookingFocus = 0
	m.slotIdx = -1
}

// tick wraps tea.Tick for the simulated-latency delays.
func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
