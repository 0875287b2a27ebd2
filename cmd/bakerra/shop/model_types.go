package shop

import (
	"bakerra/internal/config"
	"bakerra/internal/notify"
)

// ViewMode determines which surface is focused/active. Browse is the page;
// the others are modal overlays, one at a time.
type ViewMode int

const (
	BrowseView ViewMode = iota
	CartView
	CheckoutView
	BookingView
	ChatView
)

// Checkout form field indexes. Shipping fields first, then payment fields;
// each step focuses its own slice of inputs.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldAddress
	fieldCity
	fieldZip
	fieldCardNumber
	fieldCardExpiry
	fieldCardCvc
	numCheckoutFields
)

const (
	shippingFieldCount = 6 // name..zip
	paymentFieldStart  = fieldCardNumber
	paymentFieldCount  = 3
)

// Booking form field indexes. Date and time sit between phone and notes,
// matching the form's visual order.
const (
	bkName = iota
	bkEmail
	bkPhone
	bkDate
	bkTime // slot selector, not a text input
	bkNotes
	numBookingFields
)

// toastsMsg carries the broadcaster's latest sequence into the UI loop.
type toastsMsg []notify.Notification

// configReloadedMsg delivers tunables re-read by the file watcher.
type configReloadedMsg config.Config

// processingDoneMsg fires when the simulated payment delay elapses.
type processingDoneMsg struct{ epoch int }

// bookingDoneMsg fires when the simulated booking submission delay elapses.
type bookingDoneMsg struct{ epoch int }

// chatReplyMsg fires when the simulated bot reply delay elapses.
type chatReplyMsg struct{ epoch int }
