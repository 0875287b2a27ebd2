// Package checkout implements the three-step checkout wizard: shipping info,
// payment details, confirmation. Steps only advance on successful validation;
// payment "processing" is a simulated delay owned by the caller.
package checkout

import (
	"fmt"
	"strings"

	"bakerra/internal/notify"
)

// Step is the wizard phase.
type Step int

const (
	StepShipping Step = iota
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// ShippingInfo is the delivery form. Name, Email, Phone and Address are
// required; City and ZipCode are carried but optional.
type ShippingInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	ZipCode string
}

// PaymentInfo is the card form. All three fields are required. No format or
// Luhn validation is performed: payment is simulated end to end.
type PaymentInfo struct {
	CardNumber string
	CardExpiry string
	CardCvc    string
}

// Notification copy, matching the storefront's wording.
const (
	msgShippingIncomplete = "Please fill in all shipping details"
	msgPaymentIncomplete  = "Please enter valid payment details"
	msgOrderPlaced        = "Order placed successfully! You'll receive a confirmation email shortly."
)

// ValidationError reports which required fields were blank. It is recoverable:
// the step does not change and the user can resubmit.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (missing: %s)", e.Message, strings.Join(e.Missing, ", "))
}

// ErrProcessing is returned when payment is submitted while a previous
// submission is still in its simulated processing window.
var ErrProcessing = &ValidationError{Message: "payment already processing"}

// Session is one checkout flow. It is created when the checkout modal opens
// and reset when the modal closes or the order completes. Not safe for
// concurrent use: it lives on the UI event loop.
type Session struct {
	step       Step
	shipping   ShippingInfo
	payment    PaymentInfo
	processing bool

	// epoch invalidates in-flight processing timers across resets, so a
	// timer scheduled before the modal closed cannot touch the next session.
	epoch int

	notifier *notify.Broadcaster
}

// NewSession creates a session at the shipping step.
func NewSession(notifier *notify.Broadcaster) *Session {
	return &Session{notifier: notifier}
}

// Step returns the current wizard phase.
func (s *Session) Step() Step { return s.step }

// Processing reports whether the simulated payment delay is running.
// The submit control is disabled while this is true.
func (s *Session) Processing() bool { return s.processing }

// Shipping returns the entered delivery details.
func (s *Session) Shipping() ShippingInfo { return s.shipping }

// Payment returns the entered card details.
func (s *Session) Payment() PaymentInfo { return s.payment }

// SubmitShipping validates the delivery form and advances to the payment
// step. On failure a warning notification is published and the step holds.
func (s *Session) SubmitShipping(info ShippingInfo) error {
	if s.step != StepShipping {
		return fmt.Errorf("submit shipping in step %s", s.step)
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", info.Name},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address", info.Address},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		s.warn(msgShippingIncomplete)
		return &ValidationError{Message: msgShippingIncomplete, Missing: missing}
	}

	s.shipping = info
	s.step = StepPayment
	return nil
}

// SubmitPayment validates the card form and enters the processing state.
// It returns the epoch the caller must pass to FinishProcessing after the
// simulated delay elapses. On validation failure a warning notification is
// published and the step holds.
func (s *Session) SubmitPayment(info PaymentInfo) (int, error) {
	if s.step != StepPayment {
		return 0, fmt.Errorf("submit payment in step %s", s.step)
	}
	if s.processing {
		return 0, ErrProcessing
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"cardNumber", info.CardNumber},
		{"cardExpiry", info.CardExpiry},
		{"cardCvc", info.CardCvc},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		s.warn(msgPaymentIncomplete)
		return 0, &ValidationError{Message: msgPaymentIncomplete, Missing: missing}
	}

	s.payment = info
	s.processing = true
	return s.epoch, nil
}

// FinishProcessing completes a payment submission. It reports false when the
// epoch is stale: the session was reset (modal closed) after the timer was
// scheduled, and the timer's effect is discarded.
func (s *Session) FinishProcessing(epoch int) bool {
	if epoch != s.epoch || !s.processing {
		return false
	}
	s.processing = false
	s.step = StepConfirmation
	return true
}

// Back returns from payment to shipping without clearing entered data.
func (s *Session) Back() {
	if s.step == StepPayment && !s.processing {
		s.step = StepShipping
	}
}

// Finish completes the flow from the confirmation step: publishes the order
// success notification and resets for the next checkout.
func (s *Session) Finish() {
	if s.step != StepConfirmation {
		return
	}
	if s.notifier != nil {
		s.notifier.Publish(msgOrderPlaced, notify.TypeSuccess, notify.DefaultDuration)
	}
	s.reset()
}

// Close abandons the flow: all fields clear and the step returns to shipping.
// Any in-flight processing timer becomes stale.
func (s *Session) Close() {
	s.reset()
}

func (s *Session) reset() {
	s.step = StepShipping
	s.shipping = ShippingInfo{}
	s.payment = PaymentInfo{}
	s.processing = false
	s.epoch++
}

func (s *Session) warn(msg string) {
	if s.notifier != nil {
		s.notifier.Publish(msg, notify.TypeWarning, notify.DefaultDuration)
	}
}
