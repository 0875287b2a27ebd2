// Package booking implements the reservation form: a single-step flow with
// three mutually exclusive booking kinds, required-field validation, a
// tomorrow-or-later date constraint and a simulated submission delay.
package booking

import (
	"fmt"
	"strings"
	"time"

	"bakerra/internal/notify"
)

// Kind selects what the booking is for. Switching kinds changes labels and
// the confirmation wording only; the entered fields are kind-independent.
type Kind int

const (
	KindPreOrder Kind = iota
	KindCustom
	KindPickUp
)

// Kinds lists the tabs in display order.
var Kinds = []Kind{KindPreOrder, KindCustom, KindPickUp}

// TabLabel is the short name shown on the kind selector.
func (k Kind) TabLabel() string {
	switch k {
	case KindPreOrder:
		return "Pre-Order"
	case KindCustom:
		return "Custom"
	case KindPickUp:
		return "Pick-up"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// confirmLabel is the wording used in the submission confirmation message.
func (k Kind) confirmLabel() string {
	switch k {
	case KindPreOrder:
		return "Pre-order"
	case KindCustom:
		return "Custom order"
	case KindPickUp:
		return "Pick-up"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Description is the explanatory text shown above the form.
func (k Kind) Description() string {
	switch k {
	case KindPreOrder:
		return "Reserve your favorite items in advance and pick them up fresh on your chosen date."
	case KindCustom:
		return "Create a custom order for special occasions. We'll contact you to finalize details."
	case KindPickUp:
		return "Schedule a convenient time to pick up your items from our location."
	}
	return ""
}

// Slot is one selectable pick-up time.
type Slot struct {
	Value string // 24h form used in the booking request
	Label string // display form
}

// Slots returns the bookable times in display order.
func Slots() []Slot {
	return []Slot{
		{"09:00", "9:00 AM"},
		{"10:00", "10:00 AM"},
		{"11:00", "11:00 AM"},
		{"12:00", "12:00 PM"},
		{"14:00", "2:00 PM"},
		{"15:00", "3:00 PM"},
		{"16:00", "4:00 PM"},
		{"17:00", "5:00 PM"},
		{"18:00", "6:00 PM"},
	}
}

// DateLayout is the wire form of the booking date.
const DateLayout = "2006-01-02"

// MinDate returns the earliest bookable date: the day after now, midnight.
func MinDate(now time.Time) time.Time {
	t := now.AddDate(0, 0, 1)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

const (
	msgFieldsIncomplete = "Please fill in all required fields"
	msgDateTooEarly     = "Please choose a date no earlier than tomorrow"
)

// ValidationError reports why a submission was rejected. Recoverable: the
// form stays open with its entered values.
type ValidationError struct {
	Message string
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (missing: %s)", e.Message, strings.Join(e.Missing, ", "))
}

// ErrSubmitting is returned when the form is submitted while a previous
// submission is still in its simulated delay.
var ErrSubmitting = &ValidationError{Message: "booking already submitting"}

// Request is the entered booking data.
type Request struct {
	Kind  Kind
	Name  string
	Email string
	Phone string
	Date  string // DateLayout
	Time  string // a Slot value
	Notes string
}

// Form is one booking flow. Created fresh when the modal opens, discarded on
// close or successful submission. Lives on the UI event loop; not safe for
// concurrent use.
type Form struct {
	req        Request
	submitting bool
	epoch      int

	notifier *notify.Broadcaster
}

// NewForm creates an empty form with the given kind preselected.
func NewForm(kind Kind, notifier *notify.Broadcaster) *Form {
	return &Form{req: Request{Kind: kind}, notifier: notifier}
}

// Request returns the current form contents.
func (f *Form) Request() Request { return f.req }

// Submitting reports whether the simulated submission delay is running.
// The submit control is disabled while this is true.
func (f *Form) Submitting() bool { return f.submitting }

// SetKind switches the booking kind. Shared fields are preserved.
func (f *Form) SetKind(k Kind) { f.req.Kind = k }

// SetFields replaces the entered values, keeping the current kind.
func (f *Form) SetFields(name, email, phone, date, timeSlot, notes string) {
	f.req.Name = name
	f.req.Email = email
	f.req.Phone = phone
	f.req.Date = date
	f.req.Time = timeSlot
	f.req.Notes = notes
}

// DateAllowed reports whether the date string satisfies the picker
// constraint: parseable and no earlier than tomorrow. Exactly tomorrow is
// allowed.
func DateAllowed(date string, now time.Time) bool {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	return !d.Before(MinDate(now))
}

// Submit validates the form and enters the submitting state. It returns the
// epoch the caller must pass to FinishSubmit after the simulated delay. On
// failure a warning notification is published and the form stays open.
func (f *Form) Submit(now time.Time) (int, error) {
	if f.submitting {
		return 0, ErrSubmitting
	}

	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", f.req.Name},
		{"email", f.req.Email},
		{"phone", f.req.Phone},
		{"date", f.req.Date},
		{"time", f.req.Time},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		f.warn(msgFieldsIncomplete)
		return 0, &ValidationError{Message: msgFieldsIncomplete, Missing: missing}
	}

	if !DateAllowed(f.req.Date, now) {
		f.warn(msgDateTooEarly)
		return 0, &ValidationError{Message: msgDateTooEarly}
	}

	f.submitting = true
	return f.epoch, nil
}

// FinishSubmit completes a submission: publishes the kind- and
// phone-parameterized confirmation and clears the form. It reports false when
// the epoch is stale (the form was reset while the timer was in flight).
func (f *Form) FinishSubmit(epoch int) bool {
	if epoch != f.epoch || !f.submitting {
		return false
	}

	msg := fmt.Sprintf("%s confirmed! We'll contact you at %s to confirm details.",
		f.req.Kind.confirmLabel(), f.req.Phone)
	if f.notifier != nil {
		f.notifier.Publish(msg, notify.TypeSuccess, notify.DefaultDuration)
	}

	kind := f.req.Kind
	f.req = Request{Kind: kind}
	f.submitting = false
	f.epoch++
	return true
}

// Close abandons the flow; any in-flight submission timer becomes stale.
func (f *Form) Close() {
	kind := f.req.Kind
	f.req = Request{Kind: kind}
	f.submitting = false
	f.epoch++
}

func (f *Form) warn(msg string) {
	if f.notifier != nil {
		f.notifier.Publish(msg, notify.TypeWarning, notify.DefaultDuration)
	}
}
