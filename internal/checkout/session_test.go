package checkout

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"bakerra/internal/notify"
)

func validShipping() ShippingInfo {
	return ShippingInfo{
		Name:    "Jordan Baker",
		Email:   "jordan@example.com",
		Phone:   "(555) 123-4567",
		Address: "123 Main Street",
	}
}

func validPayment() PaymentInfo {
	return PaymentInfo{
		CardNumber: "4242 4242 4242 4242",
		CardExpiry: "12/27",
		CardCvc:    "123",
	}
}

func newTestSession(t *testing.T) (*Session, *notify.Broadcaster) {
	t.Helper()
	b := notify.New(zap.NewNop())
	t.Cleanup(b.Close)
	return NewSession(b), b
}

func TestShippingValidationHoldsStep(t *testing.T) {
	tests := []struct {
		name string
		info ShippingInfo
	}{
		{"all blank", ShippingInfo{}},
		{"missing name", ShippingInfo{Email: "a@b.c", Phone: "1", Address: "x"}},
		{"missing email", ShippingInfo{Name: "a", Phone: "1", Address: "x"}},
		{"missing phone", ShippingInfo{Name: "a", Email: "a@b.c", Address: "x"}},
		{"missing address", ShippingInfo{Name: "a", Email: "a@b.c", Phone: "1"}},
		{"whitespace only", ShippingInfo{Name: "  ", Email: "a@b.c", Phone: "1", Address: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, b := newTestSession(t)
			err := s.SubmitShipping(tt.info)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if s.Step() != StepShipping {
				t.Fatalf("step advanced to %s on invalid shipping", s.Step())
			}

			seq := b.Notifications()
			if len(seq) != 1 || seq[0].Type != notify.TypeWarning {
				t.Fatalf("expected one warning notification, got %+v", seq)
			}
		})
	}
}

func TestShippingOptionalFieldsNotRequired(t *testing.T) {
	s, _ := newTestSession(t)
	info := validShipping() // no city, no zip
	if err := s.SubmitShipping(info); err != nil {
		t.Fatalf("SubmitShipping: %v", err)
	}
	if s.Step() != StepPayment {
		t.Fatalf("step = %s, want payment", s.Step())
	}
	if s.Shipping() != info {
		t.Fatalf("shipping info not stored: %+v", s.Shipping())
	}
}

func TestPaymentValidationHoldsStep(t *testing.T) {
	s, b := newTestSession(t)
	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("SubmitShipping: %v", err)
	}

	if _, err := s.SubmitPayment(PaymentInfo{CardNumber: "4242"}); err == nil {
		t.Fatal("SubmitPayment accepted incomplete card details")
	}
	if s.Step() != StepPayment {
		t.Fatalf("step = %s, want payment", s.Step())
	}
	if s.Processing() {
		t.Fatal("processing set despite validation failure")
	}

	seq := b.Notifications()
	if len(seq) != 1 || seq[0].Message != msgPaymentIncomplete {
		t.Fatalf("expected payment warning, got %+v", seq)
	}
}

func TestHappyPathReachesConfirmationOnce(t *testing.T) {
	s, b := newTestSession(t)
	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("SubmitShipping: %v", err)
	}

	epoch, err := s.SubmitPayment(validPayment())
	if err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}
	if !s.Processing() {
		t.Fatal("processing flag not set after payment submit")
	}

	// Submitting again while processing is rejected.
	if _, err := s.SubmitPayment(validPayment()); !errors.Is(err, ErrProcessing) {
		t.Fatalf("second submit err = %v, want ErrProcessing", err)
	}

	if !s.FinishProcessing(epoch) {
		t.Fatal("FinishProcessing rejected the live epoch")
	}
	if s.Step() != StepConfirmation {
		t.Fatalf("step = %s, want confirmation", s.Step())
	}

	// The same timer firing twice must not re-confirm.
	if s.FinishProcessing(epoch) {
		t.Fatal("FinishProcessing succeeded twice for one submission")
	}

	s.Finish()
	if s.Step() != StepShipping {
		t.Fatalf("step after finish = %s, want shipping", s.Step())
	}
	if s.Shipping() != (ShippingInfo{}) || s.Payment() != (PaymentInfo{}) {
		t.Fatal("fields not cleared after finish")
	}

	seq := b.Notifications()
	if len(seq) != 1 || seq[0].Type != notify.TypeSuccess {
		t.Fatalf("expected order success notification, got %+v", seq)
	}
}

func TestBackPreservesData(t *testing.T) {
	s, _ := newTestSession(t)
	info := validShipping()
	if err := s.SubmitShipping(info); err != nil {
		t.Fatalf("SubmitShipping: %v", err)
	}

	s.Back()
	if s.Step() != StepShipping {
		t.Fatalf("step after back = %s, want shipping", s.Step())
	}
	if s.Shipping() != info {
		t.Fatal("back cleared entered shipping data")
	}

	// Forward again without retyping.
	if err := s.SubmitShipping(s.Shipping()); err != nil {
		t.Fatalf("resubmit after back: %v", err)
	}
}

func TestCloseDiscardsInFlightProcessing(t *testing.T) {
	s, b := newTestSession(t)
	if err := s.SubmitShipping(validShipping()); err != nil {
		t.Fatalf("SubmitShipping: %v", err)
	}
	epoch, err := s.SubmitPayment(validPayment())
	if err != nil {
		t.Fatalf("SubmitPayment: %v", err)
	}

	s.Close() // modal closed before the processing timer fired

	if s.FinishProcessing(epoch) {
		t.Fatal("stale timer mutated a closed session")
	}
	if s.Step() != StepShipping || s.Processing() {
		t.Fatalf("session not reset: step=%s processing=%v", s.Step(), s.Processing())
	}
	if seq := b.Notifications(); len(seq) != 0 {
		t.Fatalf("close published notifications: %+v", seq)
	}
}

func TestFinishOutsideConfirmationNoOps(t *testing.T) {
	s, b := newTestSession(t)
	s.Finish()
	if s.Step() != StepShipping {
		t.Fatalf("step = %s", s.Step())
	}
	if seq := b.Notifications(); len(seq) != 0 {
		t.Fatalf("premature finish published: %+v", seq)
	}
}
