// Package config holds the storefront tunables: the delivery fee and the
// simulated-latency delays. Values load from an optional YAML file and fall
// back to the documented defaults; a watcher re-loads the file when it
// changes so tunables can be adjusted while the storefront runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"bakerra/internal/money"
)

// Duration parses YAML values like "1500ms" or "4s" into a time.Duration.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config is the full set of tunables.
type Config struct {
	// DeliveryFee is the flat fee added to any non-empty cart.
	DeliveryFee money.Amount `yaml:"delivery_fee"`

	// NotificationDuration is the toast auto-dismiss time.
	NotificationDuration Duration `yaml:"notification_duration"`

	// PaymentProcessingDelay is the simulated latency between payment
	// submission and order confirmation.
	PaymentProcessingDelay Duration `yaml:"payment_processing_delay"`

	// BookingSubmitDelay is the simulated latency before a booking confirms.
	BookingSubmitDelay Duration `yaml:"booking_submit_delay"`

	// ChatReplyDelay is the simulated latency before the bot reply appears.
	ChatReplyDelay Duration `yaml:"chat_reply_delay"`

	// BookingLeadTime is how far ahead the earliest bookable date lies.
	BookingLeadTime Duration `yaml:"booking_lead_time"`
}

// Default returns the storefront's stock tunables.
func Default() Config {
	return Config{
		DeliveryFee:            money.Cents(399),
		NotificationDuration:   Duration(4 * time.Second),
		PaymentProcessingDelay: Duration(1500 * time.Millisecond),
		BookingSubmitDelay:     Duration(time.Second),
		ChatReplyDelay:         Duration(500 * time.Millisecond),
		BookingLeadTime:        Duration(24 * time.Hour),
	}
}

// Load reads tunables from the YAML file at path, layered over the defaults.
// A missing file is not an error: the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
