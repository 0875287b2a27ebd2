package shop

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"bakerra/internal/config"
	"bakerra/internal/notify"
)

// Run wires the storefront together and blocks until the user quits.
// configPath may be empty, in which case defaults are used and no
// watcher is started.
func Run(configPath string, log *zap.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Warn("config load failed, using defaults", zap.Error(err))
		}
		cfg = loaded
	}

	notifier := notify.New(log)
	defer notifier.Close()

	p := tea.NewProgram(New(cfg, notifier, log), tea.WithAltScreen())

	// The broadcaster runs subscribers on its own goroutines (publish
	// callers and dismiss timers), so deliveries are forwarded into the
	// program's message loop.
	unsubscribe := notifier.Subscribe(func(active []notify.Notification) {
		p.Send(toastsMsg(active))
	})
	defer unsubscribe()

	if configPath != "" {
		w, err := config.NewWatcher(configPath, func(next config.Config) {
			p.Send(configReloadedMsg(next))
		}, log)
		if err != nil {
			log.Warn("config watcher unavailable", zap.Error(err))
		} else if err := w.Start(); err != nil {
			log.Warn("config watcher failed to start", zap.Error(err))
		} else {
			defer w.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("storefront exited: %w", err)
	}
	return nil
}
