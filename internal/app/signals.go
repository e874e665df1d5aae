package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Hina-Kagiyama/nbterm/internal/renderer/backend"
)

// watchSignals turns SIGINT and SIGTERM into an interrupt event, which the
// loop applies as Quit. The returned func stops watching.
func (a *Application) watchSignals() func() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-signals:
			a.log.Info("signal received", "signal", sig.String())
			a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt})
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signals)
		close(done)
	}
}
