package sig

import (
	"os"
	"os/signal"
	"syscall"
)

var termSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT}

// TermSignals returns a channel notified on process termination requests.
func TermSignals() <-chan os.Signal {
	ch := make(chan os.Signal, len(termSignals))
	signal.Notify(ch, termSignals...)
	return ch
}
