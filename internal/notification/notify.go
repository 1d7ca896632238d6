package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

type Notifier interface {
	Notify(message string, v ...any)
}

type BeepDecorator struct {
	Title string
}

func (b BeepDecorator) Notify(message string, v ...any) {
	beeep.Notify(b.Title, fmt.Sprintf(message, v...), "")
}

type NullNotifier struct{}

func (n NullNotifier) Notify(string, ...any) {}

// New returns a desktop notifier when enabled, a silent one otherwise.
func New(enabled bool, title string) Notifier {
	if enabled {
		return BeepDecorator{Title: title}
	}
	return NullNotifier{}
}
