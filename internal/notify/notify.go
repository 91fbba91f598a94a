package notify

import "github.com/gen2brain/beeep"

// Notifier delivers an out-of-band alert to the user. Failures are surfaced
// to the caller, who decides whether they matter; the service treats them as
// log-worthy but never fails a request over one.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends native desktop notifications.
type Desktop struct{}

func NewDesktop() *Desktop {
	beeep.AppName = "chronline"
	return &Desktop{}
}

func (*Desktop) Notify(title, message string) error {
	return beeep.Alert(title, message, "")
}

// Nop discards notifications. The default when notifications are disabled.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }
