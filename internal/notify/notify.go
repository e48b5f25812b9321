package notify

// Notifier shows a short-lived message to the user. Implementations must not
// block the caller; the message only has to become visible eventually.
type Notifier interface {
	Notify(message string, severity Severity)
}

// NotifierFunc adapts a plain function to Notifier
type NotifierFunc func(message string, severity Severity)

// Notify calls f
func (f NotifierFunc) Notify(message string, severity Severity) {
	f(message, severity)
}

// Success shows m as a success toast
func Success(n Notifier, m string) { send(n, m, SeveritySuccess) }

// Warning shows m as a warning toast
func Warning(n Notifier, m string) { send(n, m, SeverityWarning) }

// Failure shows m as a failure toast
func Failure(n Notifier, m string) { send(n, m, SeverityFailure) }

func send(n Notifier, m string, severity Severity) {
	if n == nil {
		return
	}
	n.Notify(m, severity)
}

// Multi returns a Notifier that forwards every message to each of notifiers in order
func Multi(notifiers ...Notifier) Notifier {
	list := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			list = append(list, n)
		}
	}
	return multi(list)
}

type multi []Notifier

func (m multi) Notify(message string, severity Severity) {
	for _, n := range m {
		n.Notify(message, severity)
	}
}
