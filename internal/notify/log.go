package notify

import (
	"github.com/sirupsen/logrus"
)

// LogNotifier writes notifications to a logrus logger instead of the screen.
// Failures log at error level, warnings at warn level, the rest at info.
type LogNotifier struct {
	log logrus.FieldLogger
}

// NewLogNotifier creates a LogNotifier. A nil logger means the standard logger.
func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogNotifier{log: log.WithField("component", "notify")}
}

// Notify logs message tagged with its severity
func (l *LogNotifier) Notify(message string, severity Severity) {
	entry := l.log.WithField("severity", severity.String())

	switch severity {
	case SeverityFailure:
		entry.Error(message)
	case SeverityWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}
