// Package logrus adapts a *logrus.Entry to fieldcodec.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/fieldcodec"
)

var _ fieldcodec.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New wraps e. A nil e logs through the logrus standard logger.
func New(e *logrus.Entry) LogrusLogger {
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	return LogrusLogger{E: e}
}

func (l LogrusLogger) Debug(msg string, f fieldcodec.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f fieldcodec.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f fieldcodec.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f fieldcodec.Fields) { l.with(f).Error(msg) }

// with moves an "err" field to logrus.ErrorKey so hooks and formatters treat
// it as the entry's error.
func (l LogrusLogger) with(f fieldcodec.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	lf := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			lf[logrus.ErrorKey] = err
			continue
		}
		lf[k] = v
	}
	return l.E.WithFields(lf)
}
