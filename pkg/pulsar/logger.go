package pulsar

import (
	"context"
	"fmt"

	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"

	"github.com/parkplatztransform/parkapi/pkg/log"
)

// loggerAdapter exposes the service logger through the pulsar client's
// logging interface. Client internals carry no request context, so entries
// log against the background context.
type loggerAdapter struct {
	logger log.Logger
}

func newLoggerAdapter(logger log.Logger) pulsarlog.Logger {
	return loggerAdapter{logger}
}

func (l loggerAdapter) SubLogger(fields pulsarlog.Fields) pulsarlog.Logger {
	return loggerAdapter{l.logger.With(log.Fields(fields))}
}

func (l loggerAdapter) WithFields(fields pulsarlog.Fields) pulsarlog.Entry {
	return loggerAdapter{l.logger.With(log.Fields(fields))}
}

func (l loggerAdapter) WithField(name string, value any) pulsarlog.Entry {
	return loggerAdapter{l.logger.WithField(name, value)}
}

func (l loggerAdapter) WithError(err error) pulsarlog.Entry {
	return loggerAdapter{l.logger.WithError(err)}
}

func (l loggerAdapter) Debug(args ...any) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l loggerAdapter) Info(args ...any) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l loggerAdapter) Warn(args ...any) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l loggerAdapter) Error(args ...any) {
	l.logger.Error(context.Background(), fmt.Sprint(args...))
}

func (l loggerAdapter) Debugf(format string, args ...any) {
	l.logger.Debug(context.Background(), fmt.Sprintf(format, args...))
}

func (l loggerAdapter) Infof(format string, args ...any) {
	l.logger.Info(context.Background(), fmt.Sprintf(format, args...))
}

func (l loggerAdapter) Warnf(format string, args ...any) {
	l.logger.Warn(context.Background(), fmt.Sprintf(format, args...))
}

func (l loggerAdapter) Errorf(format string, args ...any) {
	l.logger.Error(context.Background(), fmt.Sprintf(format, args...))
}
