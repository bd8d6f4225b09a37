package worker

import (
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/dtroode/files-manager/internal/logger"
)

var _ asynq.Logger = (*AsynqLogger)(nil)

// AsynqLogger routes asynq's internal logs through the application logger.
type AsynqLogger struct {
	logger *logger.Logger
}

func NewAsynqLogger(logger *logger.Logger) *AsynqLogger {
	return &AsynqLogger{logger: logger.With("component", "asynq")}
}

func (l *AsynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *AsynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *AsynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *AsynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *AsynqLogger) Fatal(args ...interface{}) {
	l.logger.Fatal(fmt.Sprint(args...))
}
