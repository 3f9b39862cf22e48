package storagesafe

import "go.uber.org/zap"

// zapLogger adapts a zap.Logger to the Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger returns a Logger backed by the given zap logger, so
// applications can route storage logs through their production logging
// setup via WithLogger.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Info(format string, args ...interface{})  { z.sugar.Infof(format, args...) }
func (z *zapLogger) Warn(format string, args ...interface{})  { z.sugar.Warnf(format, args...) }
func (z *zapLogger) Error(format string, args ...interface{}) { z.sugar.Errorf(format, args...) }
func (z *zapLogger) Debug(format string, args ...interface{}) { z.sugar.Debugf(format, args...) }
