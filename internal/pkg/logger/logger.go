package logger

import (
	"context"

	"go.uber.org/zap"
)

var global *zap.SugaredLogger

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	global = l.Sugar()
}

// Init заменяет глобальный логгер (вызывается из main).
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func Debugf(_ context.Context, format string, args ...interface{}) {
	global.Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	global.Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	global.Errorf(format, args...)
}

func Error(_ context.Context, args ...interface{}) {
	global.Error(args...)
}

func Fatal(_ context.Context, args ...interface{}) {
	global.Fatal(args...)
}
