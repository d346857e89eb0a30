// Package logging builds the context-carried logger used across the tool.
package logging

import (
	"context"
	"io"

	"github.com/facebookincubator/go-belt/tool/logger"
	xlogrus "github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/sirupsen/logrus"
)

// New returns a logrus-backed logger writing text records to out.
func New(out io.Writer, level logger.Level) logger.Logger {
	ll := logrus.New()
	ll.SetOutput(out)
	ll.SetLevel(xlogrus.LevelToLogrus(level))
	ll.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return xlogrus.New(ll).WithLevel(level)
}

// Attach installs l as both the context logger and the process default.
func Attach(ctx context.Context, l logger.Logger) context.Context {
	logger.Default = func() logger.Logger {
		return l
	}
	return logger.CtxWithLogger(ctx, l)
}
