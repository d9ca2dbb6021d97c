// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger provides the process-wide structured logger used by the CLI
// and the trial store. The evaluation engine itself never logs.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It writes JSON to stderr at info level until
// Init is called.
var Log = newLogger(os.Stderr, logrus.InfoLevel)

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	l.SetLevel(level)
	return l
}

// Init replaces Log with a logger writing to w at the named level. An empty
// or unknown level falls back to info.
func Init(level string, w io.Writer) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Log = newLogger(w, logLevel)
}

func WithField(key string, value any) *logrus.Entry {
	return Log.WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}
