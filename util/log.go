// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"context"
	"fmt"
	"io"
	"os"

	"log/slog"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

var Log *myLogger
var levelNames = map[slog.Leveler]string{
	LevelTrace: "TRACE",
	LevelFatal: "FATAL",
}

type myLogger struct {
	*slog.Logger
	addSource bool
	logLevel  *slog.LevelVar
}

func init() {
	// default logger write to stderr
	Log = new(myLogger)
	Log.logLevel = new(slog.LevelVar)
	Log.SetLevel(slog.LevelInfo)
	Log.AddSource(false)
	Log.SetOutput(os.Stderr)
}

func (l *myLogger) SetLevel(v slog.Level) {
	l.logLevel.Set(v)
}

func (l *myLogger) AddSource(add bool) {
	l.addSource = add
}

func (l *myLogger) SetOutput(w io.Writer) {
	l.Logger = slog.New(slog.NewTextHandler(w, handlerOptions(l.addSource, l.logLevel))).With("pid", os.Getpid())
	slog.SetDefault(l.Logger)
}

// Restore points the logger back at stderr.
func (l *myLogger) Restore() {
	l.SetOutput(os.Stderr)
}

func (l *myLogger) CreateLogger(w io.Writer, source bool, level slog.Level) {
	l.Logger = slog.New(slog.NewTextHandler(w, handlerOptions(source, level))).With("pid", os.Getpid())
}

// create log file based on prefix under tmp directory. such as wyrd-locale-PID.log
func (l *myLogger) CreateLogFile(prefix string) (*os.File, error) {
	name := joinPath(os.TempDir(), fmt.Sprintf("%s-%d.%s", prefix, os.Getpid(), "log"))
	file, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, err
	}

	return file, nil
}

func (l *myLogger) Trace(msg string, args ...any) {
	l.Logger.Log(context.Background(), LevelTrace, msg, args...)
}

func handlerOptions(source bool, level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		AddSource: source,
		Level:     level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				level := a.Value.Any().(slog.Level)
				levelLabel, exists := levelNames[level]
				if !exists {
					levelLabel = level.String()
				}

				a.Value = slog.StringValue(levelLabel)
			}

			return a
		},
	}
}

func joinPath(dir, name string) string {
	if len(dir) > 0 && os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
