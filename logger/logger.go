// seehuhn.de/go/pdfedit - in-memory editing of PDF object graphs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger defines the log function used by pdfedit documents.
//
// The library never writes log output by itself.  Instead, a [LogFunc] can
// be installed in the document configuration; the default, [Discard],
// drops all messages.  [Slog] adapts a [log/slog.Logger].
package logger

import (
	"context"
	"log/slog"
)

// LogLevel represents log severity.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	ErrorLevel LogLevel = "error"
)

// LogFunc is a single logger function that handles all levels.
// The keyvals alternate between keys (strings) and values.
type LogFunc func(level LogLevel, msg string, keyvals ...any)

// Discard is a LogFunc which ignores all messages.
func Discard(LogLevel, string, ...any) {}

// Slog returns a LogFunc which forwards messages to l.
func Slog(l *slog.Logger) LogFunc {
	if l == nil {
		return Discard
	}
	return func(level LogLevel, msg string, keyvals ...any) {
		l.Log(context.Background(), level.slogLevel(), msg, keyvals...)
	}
}

func (level LogLevel) slogLevel() slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
