// Copyright 2024 The Corechain Authors
// This file is part of Corechain.
//
// Corechain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Corechain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Corechain. If not, see <http://www.gnu.org/licenses/>.

// Package log provides the structured, component-scoped logger used across
// the core, in a key-value calling convention:
//
//	log.Info("canonical head updated", "number", 12, "hash", h)
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = mustBuild()

func mustBuild() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "t"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Fall back to a no-op logger rather than panicking at import time.
		l = zap.NewNop()
	}
	return l.Sugar()
}

// Logger is a component-scoped sink; Name() tags every record with the
// owning component (e.g. "chainmanager", "txpool").
type Logger struct {
	sugar *zap.SugaredLogger
	name  string
}

// New returns a Logger scoped to component.
func New(component string) Logger {
	return Logger{sugar: root.With("component", component), name: component}
}

func (l Logger) Name() string { return l.name }

func (l Logger) Debug(msg string, keyvals ...any) { l.sugar.Debugw(msg, keyvals...) }
func (l Logger) Info(msg string, keyvals ...any)  { l.sugar.Infow(msg, keyvals...) }
func (l Logger) Warn(msg string, keyvals ...any)  { l.sugar.Warnw(msg, keyvals...) }
func (l Logger) Error(msg string, keyvals ...any) { l.sugar.Errorw(msg, keyvals...) }

// Package-level helpers for call sites that don't hold a scoped Logger.
func Debug(msg string, keyvals ...any) { root.Debugw(msg, keyvals...) }
func Info(msg string, keyvals ...any)  { root.Infow(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { root.Warnw(msg, keyvals...) }
func Error(msg string, keyvals ...any) { root.Errorw(msg, keyvals...) }
