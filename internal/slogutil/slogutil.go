// SPDX-License-Identifier: MIT

// Package slogutil holds the small slog helpers shared by nputil packages.
package slogutil

import (
	"io"
	"log/slog"
)

// NewDiscardLogger returns a logger that drops every record.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // above every real level; Enabled short-circuits
	}))
}

// OrDiscard returns l, or a discard logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return NewDiscardLogger()
	}

	return l
}
