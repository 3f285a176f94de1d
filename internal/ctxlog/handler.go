// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/humantalk"
)

// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
var ErrMarshalAttribute = errors.New("error when marshaling attribute")

var jsonFormatter = colorjson.NewFormatter()

func init() {
	// The whole line is colored by humantalk; nested escapes would reset it.
	jsonFormatter.DisabledColor = true
	jsonFormatter.Indent = 0
}

// Handler is a slog handler that writes each record as a single humantalk line:
// "[<severity>] <message> <attributes as JSON>".
type Handler struct {
	h                slog.Handler
	b                *bytes.Buffer
	m                *sync.Mutex
	cfg              *humantalk.Config
	outputEmptyAttrs bool
}

// SeverityFor maps a slog level onto the nearest humantalk severity.
func SeverityFor(level slog.Level) humantalk.Severity {
	switch {
	case level >= slog.LevelError:
		return humantalk.Error
	case level >= slog.LevelWarn:
		return humantalk.Warning
	case level >= slog.LevelInfo:
		return humantalk.Info
	default:
		return humantalk.Debug
	}
}

// Enabled checks if the handler is enabled for the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{h: h.h.WithAttrs(attrs), b: h.b, m: h.m, cfg: h.cfg, outputEmptyAttrs: h.outputEmptyAttrs}
}

// WithGroup creates a new handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{h: h.h.WithGroup(name), b: h.b, m: h.m, cfg: h.cfg, outputEmptyAttrs: h.outputEmptyAttrs}
}

// computeAttrs runs the record through the inner JSON handler, which applies
// groups, WithAttrs and ReplaceAttr, and decodes the result.
func (h *Handler) computeAttrs(ctx context.Context, r slog.Record) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	if err := json.Unmarshal(h.b.Bytes(), &attrs); err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	line := r.Message

	if h.outputEmptyAttrs || len(attrs) > 0 {
		b, err := jsonFormatter.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}

		line += " " + string(b)
	}

	h.cfg.Write(SeverityFor(r.Level), line)

	return nil
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}

// NewHandler creates a Handler that writes through cfg.
// A nil cfg uses humantalk.Default().
func NewHandler(cfg *humantalk.Config, handlerOptions *slog.HandlerOptions, options ...Option) *Handler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	if cfg == nil {
		cfg = humantalk.Default()
	}

	buf := &bytes.Buffer{}
	handler := &Handler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		m:   &sync.Mutex{},
		cfg: cfg,
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

// Option implements a functional options pattern for Handler.
type Option func(h *Handler)

// WithOutputEmptyAttrs prints "{}" for records without attributes.
func WithOutputEmptyAttrs() Option {
	return func(h *Handler) {
		h.outputEmptyAttrs = true
	}
}
