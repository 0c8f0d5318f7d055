package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
)

// RunHandler is a custom slog.Handler that stamps every log record with the
// run ID and adds source code location to error-level records, so that
// per-attempt rejection diagnostics from a long batch can be traced back to a
// single run and call site.
type RunHandler struct {
	// The underlying handler (usually JSON)
	handler slog.Handler
	// Run ID added to every log record
	runID string
}

// NewRunHandler creates a new RunHandler that wraps a JSON handler writing to
// out, adding the run ID to each log record.
func NewRunHandler(out io.Writer, opts *slog.HandlerOptions, runID string) *RunHandler {
	var handlerOpts *slog.HandlerOptions
	if opts != nil {
		// Clone the options to avoid modifying the caller's options
		handlerOptsCopy := *opts
		handlerOpts = &handlerOptsCopy
	} else {
		handlerOpts = &slog.HandlerOptions{}
	}

	jsonHandler := slog.NewJSONHandler(out, handlerOpts)

	return &RunHandler{
		handler: jsonHandler,
		runID:   runID,
	}
}

// Enabled implements the slog.Handler interface.
func (h *RunHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *RunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RunHandler{
		handler: h.handler.WithAttrs(attrs),
		runID:   h.runID,
	}
}

// WithGroup implements the slog.Handler interface.
func (h *RunHandler) WithGroup(name string) slog.Handler {
	return &RunHandler{
		handler: h.handler.WithGroup(name),
		runID:   h.runID,
	}
}

// Handle implements the slog.Handler interface.
func (h *RunHandler) Handle(ctx context.Context, record slog.Record) error {
	// Clone the record to avoid modifying the original
	enhanced := record.Clone()

	if h.runID != "" {
		enhanced.AddAttrs(slog.String("run_id", h.runID))
	}

	// Error records carry the call site for operator diagnosis
	if record.Level >= slog.LevelError && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			enhanced.AddAttrs(
				slog.String("source_file", frame.File),
				slog.Int("source_line", frame.Line),
			)
		}
	}

	return h.handler.Handle(ctx, enhanced)
}
