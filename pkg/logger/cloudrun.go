package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// CloudRunHandler writes one Cloud Logging JSON entry per record. Record and
// logger attributes land under "data".
type CloudRunHandler struct {
	level slog.Level
	out   io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

// NewCloudRunHandler matches the handler factory expected by New.
func NewCloudRunHandler(level slog.Level) slog.Handler {
	return NewCloudRunHandlerTo(os.Stdout, level)
}

func NewCloudRunHandlerTo(out io.Writer, level slog.Level) *CloudRunHandler {
	return &CloudRunHandler{level: level, out: out, mu: &sync.Mutex{}}
}

func (h *CloudRunHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *CloudRunHandler) Handle(_ context.Context, r slog.Record) error {
	entry := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     r.Time.UTC().Format(time.RFC3339Nano),
	}

	data := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		put(data, a)
	}
	recordAttrs := data
	if h.group != "" && r.NumAttrs() > 0 {
		recordAttrs = map[string]any{}
		data[h.group] = recordAttrs
	}
	r.Attrs(func(a slog.Attr) bool {
		put(recordAttrs, a)
		return true
	})
	if len(data) > 0 {
		entry["data"] = data
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(line, '\n'))
	return err
}

func (h *CloudRunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	if h.group != "" {
		next.attrs = append(append([]slog.Attr{}, h.attrs...), slog.Group(h.group, attrsToAny(attrs)...))
		return &next
	}
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

// WithGroup nests record attributes under name. Only one level is kept.
func (h *CloudRunHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = name
	return &next
}

func severity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func put(into map[string]any, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return
	}
	switch v.Kind() {
	case slog.KindGroup:
		group := into
		if a.Key != "" {
			group = map[string]any{}
			into[a.Key] = group
		}
		for _, ga := range v.Group() {
			put(group, ga)
		}
	case slog.KindAny:
		// errors marshal to {} otherwise
		if err, ok := v.Any().(error); ok {
			into[a.Key] = err.Error()
			return
		}
		into[a.Key] = v.Any()
	default:
		into[a.Key] = v.Any()
	}
}

func attrsToAny(attrs []slog.Attr) []any {
	out := make([]any, len(attrs))
	for i, a := range attrs {
		out[i] = a
	}
	return out
}
