package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"coursework/internal/config"
)

// FieldSession carries the journal session id. Console output shows it
// shortened in brackets ahead of the component.
const FieldSession = "session_id"

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
}

// New constructs a slog logger. Debug level adds file:line to each record.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	addSource := level <= slog.LevelDebug

	out, err := openOutputs(opts.OutputPaths)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		return slog.New(&consoleHandler{out: &lockedWriter{w: out}, level: level, addSource: addSource}), nil
	case "json":
		return slog.New(newJSONHandler(out, level, addSource)), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
}

// NewFromConfig logs to stderr and, when a log directory is configured, to
// coursework.log inside it.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "warn"})
	}
	outputs := []string{"stderr"}
	if cfg.Paths.LogDir != "" {
		outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "coursework.log"))
	}
	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutputs(paths []string) (io.Writer, error) {
	var writers []io.Writer
	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true

		switch path {
		case "stderr":
			writers = append(writers, os.Stderr)
		case "stdout":
			writers = append(writers, os.Stdout)
		default:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("ensure log directory: %w", err)
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", path, err)
			}
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}

func newJSONHandler(w io.Writer, level slog.Level, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return attr
			}
			switch attr.Key {
			case slog.TimeKey:
				return slog.String("ts", attr.Value.Time().UTC().Format(time.RFC3339))
			case slog.LevelKey:
				return slog.String("level", strings.ToLower(attr.Value.String()))
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					return slog.String("source", sourceLabel(src.File, src.Line))
				}
			}
			return attr
		},
	})
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// consoleHandler renders one line per record:
//
//	2026-01-02T15:04:05Z WARN [1a2b3c4d] session: journal write failed record=course error="disk full"
//
// component and session_id are lifted out of the key=value tail.
type consoleHandler struct {
	out       *lockedWriter
	level     slog.Level
	addSource bool

	component string
	session   string
	group     string
	tail      []byte
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	fields := *h
	fields.tail = append([]byte(nil), h.tail...)
	record.Attrs(func(attr slog.Attr) bool {
		fields.addAttr(h.group, attr)
		return true
	})

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	line := make([]byte, 0, 96+len(fields.tail))
	line = ts.UTC().AppendFormat(line, time.RFC3339)
	line = append(line, ' ')
	line = append(line, record.Level.String()...)
	if fields.session != "" {
		line = append(line, " ["...)
		line = append(line, shortSession(fields.session)...)
		line = append(line, ']')
	}
	line = append(line, ' ')
	if fields.component != "" {
		line = append(line, fields.component...)
		line = append(line, ": "...)
	}
	line = append(line, record.Message...)
	if h.addSource && record.PC != 0 {
		if src := record.Source(); src != nil {
			line = append(line, " ["...)
			line = append(line, sourceLabel(src.File, src.Line)...)
			line = append(line, ']')
		}
	}
	line = append(line, fields.tail...)
	line = append(line, '\n')

	_, err := h.out.Write(line)
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.tail = append([]byte(nil), h.tail...)
	for _, attr := range attrs {
		clone.addAttr(h.group, attr)
	}
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = joinKey(h.group, name)
	return &clone
}

func (h *consoleHandler) addAttr(group string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		for _, member := range value.Group() {
			h.addAttr(joinKey(group, attr.Key), member)
		}
		return
	}
	if attr.Key == "" {
		return
	}
	if group == "" {
		switch attr.Key {
		case FieldComponent:
			h.component = value.String()
			return
		case FieldSession:
			h.session = value.String()
			return
		}
	}
	h.tail = append(h.tail, ' ')
	h.tail = append(h.tail, joinKey(group, attr.Key)...)
	h.tail = append(h.tail, '=')
	h.tail = appendValue(h.tail, value)
}

func appendValue(dst []byte, value slog.Value) []byte {
	var s string
	switch value.Kind() {
	case slog.KindTime:
		s = value.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := value.Any().(error); ok {
			s = err.Error()
		} else {
			s = value.String()
		}
	default:
		s = value.String()
	}
	if s == "" || strings.ContainsAny(s, " =\"\t\r\n") {
		return strconv.AppendQuote(dst, s)
	}
	return append(dst, s...)
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func sourceLabel(file string, line int) string {
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
