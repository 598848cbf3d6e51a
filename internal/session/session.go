package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"coursework/internal/course"
	"coursework/internal/logging"
	"coursework/internal/messages"
)

// Recorder persists session events.
type Recorder interface {
	RecordNotification(ctx context.Context, position int, message string) error
	RecordCourse(ctx context.Context, summary course.Summary) error
	RecordRejection(ctx context.Context, line, reason string) error
}

// Observer counts session events.
type Observer interface {
	ObserveAcquisition(result string)
	ObserveNotification()
	ObserveCourse(kind string, workloadHours int)
	ObserveRejection(reason string)
}

// Options configures a Runner. Printer is required; the rest is optional.
type Options struct {
	Printer  *messages.Printer
	Rates    course.Rates
	Recorder Recorder
	Observer Observer
	Logger   *slog.Logger
}

// Report summarizes a finished session.
type Report struct {
	Acquisitions    int `json:"acquisitions"`
	Notifications   int `json:"notifications"`
	UnknownCommands int `json:"unknown_commands"`
	Courses         int `json:"courses"`
	Rejections      int `json:"rejections"`
}

// Runner executes sessions.
type Runner struct {
	printer  *messages.Printer
	rates    course.Rates
	recorder Recorder
	observer Observer
	logger   *slog.Logger
}

// New validates opts and builds a Runner.
func New(opts Options) (*Runner, error) {
	if opts.Printer == nil {
		return nil, errors.New("session requires a message printer")
	}
	if err := opts.Rates.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{
		printer:  opts.Printer,
		rates:    opts.Rates,
		recorder: opts.Recorder,
		observer: opts.Observer,
		logger:   logging.NewComponentLogger(opts.Logger, "session"),
	}
	if r.recorder == nil {
		r.recorder = noopRecorder{}
	}
	if r.observer == nil {
		r.observer = noopObserver{}
	}
	return r, nil
}

func (r *Runner) warnRecord(kind string, err error) {
	if err == nil {
		return
	}
	r.logger.Warn("journal write failed",
		logging.String("record", kind),
		logging.Error(err),
	)
}

type noopRecorder struct{}

func (noopRecorder) RecordNotification(context.Context, int, string) error { return nil }
func (noopRecorder) RecordCourse(context.Context, course.Summary) error    { return nil }
func (noopRecorder) RecordRejection(context.Context, string, string) error { return nil }

type noopObserver struct{}

func (noopObserver) ObserveAcquisition(string) {}
func (noopObserver) ObserveNotification()      {}
func (noopObserver) ObserveCourse(string, int) {}
func (noopObserver) ObserveRejection(string)   {}

// lineReader yields input lines without trailing CR/LF.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(in io.Reader) *lineReader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineReader{scanner: scanner}
}

func (l *lineReader) next() (string, bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(l.scanner.Text(), "\r"), true
}

func (l *lineReader) err() error {
	if err := l.scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// printer writes lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintln(p.w, s); err != nil {
		p.err = fmt.Errorf("write output: %w", err)
	}
}
