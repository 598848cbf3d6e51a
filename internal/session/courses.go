package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursework/internal/course"
	"coursework/internal/logging"
	"coursework/internal/messages"
)

// ErrMalformedLine reports a course header that cannot be parsed.
var ErrMalformedLine = errors.New("malformed course line")

// Rejection reasons reported to the recorder and observer.
const (
	ReasonFieldCount      = "field_count"
	ReasonDuration        = "duration_not_integer"
	ReasonUnknownKind     = "unknown_kind"
	ReasonInvalidDuration = "invalid_duration"
)

const fieldSeparator = ";"

// Header is a parsed "title; semesters; kind" line.
type Header struct {
	Title     string
	Semesters int
	Kind      course.Kind
}

// ParseHeader splits a course header line. A negative duration is reported as
// course.ErrInvalidDuration before the kind tag is looked at; every other
// failure wraps ErrMalformedLine and carries a rejection reason.
func ParseHeader(line string) (Header, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return Header{}, &headerError{reason: ReasonFieldCount, detail: fmt.Sprintf("expected 3 fields, got %d", len(fields))}
	}
	semesters, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Header{}, &headerError{reason: ReasonDuration, detail: err.Error()}
	}
	if semesters < 0 {
		return Header{}, &course.DurationError{Semesters: semesters}
	}
	kind, err := course.ParseKind(fields[2])
	if err != nil {
		return Header{}, &headerError{reason: ReasonUnknownKind, detail: err.Error()}
	}
	return Header{
		Title:     strings.TrimSpace(fields[0]),
		Semesters: semesters,
		Kind:      kind,
	}, nil
}

// ParseUnits splits a units line. A blank line yields no units.
func ParseUnits(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	parts := strings.Split(line, fieldSeparator)
	labels := make([]string, len(parts))
	for i, part := range parts {
		labels[i] = strings.TrimSpace(part)
	}
	return labels
}

type headerError struct {
	reason string
	detail string
}

func (e *headerError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedLine, e.detail)
}

func (e *headerError) Unwrap() error { return ErrMalformedLine }

// RejectionReason returns the reason code for a ParseHeader or course.New error.
func RejectionReason(err error) string {
	var he *headerError
	switch {
	case errors.As(err, &he):
		return he.reason
	case errors.Is(err, course.ErrInvalidDuration):
		return ReasonInvalidDuration
	case errors.Is(err, course.ErrUnknownKind):
		return ReasonUnknownKind
	default:
		return "unknown"
	}
}

// Courses runs the course protocol over repeated header/units blocks. A
// rejected header still consumes its units line.
func (r *Runner) Courses(ctx context.Context, in io.Reader, out io.Writer) (Report, error) {
	var report Report
	lines := newLineReader(in)
	w := &printer{w: out}

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		headerLine, ok := lines.next()
		if !ok {
			break
		}
		if strings.TrimSpace(headerLine) == "" {
			continue
		}

		c, err := r.build(headerLine)
		if err == nil {
			w.println(r.acknowledgement(c.Kind()))
		}
		unitsLine, _ := lines.next()

		if err != nil {
			report.Rejections++
			r.reject(ctx, w, headerLine, err)
		} else {
			for _, label := range ParseUnits(unitsLine) {
				c.AddUnit(label)
			}
			summary := c.Present()
			report.Courses++
			r.observer.ObserveCourse(summary.Kind.String(), summary.WorkloadHours)
			r.warnRecord("course", r.recorder.RecordCourse(ctx, summary))
			w.println(r.printer.Sprintf(messages.CourseWorkload, strconv.Itoa(summary.WorkloadHours)))
			w.println(r.printer.Sprintf(messages.CourseUnits, summary.UnitLine()))
		}
		if w.err != nil {
			return report, w.err
		}
	}

	if err := lines.err(); err != nil {
		return report, err
	}
	return report, w.err
}

func (r *Runner) build(headerLine string) (*course.Course, error) {
	header, err := ParseHeader(headerLine)
	if err != nil {
		return nil, err
	}
	c, err := course.New(header.Title, header.Semesters, header.Kind, r.rates)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("course created",
		logging.String("title", c.Title()),
		logging.String("kind", c.Kind().String()),
		logging.Int("semesters", c.Semesters()),
	)
	return c, nil
}

func (r *Runner) acknowledgement(kind course.Kind) string {
	if kind == course.KindGraduate {
		return r.printer.Sprintf(messages.CourseCreatedGrad)
	}
	return r.printer.Sprintf(messages.CourseCreatedUnder)
}

func (r *Runner) reject(ctx context.Context, w *printer, line string, err error) {
	reason := RejectionReason(err)
	r.observer.ObserveRejection(reason)
	r.warnRecord("rejection", r.recorder.RecordRejection(ctx, line, reason))
	r.logger.Info("course rejected",
		logging.String("line", line),
		logging.String("reason", reason),
		logging.Error(err),
	)
	if errors.Is(err, course.ErrInvalidDuration) {
		w.println(r.printer.Sprintf(messages.CourseInvalidDuration))
		return
	}
	w.println(r.printer.Sprintf(messages.CourseMalformed, line))
}
