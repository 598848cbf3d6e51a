package session_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/course"
	"coursework/internal/messages"
	"coursework/internal/notifications"
	"coursework/internal/session"
)

type fakeRecorder struct {
	notifications []string
	courses       []course.Summary
	rejections    []string
	err           error
}

func (f *fakeRecorder) RecordNotification(_ context.Context, _ int, message string) error {
	f.notifications = append(f.notifications, message)
	return f.err
}

func (f *fakeRecorder) RecordCourse(_ context.Context, summary course.Summary) error {
	f.courses = append(f.courses, summary)
	return f.err
}

func (f *fakeRecorder) RecordRejection(_ context.Context, _ string, reason string) error {
	f.rejections = append(f.rejections, reason)
	return f.err
}

type fakeObserver struct {
	acquisitions []string
	stored       int
	kinds        []string
	hours        []int
	rejections   []string
}

func (f *fakeObserver) ObserveAcquisition(result string) {
	f.acquisitions = append(f.acquisitions, result)
}

func (f *fakeObserver) ObserveNotification() {
	f.stored++
}

func (f *fakeObserver) ObserveCourse(kind string, workloadHours int) {
	f.kinds = append(f.kinds, kind)
	f.hours = append(f.hours, workloadHours)
}

func (f *fakeObserver) ObserveRejection(reason string) {
	f.rejections = append(f.rejections, reason)
}

func newRunner(t *testing.T, lang string, rec session.Recorder, obs session.Observer) *session.Runner {
	t.Helper()
	printer, err := messages.New(lang)
	require.NoError(t, err)
	runner, err := session.New(session.Options{
		Printer:  printer,
		Rates:    course.DefaultRates(),
		Recorder: rec,
		Observer: obs,
	})
	require.NoError(t, err)
	return runner
}

func lines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestNewRequiresPrinter(t *testing.T) {
	_, err := session.New(session.Options{Rates: course.DefaultRates()})
	assert.Error(t, err)
}

func TestNewRejectsInvalidRates(t *testing.T) {
	printer, err := messages.New("en")
	require.NoError(t, err)
	_, err = session.New(session.Options{Printer: printer, Rates: course.Rates{Undergraduate: 100, Graduate: 100}})
	assert.Error(t, err)
}

func TestNotificationTranscriptEnglish(t *testing.T) {
	rec := &fakeRecorder{}
	obs := &fakeObserver{}
	runner := newRunner(t, "en", rec, obs)

	var out strings.Builder
	input := "Low battery\nadd\nlist\n\nnew_instance\nreboot\n"
	report, err := runner.Notifications(context.Background(), notifications.NewCenter(), strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Notification center started",
		"New notification: Low battery",
		"Notifications:",
		"Low battery",
		"Notification center already active",
		"Unknown command: reboot",
	}, lines(out.String()))
	assert.Equal(t, session.Report{Acquisitions: 2, Notifications: 1, UnknownCommands: 1}, report)
	assert.Equal(t, []string{"Low battery"}, rec.notifications)
	assert.Equal(t, []string{"initialized", "already_active"}, obs.acquisitions)
	assert.Equal(t, 1, obs.stored)
}

func TestNotificationTranscriptPortuguese(t *testing.T) {
	runner := newRunner(t, "pt-BR", nil, nil)

	var out strings.Builder
	input := "Bateria fraca\nadicionar\nadicionar\nlistar\n"
	_, err := runner.Notifications(context.Background(), notifications.NewCenter(), strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Central iniciada",
		"Nova notificação: Bateria fraca",
		"Nova notificação: Bateria fraca",
		"Notificações:",
		"Bateria fraca",
		"Bateria fraca",
	}, lines(out.String()))
}

func TestNotificationSessionSharesCallerCenter(t *testing.T) {
	center := notifications.NewCenter()
	registry, _ := center.Acquire()
	registry.Append("earlier")

	runner := newRunner(t, "en", nil, nil)
	var out strings.Builder
	_, err := runner.Notifications(context.Background(), center, strings.NewReader("later\nadd\nlist\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Notification center already active",
		"New notification: later",
		"Notifications:",
		"earlier",
		"later",
	}, lines(out.String()))
}

func TestNotificationEmptyInputStillAcquires(t *testing.T) {
	runner := newRunner(t, "en", nil, nil)
	var out strings.Builder
	report, err := runner.Notifications(context.Background(), notifications.NewCenter(), strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "Notification center started\n", out.String())
	assert.Equal(t, 1, report.Acquisitions)
}

func TestNotificationCommandsIgnoreCaseAndCRLF(t *testing.T) {
	runner := newRunner(t, "en", nil, nil)
	var out strings.Builder
	_, err := runner.Notifications(context.Background(), notifications.NewCenter(), strings.NewReader("ping\r\nADD\r\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"Notification center started", "New notification: ping"}, lines(out.String()))
}

func TestCourseTranscriptPortuguese(t *testing.T) {
	rec := &fakeRecorder{}
	obs := &fakeObserver{}
	runner := newRunner(t, "pt-BR", rec, obs)

	input := strings.Join([]string{
		"AI; 2; pos",
		"Math; ML",
		"Physics; -1; grad",
		"Mechanics",
		"Bad line",
		"ignored units",
		"",
		"Law; 8; grad",
		"",
	}, "\n")
	var out strings.Builder
	report, err := runner.Courses(context.Background(), strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Pós-graduação criada",
		"Carga horária: 274",
		"Disciplinas: Math; ML",
		"ValueError: Duração inválida",
		"Linha de curso inválida: Bad line",
		"Graduação criada",
		"Carga horária: 1472",
		"Disciplinas: ",
	}, lines(out.String()))

	assert.Equal(t, session.Report{Courses: 2, Rejections: 2}, report)
	require.Len(t, rec.courses, 2)
	assert.Equal(t, "AI", rec.courses[0].Title)
	assert.Equal(t, []string{"Math", "ML"}, rec.courses[0].Units)
	assert.Equal(t, []string{session.ReasonInvalidDuration, session.ReasonFieldCount}, rec.rejections)
	assert.Equal(t, []string{"graduate", "undergraduate"}, obs.kinds)
	assert.Equal(t, []int{274, 1472}, obs.hours)
	assert.Equal(t, rec.rejections, obs.rejections)
}

func TestCourseTranscriptEnglish(t *testing.T) {
	runner := newRunner(t, "en", nil, nil)
	var out strings.Builder
	_, err := runner.Courses(context.Background(), strings.NewReader("Data Science; 3; graduate\nStats; Python; SQL\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Graduate course created",
		"Workload hours: 411",
		"Units: Stats; Python; SQL",
	}, lines(out.String()))
}

func TestCourseMissingUnitsLineAtEOF(t *testing.T) {
	runner := newRunner(t, "en", nil, nil)
	var out strings.Builder
	report, err := runner.Courses(context.Background(), strings.NewReader("Seminar; 0; grad"), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Courses)
	assert.Equal(t, []string{
		"Undergraduate course created",
		"Workload hours: 0",
		"Units: ",
	}, lines(out.String()))
}

func TestJournalFailuresDoNotAbort(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	runner := newRunner(t, "en", rec, nil)
	var out strings.Builder
	report, err := runner.Courses(context.Background(), strings.NewReader("AI; 1; pos\nML\nX; y; pos\n\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, session.Report{Courses: 1, Rejections: 1}, report)
}

func TestCanceledContextStopsSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := newRunner(t, "en", nil, nil)
	var out strings.Builder
	_, err := runner.Courses(ctx, strings.NewReader("AI; 1; pos\nML\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestParseHeader(t *testing.T) {
	header, err := session.ParseHeader("  AI ;2;  Pós ")
	require.NoError(t, err)
	assert.Equal(t, session.Header{Title: "AI", Semesters: 2, Kind: course.KindGraduate}, header)

	cases := map[string]string{
		"AI; 2":          session.ReasonFieldCount,
		"AI; 2; pos; x":  session.ReasonFieldCount,
		"AI; two; pos":   session.ReasonDuration,
		"AI; 2; diploma": session.ReasonUnknownKind,
	}
	for line, reason := range cases {
		_, err := session.ParseHeader(line)
		require.ErrorIs(t, err, session.ErrMalformedLine, line)
		assert.Equal(t, reason, session.RejectionReason(err), line)
	}
}

func TestNegativeDurationReportedBeforeUnknownKind(t *testing.T) {
	rec := &fakeRecorder{}
	runner := newRunner(t, "pt-BR", rec, nil)

	var out strings.Builder
	report, err := runner.Courses(context.Background(), strings.NewReader("Physics; -1; doutorado\n\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "ValueError: Duração inválida\n", out.String())
	assert.Equal(t, 1, report.Rejections)
	assert.Equal(t, []string{session.ReasonInvalidDuration}, rec.rejections)

	_, err = session.ParseHeader("Physics; -1; doutorado")
	assert.ErrorIs(t, err, course.ErrInvalidDuration)
	assert.NotErrorIs(t, err, session.ErrMalformedLine)
}

func TestRejectionReasonForDuration(t *testing.T) {
	_, err := course.New("AI", -1, course.KindGraduate, course.DefaultRates())
	assert.Equal(t, session.ReasonInvalidDuration, session.RejectionReason(err))
}

func TestParseUnits(t *testing.T) {
	assert.Nil(t, session.ParseUnits("   "))
	assert.Equal(t, []string{"A", "B", "C"}, session.ParseUnits("A;B ;  C"))
	assert.Equal(t, []string{"A", "", "B"}, session.ParseUnits("A;  ; B"))
}
