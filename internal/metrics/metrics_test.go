package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/metrics"
)

func TestCountersAccumulate(t *testing.T) {
	m := metrics.New()

	m.ObserveAcquisition("initialized")
	m.ObserveAcquisition("already_active")
	m.ObserveAcquisition("already_active")
	m.ObserveNotification()
	m.ObserveCourse("graduate", 274)
	m.ObserveRejection("invalid_duration")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Acquisitions.WithLabelValues("initialized")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Acquisitions.WithLabelValues("already_active")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsStored))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CoursesCreated.WithLabelValues("graduate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CourseRejections.WithLabelValues("invalid_duration")))
}

func TestWriteTextfile(t *testing.T) {
	m := metrics.New()
	m.ObserveNotification()

	path := filepath.Join(t.TempDir(), "textfile", "coursework.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "coursework_notifications_appended_total 1")
}

func TestWriteTextfileEmptyPathIsNoop(t *testing.T) {
	assert.NoError(t, metrics.New().WriteTextfile(""))
}

func TestSeparateInstancesDoNotShareState(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.ObserveNotification()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.NotificationsStored))
	count, err := testutil.GatherAndCount(a.Gatherer(), "coursework_notifications_appended_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
