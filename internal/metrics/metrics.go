// Package metrics counts session activity and exports it as a Prometheus
// textfile for the node_exporter textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of one run.
type Metrics struct {
	registry *prometheus.Registry

	Acquisitions        *prometheus.CounterVec
	NotificationsStored prometheus.Counter
	CoursesCreated      *prometheus.CounterVec
	CourseRejections    *prometheus.CounterVec
	WorkloadHours       prometheus.Histogram
}

// New creates the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Acquisitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coursework_registry_acquisitions_total",
			Help: "Notification registry acquisitions by outcome",
		}, []string{"result"}),
		NotificationsStored: factory.NewCounter(prometheus.CounterOpts{
			Name: "coursework_notifications_appended_total",
			Help: "Notifications appended to the registry",
		}),
		CoursesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coursework_courses_created_total",
			Help: "Courses constructed by kind",
		}, []string{"kind"}),
		CourseRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coursework_course_rejections_total",
			Help: "Course lines rejected by reason",
		}, []string{"reason"}),
		WorkloadHours: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "coursework_course_workload_hours",
			Help:    "Workload hours of presented courses",
			Buckets: prometheus.LinearBuckets(0, 400, 10),
		}),
	}
}

// ObserveAcquisition counts a registry acquisition.
func (m *Metrics) ObserveAcquisition(result string) {
	m.Acquisitions.WithLabelValues(result).Inc()
}

// ObserveNotification counts a stored notification.
func (m *Metrics) ObserveNotification() {
	m.NotificationsStored.Inc()
}

// ObserveCourse counts a created course and records its workload.
func (m *Metrics) ObserveCourse(kind string, workloadHours int) {
	m.CoursesCreated.WithLabelValues(kind).Inc()
	m.WorkloadHours.Observe(float64(workloadHours))
}

// ObserveRejection counts a rejected course line.
func (m *Metrics) ObserveRejection(reason string) {
	m.CourseRejections.WithLabelValues(reason).Inc()
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile atomically writes all metrics to path. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
