package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"coursework/internal/course"
)

// Session is one CLI invocation that ran a session.
type Session struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	Language  string    `json:"language"`
	StartedAt time.Time `json:"started_at"`
}

// Notification is a journaled registry append.
type Notification struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Position  int       `json:"position"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CourseRecord is a journaled course summary.
type CourseRecord struct {
	ID        int64          `json:"id"`
	SessionID string         `json:"session_id"`
	Summary   course.Summary `json:"summary"`
	CreatedAt time.Time      `json:"created_at"`
}

// Rejection is a journaled course line that failed to build a course.
type Rejection struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Line      string    `json:"line"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

var errNoSession = errors.New("journal session not started")

// BeginSession inserts a session row and returns it. Subsequent Record calls
// are attributed to this session.
func (s *Store) BeginSession(ctx context.Context, command, language string) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		Command:   command,
		Language:  language,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.execWithRetry(ctx,
		`INSERT INTO sessions (id, command, language, started_at) VALUES (?, ?, ?, ?)`,
		session.ID, session.Command, session.Language, timestamp(session.StartedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

// Recorder writes session events for one session.
type Recorder struct {
	store   *Store
	session *Session
}

// Recorder returns a Recorder bound to session.
func (s *Store) Recorder(session *Session) *Recorder {
	return &Recorder{store: s, session: session}
}

// RecordNotification stores a notification append.
func (r *Recorder) RecordNotification(ctx context.Context, position int, message string) error {
	if r.session == nil {
		return errNoSession
	}
	_, err := r.store.execWithRetry(ctx,
		`INSERT INTO notifications (session_id, position, message, created_at) VALUES (?, ?, ?, ?)`,
		r.session.ID, position, message, timestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// RecordCourse stores a presented course summary.
func (r *Recorder) RecordCourse(ctx context.Context, summary course.Summary) error {
	if r.session == nil {
		return errNoSession
	}
	units := summary.Units
	if units == nil {
		units = []string{}
	}
	unitsJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(units)
	if err != nil {
		return fmt.Errorf("marshal units: %w", err)
	}
	_, err = r.store.execWithRetry(ctx,
		`INSERT INTO courses (session_id, title, kind, semesters, workload_hours, units_json, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.session.ID,
		summary.Title,
		summary.Kind.String(),
		summary.Semesters,
		summary.WorkloadHours,
		string(unitsJSON),
		timestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// RecordRejection stores a course line that did not produce a course.
func (r *Recorder) RecordRejection(ctx context.Context, line, reason string) error {
	if r.session == nil {
		return errNoSession
	}
	_, err := r.store.execWithRetry(ctx,
		`INSERT INTO rejections (session_id, line, reason, created_at) VALUES (?, ?, ?, ?)`,
		r.session.ID, line, reason, timestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert rejection: %w", err)
	}
	return nil
}

// Sessions returns the most recent sessions, newest first.
func (s *Store) Sessions(ctx context.Context, limit int) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, command, language, started_at FROM sessions ORDER BY started_at DESC, rowid DESC LIMIT ?`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			session   Session
			startedAt string
		)
		if err := rows.Scan(&session.ID, &session.Command, &session.Language, &startedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.StartedAt = parseTimestamp(startedAt)
		out = append(out, session)
	}
	return out, rows.Err()
}

// Notifications returns the most recent notifications in append order.
func (s *Store) Notifications(ctx context.Context, limit int) ([]Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, position, message, created_at FROM (
            SELECT * FROM notifications ORDER BY id DESC LIMIT ?
        ) ORDER BY id`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		var (
			n         Notification
			createdAt string
		)
		if err := rows.Scan(&n.ID, &n.SessionID, &n.Position, &n.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.CreatedAt = parseTimestamp(createdAt)
		out = append(out, n)
	}
	return out, rows.Err()
}

// Courses returns the most recent course summaries in insertion order.
func (s *Store) Courses(ctx context.Context, limit int) ([]CourseRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, title, kind, semesters, workload_hours, units_json, created_at FROM (
            SELECT * FROM courses ORDER BY id DESC LIMIT ?
        ) ORDER BY id`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var out []CourseRecord
	for rows.Next() {
		var (
			rec       CourseRecord
			kind      string
			unitsJSON string
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Summary.Title, &kind,
			&rec.Summary.Semesters, &rec.Summary.WorkloadHours, &unitsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		if rec.Summary.Kind, err = course.ParseKind(kind); err != nil {
			return nil, fmt.Errorf("course %d: %w", rec.ID, err)
		}
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(unitsJSON, &rec.Summary.Units); err != nil {
			return nil, fmt.Errorf("course %d units: %w", rec.ID, err)
		}
		rec.CreatedAt = parseTimestamp(createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Rejections returns the most recent rejected course lines in insertion order.
func (s *Store) Rejections(ctx context.Context, limit int) ([]Rejection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, line, reason, created_at FROM (
            SELECT * FROM rejections ORDER BY id DESC LIMIT ?
        ) ORDER BY id`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query rejections: %w", err)
	}
	defer rows.Close()

	var out []Rejection
	for rows.Next() {
		var (
			rej       Rejection
			createdAt string
		)
		if err := rows.Scan(&rej.ID, &rej.SessionID, &rej.Line, &rej.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scan rejection: %w", err)
		}
		rej.CreatedAt = parseTimestamp(createdAt)
		out = append(out, rej)
	}
	return out, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}
