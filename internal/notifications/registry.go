package notifications

import (
	"log/slog"

	"coursework/internal/logging"
)

// Registry is the append-only notification log.
type Registry struct {
	entries []string
	logger  *slog.Logger
}

// Append stores message and returns its 1-based position.
func (r *Registry) Append(message string) int {
	r.entries = append(r.entries, message)
	position := len(r.entries)
	r.logger.Debug("notification stored",
		logging.String("message", message),
		logging.Int("position", position),
	)
	return position
}

// List returns the entries in insertion order.
func (r *Registry) List() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of stored entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
