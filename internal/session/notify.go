package session

import (
	"context"
	"io"
	"strings"

	"coursework/internal/logging"
	"coursework/internal/messages"
	"coursework/internal/notifications"
)

// Notification session commands. The Portuguese spellings are the classroom
// originals.
var (
	acquireCommands = []string{"nova_instancia", "new_instance"}
	appendCommands  = []string{"adicionar", "add"}
	listCommands    = []string{"listar", "list"}
)

// Notifications runs the notification protocol: the first line is the
// payload, the registry is acquired right after it, and every following line
// is a command.
func (r *Runner) Notifications(ctx context.Context, center *notifications.Center, in io.Reader, out io.Writer) (Report, error) {
	var report Report
	lines := newLineReader(in)
	w := &printer{w: out}

	payload, _ := lines.next()
	registry := r.acquire(center, w, &report)

	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		line, ok := lines.next()
		if !ok {
			break
		}
		command := strings.TrimSpace(line)
		switch {
		case command == "":
			continue
		case matches(command, acquireCommands):
			r.acquire(center, w, &report)
		case matches(command, appendCommands):
			position := registry.Append(payload)
			report.Notifications++
			r.observer.ObserveNotification()
			r.warnRecord("notification", r.recorder.RecordNotification(ctx, position, payload))
			w.println(r.printer.Sprintf(messages.NotificationStored, payload))
		case matches(command, listCommands):
			w.println(r.printer.Sprintf(messages.NotificationHeader))
			for _, entry := range registry.List() {
				w.println(entry)
			}
		default:
			report.UnknownCommands++
			r.logger.Debug("unknown command", logging.String("command", command))
			w.println(r.printer.Sprintf(messages.UnknownCommand, command))
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

func (r *Runner) acquire(center *notifications.Center, w *printer, report *Report) *notifications.Registry {
	registry, activation := center.Acquire()
	report.Acquisitions++
	r.observer.ObserveAcquisition(activation.String())
	switch activation {
	case notifications.ActivationInitialized:
		w.println(r.printer.Sprintf(messages.RegistryInitialized))
	default:
		w.println(r.printer.Sprintf(messages.RegistryAlreadyActive))
	}
	return registry
}

func matches(command string, names []string) bool {
	for _, name := range names {
		if strings.EqualFold(command, name) {
			return true
		}
	}
	return false
}
