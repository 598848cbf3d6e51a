// Package messages renders the console strings of both sessions from
// golang.org/x/text catalogs. English is the default; pt-BR reproduces the
// classroom wording.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Keys of the message catalog.
const (
	RegistryInitialized   = "registry.initialized"
	RegistryAlreadyActive = "registry.already_active"
	NotificationStored    = "registry.stored"
	NotificationHeader    = "registry.list_header"
	UnknownCommand        = "command.unknown"
	CourseCreatedUnder    = "course.created.undergraduate"
	CourseCreatedGrad     = "course.created.graduate"
	CourseWorkload        = "course.workload"
	CourseUnits           = "course.units"
	CourseInvalidDuration = "course.invalid_duration"
	CourseMalformed       = "course.malformed"
)

var supported = []language.Tag{language.English, language.BrazilianPortuguese}

var entries = map[language.Tag]map[string]string{
	language.English: {
		RegistryInitialized:   "Notification center started",
		RegistryAlreadyActive: "Notification center already active",
		NotificationStored:    "New notification: %s",
		NotificationHeader:    "Notifications:",
		UnknownCommand:        "Unknown command: %s",
		CourseCreatedUnder:    "Undergraduate course created",
		CourseCreatedGrad:     "Graduate course created",
		CourseWorkload:        "Workload hours: %s",
		CourseUnits:           "Units: %s",
		CourseInvalidDuration: "ValueError: invalid duration",
		CourseMalformed:       "Malformed course line: %s",
	},
	language.BrazilianPortuguese: {
		RegistryInitialized:   "Central iniciada",
		RegistryAlreadyActive: "Central já ativa",
		NotificationStored:    "Nova notificação: %s",
		NotificationHeader:    "Notificações:",
		UnknownCommand:        "Comando desconhecido: %s",
		CourseCreatedUnder:    "Graduação criada",
		CourseCreatedGrad:     "Pós-graduação criada",
		CourseWorkload:        "Carga horária: %s",
		CourseUnits:           "Disciplinas: %s",
		CourseInvalidDuration: "ValueError: Duração inválida",
		CourseMalformed:       "Linha de curso inválida: %s",
	},
}

var matcher = language.NewMatcher(supported)

// Printer formats catalog messages for one language.
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// New builds a Printer for lang. Unsupported languages fall back to English.
func New(lang string) (*Printer, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register message %s/%s: %w", tag, key, err)
			}
		}
	}

	_, index, _ := matcher.Match(language.Make(lang))
	tag := supported[index]
	return &Printer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Language returns the matched catalog language.
func (p *Printer) Language() language.Tag {
	return p.tag
}

// Sprintf renders key with args.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.printer.Sprintf(key, args...)
}
