package course

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownKind reports a variant tag that maps to no course kind.
var ErrUnknownKind = errors.New("unknown course kind")

// Kind identifies a course variant.
type Kind int

const (
	KindUndergraduate Kind = iota + 1
	KindGraduate
)

var kindAliases = map[string]Kind{
	"grad":          KindUndergraduate,
	"graduacao":     KindUndergraduate,
	"graduação":     KindUndergraduate,
	"undergraduate": KindUndergraduate,
	"bachelor":      KindUndergraduate,
	"pos":           KindGraduate,
	"pós":           KindGraduate,
	"pos-graduacao": KindGraduate,
	"pós-graduação": KindGraduate,
	"graduate":      KindGraduate,
	"postgraduate":  KindGraduate,
}

// ParseKind resolves a driver tag such as "pos" or "undergraduate".
func ParseKind(tag string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(tag))
	if kind, ok := kindAliases[key]; ok {
		return kind, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}

// String returns the canonical lowercase tag.
func (k Kind) String() string {
	switch k {
	case KindUndergraduate:
		return "undergraduate"
	case KindGraduate:
		return "graduate"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DisplayName returns the tag in title case for tables.
func (k Kind) DisplayName() string {
	return cases.Title(language.English).String(k.String())
}

// Valid reports whether k is one of the known variants.
func (k Kind) Valid() bool {
	return k == KindUndergraduate || k == KindGraduate
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
