package course

import (
	"errors"
	"fmt"
)

// Program is the closed set of course variants. Only Undergraduate and
// Graduate implement it.
type Program interface {
	Kind() Kind
	HoursPerSemester() int
	program()
}

// Undergraduate is the undergraduate variant.
type Undergraduate struct {
	Hours int
}

func (Undergraduate) Kind() Kind              { return KindUndergraduate }
func (u Undergraduate) HoursPerSemester() int { return u.Hours }
func (Undergraduate) program()                {}

// Graduate is the graduate variant.
type Graduate struct {
	Hours int
}

func (Graduate) Kind() Kind              { return KindGraduate }
func (g Graduate) HoursPerSemester() int { return g.Hours }
func (Graduate) program()                {}

// Rates holds the hours credited per semester for each variant.
type Rates struct {
	Undergraduate int
	Graduate      int
}

// DefaultRates matches the shipped configuration defaults.
func DefaultRates() Rates {
	return Rates{Undergraduate: 184, Graduate: 137}
}

// ErrInvalidRates is returned for non-positive or shared per-variant rates.
var ErrInvalidRates = errors.New("invalid course rates")

// Validate requires positive, distinct rates.
func (r Rates) Validate() error {
	if r.Undergraduate <= 0 || r.Graduate <= 0 {
		return fmt.Errorf("%w: must be positive (undergraduate=%d graduate=%d)", ErrInvalidRates, r.Undergraduate, r.Graduate)
	}
	if r.Undergraduate == r.Graduate {
		return fmt.Errorf("%w: variants share %d hours per semester", ErrInvalidRates, r.Graduate)
	}
	return nil
}

// Program returns the variant for kind carrying its configured rate. Rates
// that fail Validate build no variant.
func (r Rates) Program(kind Kind) (Program, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case KindUndergraduate:
		return Undergraduate{Hours: r.Undergraduate}, nil
	case KindGraduate:
		return Graduate{Hours: r.Graduate}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
