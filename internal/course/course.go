package course

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDuration is returned when a course is built with a negative
// number of semesters.
var ErrInvalidDuration = errors.New("invalid duration")

// DurationError carries the rejected semester count.
type DurationError struct {
	Semesters int
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s: %d semesters", ErrInvalidDuration, e.Semesters)
}

func (e *DurationError) Unwrap() error { return ErrInvalidDuration }

// UnitSeparator joins unit labels in Present output.
const UnitSeparator = "; "

// Unit is a curricular unit (discipline) owned by one course.
type Unit struct {
	label string
}

// Label returns the unit name.
func (u Unit) Label() string { return u.label }

// Course is an academic program with an ordered list of units.
type Course struct {
	title     string
	semesters int
	program   Program
	units     []Unit
}

// New validates semesters, then rates, and builds a course of the requested
// kind.
func New(title string, semesters int, kind Kind, rates Rates) (*Course, error) {
	if semesters < 0 {
		return nil, &DurationError{Semesters: semesters}
	}
	program, err := rates.Program(kind)
	if err != nil {
		return nil, err
	}
	return &Course{
		title:     title,
		semesters: semesters,
		program:   program,
		units:     []Unit{},
	}, nil
}

// NewUndergraduate builds an undergraduate course.
func NewUndergraduate(title string, semesters int, rates Rates) (*Course, error) {
	return New(title, semesters, KindUndergraduate, rates)
}

// NewGraduate builds a graduate course.
func NewGraduate(title string, semesters int, rates Rates) (*Course, error) {
	return New(title, semesters, KindGraduate, rates)
}

func (c *Course) Title() string { return c.title }

func (c *Course) Semesters() int { return c.semesters }

func (c *Course) Kind() Kind { return c.program.Kind() }

// AddUnit appends a unit. Any label, including the empty string, is accepted.
func (c *Course) AddUnit(label string) {
	c.units = append(c.units, Unit{label: label})
}

// Units returns a copy of the units in insertion order.
func (c *Course) Units() []Unit {
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// WorkloadHours is the duration multiplied by the variant's rate.
func (c *Course) WorkloadHours() int {
	return c.semesters * c.program.HoursPerSemester()
}

// Summary is the rendered state of a course.
type Summary struct {
	Title         string   `json:"title"`
	Kind          Kind     `json:"kind"`
	Semesters     int      `json:"semesters"`
	WorkloadHours int      `json:"workload_hours"`
	Units         []string `json:"units"`
}

// Present computes the workload and collects unit labels.
func (c *Course) Present() Summary {
	labels := make([]string, len(c.units))
	for i, unit := range c.units {
		labels[i] = unit.label
	}
	return Summary{
		Title:         c.title,
		Kind:          c.Kind(),
		Semesters:     c.semesters,
		WorkloadHours: c.WorkloadHours(),
		Units:         labels,
	}
}

// UnitLine joins unit labels with UnitSeparator.
func (s Summary) UnitLine() string {
	return strings.Join(s.Units, UnitSeparator)
}
