// Package grades keeps a small registry of students and their grades.
package grades

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName       = errors.New("student name is empty")
	ErrNegativeGrade   = errors.New("grade must be non-negative")
	ErrStudentNotFound = errors.New("student not found")
)

type Student struct {
	Name   string
	Grades []float64
}

func (s *Student) Average() float64 {
	if len(s.Grades) == 0 {
		return 0
	}
	var sum float64
	for _, g := range s.Grades {
		sum += g
	}
	return sum / float64(len(s.Grades))
}

func (s *Student) Highest() float64 {
	if len(s.Grades) == 0 {
		return 0
	}
	hi := s.Grades[0]
	for _, g := range s.Grades[1:] {
		hi = max(hi, g)
	}
	return hi
}

func (s *Student) Lowest() float64 {
	if len(s.Grades) == 0 {
		return 0
	}
	lo := s.Grades[0]
	for _, g := range s.Grades[1:] {
		lo = min(lo, g)
	}
	return lo
}

// Summary is a one-line statistics string.
func (s *Student) Summary() string {
	if len(s.Grades) == 0 {
		return "No grades."
	}
	return fmt.Sprintf("Avg: %.2f, High: %.2f, Low: %.2f, Count: %d",
		s.Average(), s.Highest(), s.Lowest(), len(s.Grades))
}

// Registry holds students in the order they were added. Names are matched
// case-insensitively.
type Registry struct {
	students []*Student
}

func NewRegistry() *Registry { return &Registry{} }

// Add registers a student. Duplicate names are allowed; Find returns the
// first.
func (r *Registry) Add(name string) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	s := &Student{Name: name}
	r.students = append(r.students, s)
	return s, nil
}

func (r *Registry) Find(name string) (*Student, bool) {
	name = strings.TrimSpace(name)
	for _, s := range r.students {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}

// AddGrade appends grade to the named student. With create set, an unknown
// student is registered first.
func (r *Registry) AddGrade(name string, grade float64, create bool) (*Student, error) {
	if grade < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeGrade, grade)
	}
	s, ok := r.Find(name)
	if !ok {
		if !create {
			return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, name)
		}
		var err error
		if s, err = r.Add(name); err != nil {
			return nil, err
		}
	}
	s.Grades = append(s.Grades, grade)
	return s, nil
}

// Remove deletes the first student matching name.
func (r *Registry) Remove(name string) error {
	name = strings.TrimSpace(name)
	for i, s := range r.students {
		if strings.EqualFold(s.Name, name) {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrStudentNotFound, name)
}

// Students returns the registered students in insertion order.
func (r *Registry) Students() []*Student {
	out := make([]*Student, len(r.students))
	copy(out, r.students)
	return out
}

func (r *Registry) Len() int { return len(r.students) }

// Report holds class-level statistics across every grade of every student.
type Report struct {
	Students int
	Grades   int
	Average  float64
	High     float64
	Low      float64
}

// Report summarizes the registry. The grade statistics are zero when no
// student has a grade.
func (r *Registry) Report() Report {
	rep := Report{Students: len(r.students)}
	var sum float64
	for _, s := range r.students {
		for _, g := range s.Grades {
			if rep.Grades == 0 {
				rep.High, rep.Low = g, g
			}
			rep.High = max(rep.High, g)
			rep.Low = min(rep.Low, g)
			sum += g
			rep.Grades++
		}
	}
	if rep.Grades > 0 {
		rep.Average = sum / float64(rep.Grades)
	}
	return rep
}

func (rep Report) String() string {
	if rep.Grades == 0 {
		return "No grades recorded for class-level stats."
	}
	return fmt.Sprintf("Class average: %.2f, Class high: %.2f, Class low: %.2f, Total grades: %d",
		rep.Average, rep.High, rep.Low, rep.Grades)
}
