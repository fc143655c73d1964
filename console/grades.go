package console

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rustyeddy/papertrader/grades"
)

const gradesMenu = `
Menu:
1. Add new student
2. Add grade to student
3. View student details
4. Remove student
5. Display summary report (all students)
6. Exit`

// GradeShell is the interactive menu over a grade registry.
type GradeShell struct {
	p   prompter
	reg *grades.Registry
}

func NewGradeShell(w io.Writer, r io.Reader, reg *grades.Registry) *GradeShell {
	return &GradeShell{p: newPrompter(w, r), reg: reg}
}

// Run loops until Exit is chosen or input runs out.
func (g *GradeShell) Run() error {
	g.p.println("=== Student Grade Tracker ===")
	for {
		g.p.println(gradesMenu)
		choice, err := g.p.ask("Choose: ")
		if err == nil {
			if choice == "6" {
				break
			}
			err = g.dispatch(choice)
		}
		if errors.Is(err, io.EOF) {
			g.p.println()
			break
		}
		if err != nil {
			return err
		}
	}
	g.p.println("Goodbye.")
	return nil
}

func (g *GradeShell) dispatch(choice string) error {
	switch choice {
	case "1":
		return g.addStudent()
	case "2":
		return g.addGrade()
	case "3":
		return g.viewStudent()
	case "4":
		return g.removeStudent()
	case "5":
		g.report()
	default:
		g.p.println("Invalid option. Try again.")
	}
	return nil
}

func (g *GradeShell) addStudent() error {
	name, err := g.p.ask("Enter student name: ")
	if err != nil {
		return err
	}
	s, err := g.reg.Add(name)
	if err != nil {
		g.p.println("Name empty. Cancelled.")
		return nil
	}
	g.p.println("Added student: " + s.Name)
	return nil
}

func (g *GradeShell) addGrade() error {
	name, err := g.p.ask("Student name: ")
	if err != nil {
		return err
	}
	create := false
	if _, ok := g.reg.Find(name); !ok {
		ans, err := g.p.ask("Student not found. Create new? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(ans, "y") {
			g.p.println("Cancelled.")
			return nil
		}
		create = true
	}

	raw, err := g.p.ask("Enter grade (number): ")
	if err != nil {
		return err
	}
	grade, convErr := strconv.ParseFloat(raw, 64)
	if convErr != nil {
		g.p.println("Invalid number.")
		return nil
	}

	s, err := g.reg.AddGrade(name, grade, create)
	switch {
	case errors.Is(err, grades.ErrNegativeGrade):
		g.p.println("Grade must be non-negative.")
	case errors.Is(err, grades.ErrEmptyName):
		g.p.println("Name empty. Cancelled.")
	case err != nil:
		g.p.printf("Could not add grade: %v\n", err)
	default:
		g.p.printf("Added grade %s to %s\n", strconv.FormatFloat(grade, 'f', -1, 64), s.Name)
	}
	return nil
}

func (g *GradeShell) viewStudent() error {
	name, err := g.p.ask("Student name: ")
	if err != nil {
		return err
	}
	s, ok := g.reg.Find(name)
	if !ok {
		g.p.println("Student not found.")
		return nil
	}
	g.p.println("Name: " + s.Name)
	if len(s.Grades) == 0 {
		g.p.println("No grades yet.")
		return nil
	}
	g.p.printf("Grades: %v\n", s.Grades)
	g.p.println(s.Summary())
	return nil
}

func (g *GradeShell) removeStudent() error {
	name, err := g.p.ask("Student name to remove: ")
	if err != nil {
		return err
	}
	if err := g.reg.Remove(name); err != nil {
		g.p.println("Student not found.")
		return nil
	}
	g.p.println("Removed " + name)
	return nil
}

func (g *GradeShell) report() {
	g.p.println("\n--- Summary Report ---")
	students := g.reg.Students()
	if len(students) == 0 {
		g.p.println("No students to report.")
		return
	}
	for i, s := range students {
		g.p.printf("%d) %s -> %s\n", i+1, s.Name, s.Summary())
	}
	g.p.println(g.reg.Report().String())
}
