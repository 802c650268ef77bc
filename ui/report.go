package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZacxDev/prereq/course"
	"github.com/ZacxDev/prereq/planner"
)

// PrintCourseList writes the tree in order, one "NUMBER, Name" line per course.
func PrintCourseList(w io.Writer, p *planner.Planner) error {
	list, err := p.CourseList()
	if err != nil {
		return err
	}
	for number, name := range list {
		if _, err := fmt.Fprintf(w, "%s, %s\n", number, name); err != nil {
			return err
		}
	}
	return nil
}

// PrintCourse writes a single course with its prerequisites and the
// courses that require it.
func PrintCourse(w io.Writer, p *planner.Planner, number string) error {
	c, err := p.Lookup(number)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s, %s\n", c.Number, c.Name)
	if c.HasPrerequisites() {
		fmt.Fprintf(w, "Prerequisites: %s\n", strings.Join(c.Prerequisites, ", "))
	} else {
		fmt.Fprintln(w, "Prerequisites: none")
	}

	d, err := p.Describe(number)
	if err != nil {
		return err
	}
	if len(d.Dependents) > 0 {
		fmt.Fprintf(w, "Required by: %s\n", joinNumbers(d.Dependents))
	}
	return nil
}

// PrintSchedule writes a numbered course order.
func PrintSchedule(w io.Writer, p *planner.Planner) error {
	schedule, err := p.Schedule()
	if err != nil {
		return err
	}
	for i, number := range schedule {
		name := ""
		if c, ok := p.Course(number); ok {
			name = c.Name
		}
		fmt.Fprintf(w, "%3d. %s, %s\n", i+1, number, name)
	}
	return nil
}

// PrintTerms writes the schedule grouped by term.
func PrintTerms(w io.Writer, p *planner.Planner) error {
	terms, err := p.Terms()
	if err != nil {
		return err
	}
	for i, term := range terms {
		fmt.Fprintf(w, "Term %d: %s\n", i+1, strings.Join(term, ", "))
	}
	return nil
}

func joinNumbers(courses []*course.Course) string {
	numbers := make([]string, 0, len(courses))
	for _, c := range courses {
		numbers = append(numbers, c.Number)
	}
	return strings.Join(numbers, ", ")
}
