package planner

import (
	"github.com/ZacxDev/prereq/course"
	"github.com/pkg/errors"
)

// Description answers "what does this course need and what needs it".
type Description struct {
	Course        *course.Course
	Prerequisites []*course.Course
	Dependents    []*course.Course
}

func (p *Planner) Describe(number string) (*Description, error) {
	if p.graph == nil {
		return nil, ErrNoCatalog
	}

	c, ok := p.index[number]
	if !ok {
		return nil, errors.Wrapf(course.ErrUnknownCourse, "course %q not found", number)
	}

	prereqs, err := p.graph.Dependencies(number)
	if err != nil {
		return nil, err
	}
	dependents, err := p.graph.Dependents(number)
	if err != nil {
		return nil, err
	}

	return &Description{
		Course:        c,
		Prerequisites: p.lookupAll(prereqs),
		Dependents:    p.lookupAll(dependents),
	}, nil
}

func (p *Planner) lookupAll(numbers []string) []*course.Course {
	courses := make([]*course.Course, 0, len(numbers))
	for _, number := range numbers {
		courses = append(courses, p.index[number])
	}
	return courses
}

// Course returns the catalog record for number.
func (p *Planner) Course(number string) (*course.Course, bool) {
	c, ok := p.index[number]
	return c, ok
}
