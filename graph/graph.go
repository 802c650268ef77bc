// graph/graph.go

package graph

import (
	"github.com/ZacxDev/prereq/course"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Graph is a dependency graph over courses. It owns one node per course
// number; edges are stored as course numbers, never as node pointers.
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	nodes  map[string]*node
	logger *zap.Logger
}

type node struct {
	number string
	name   string

	// inDegree is the number of prerequisites still to be taken. It always
	// equals len(dependencies); schedule extraction works on a copy.
	inDegree int

	// dependencies are the prerequisite course numbers, in insertion order.
	dependencies []string

	// dependents is the reverse index: courses that list this one as a
	// prerequisite.
	dependents []string
}

func New(logger *zap.Logger) *Graph {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Graph{
		nodes:  make(map[string]*node),
		logger: logger,
	}
}

// AddCourse inserts a node for c. Adding a number that is already present
// does nothing.
func (g *Graph) AddCourse(c *course.Course) {
	if _, exists := g.nodes[c.Number]; exists {
		g.logger.Debug("course already in graph", zap.String("course", c.Number))
		return
	}

	g.nodes[c.Number] = &node{
		number: c.Number,
		name:   c.Name,
	}
}

// AddPrerequisite records that prereq must be taken before number. Both
// courses must already be in the graph, otherwise course.ErrUnknownCourse is
// returned and the graph is left untouched. Adding an existing edge again is
// a no-op.
func (g *Graph) AddPrerequisite(prereq, number string) error {
	prereqNode, ok := g.nodes[prereq]
	if !ok {
		return errors.Wrapf(course.ErrUnknownCourse, "prerequisite %q of %q", prereq, number)
	}
	courseNode, ok := g.nodes[number]
	if !ok {
		return errors.Wrapf(course.ErrUnknownCourse, "course %q requiring %q", number, prereq)
	}

	if slices.Contains(courseNode.dependencies, prereq) {
		return nil
	}

	courseNode.dependencies = append(courseNode.dependencies, prereq)
	courseNode.inDegree++
	prereqNode.dependents = append(prereqNode.dependents, number)

	g.logger.Debug("prerequisite added", zap.String("course", number), zap.String("prerequisite", prereq))
	return nil
}

func (g *Graph) Has(number string) bool {
	_, ok := g.nodes[number]
	return ok
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// Name returns the course name stored for number.
func (g *Graph) Name(number string) (string, bool) {
	n, ok := g.nodes[number]
	if !ok {
		return "", false
	}
	return n.name, true
}

// InDegree returns the number of prerequisites recorded for number.
func (g *Graph) InDegree(number string) (int, error) {
	n, ok := g.nodes[number]
	if !ok {
		return 0, errors.Wrapf(course.ErrUnknownCourse, "course %q", number)
	}
	return n.inDegree, nil
}

// Courses returns every course number in lexical order.
func (g *Graph) Courses() []string {
	numbers := make([]string, 0, len(g.nodes))
	for number := range g.nodes {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)
	return numbers
}

// Dependencies returns the prerequisites of number in the order they were added.
func (g *Graph) Dependencies(number string) ([]string, error) {
	n, ok := g.nodes[number]
	if !ok {
		return nil, errors.Wrapf(course.ErrUnknownCourse, "course %q", number)
	}
	return slices.Clone(n.dependencies), nil
}

// Dependents returns the courses that list number as a prerequisite.
func (g *Graph) Dependents(number string) ([]string, error) {
	n, ok := g.nodes[number]
	if !ok {
		return nil, errors.Wrapf(course.ErrUnknownCourse, "course %q", number)
	}
	return slices.Clone(n.dependents), nil
}
