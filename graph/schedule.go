package graph

import (
	"fmt"
	"strings"

	"github.com/ZacxDev/prereq/course"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// CycleError reports the courses that could not be scheduled because their
// prerequisites form a loop.
type CycleError struct {
	Scheduled  int
	Total      int
	Unresolved []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %d of %d courses cannot be scheduled: %s",
		e.Total-e.Scheduled, e.Total, strings.Join(e.Unresolved, ", "))
}

func (e *CycleError) Unwrap() error {
	return course.ErrCycleDetected
}

// Schedule returns every course number ordered so that each course comes
// after all of its prerequisites, using Kahn's algorithm. Courses without
// prerequisites are seeded in lexical order, which makes the result stable
// across calls.
//
// The graph is not modified: a graph with a cycle returns the same
// *CycleError on every call and never a partial schedule.
func (g *Graph) Schedule() ([]string, error) {
	inDegree, queue := g.seed()
	schedule := make([]string, 0, len(g.nodes))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		schedule = append(schedule, current)

		for _, dependent := range g.nodes[current].dependents {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(schedule) < len(g.nodes) {
		return nil, g.cycleError(len(schedule), inDegree)
	}

	g.logger.Debug("schedule computed", zap.Int("courses", len(schedule)))
	return schedule, nil
}

// Terms groups the schedule into waves. Every course in a wave has all of
// its prerequisites in earlier waves, so a wave can be taken in one term.
// Courses within a wave are in lexical order.
func (g *Graph) Terms() ([][]string, error) {
	inDegree, wave := g.seed()
	var terms [][]string
	scheduled := 0

	for len(wave) > 0 {
		terms = append(terms, wave)
		scheduled += len(wave)

		var next []string
		for _, number := range wave {
			for _, dependent := range g.nodes[number].dependents {
				inDegree[dependent]--
				if inDegree[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}
		slices.Sort(next)
		wave = next
	}

	if scheduled < len(g.nodes) {
		return nil, g.cycleError(scheduled, inDegree)
	}

	g.logger.Debug("terms computed", zap.Int("terms", len(terms)), zap.Int("courses", scheduled))
	return terms, nil
}

// seed copies the in-degrees and returns the courses that have none, in
// lexical order.
func (g *Graph) seed() (map[string]int, []string) {
	inDegree := make(map[string]int, len(g.nodes))
	var ready []string

	for _, number := range g.Courses() {
		n := g.nodes[number]
		inDegree[number] = n.inDegree
		if n.inDegree == 0 {
			ready = append(ready, number)
		}
	}

	return inDegree, ready
}

func (g *Graph) cycleError(scheduled int, inDegree map[string]int) *CycleError {
	var unresolved []string
	for number, degree := range inDegree {
		if degree > 0 {
			unresolved = append(unresolved, number)
		}
	}
	slices.Sort(unresolved)

	g.logger.Warn("prerequisite cycle",
		zap.Int("scheduled", scheduled),
		zap.Int("total", len(g.nodes)),
		zap.Strings("unresolved", unresolved))

	return &CycleError{
		Scheduled:  scheduled,
		Total:      len(g.nodes),
		Unresolved: unresolved,
	}
}
