package graph

import (
	"github.com/ZacxDev/prereq/course"
	"go.uber.org/zap"
)

// Build creates a graph holding every course and every prerequisite edge.
// A repeated course number keeps the first record and its edges.
// Edges naming an unknown course are skipped; they are logged and returned
// together as course.Errors while the graph is still usable.
func Build(logger *zap.Logger, courses []*course.Course) (*Graph, error) {
	g := New(logger)

	accepted := make([]*course.Course, 0, len(courses))
	for _, c := range courses {
		if g.Has(c.Number) {
			g.logger.Debug("ignoring repeated course", zap.String("course", c.Number))
			continue
		}
		g.AddCourse(c)
		accepted = append(accepted, c)
	}

	var skipped course.Errors
	for _, c := range accepted {
		for _, prereq := range c.Prerequisites {
			if err := g.AddPrerequisite(prereq, c.Number); err != nil {
				g.logger.Warn("skipping prerequisite", zap.String("course", c.Number), zap.String("prerequisite", prereq), zap.Error(err))
				skipped = append(skipped, err)
			}
		}
	}

	return g, skipped.ErrorOrNil()
}
