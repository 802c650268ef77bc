package tree

import (
	"github.com/ZacxDev/prereq/course"
	"go.uber.org/zap"
)

// Build inserts courses with the most prerequisites first, which keeps
// related courses close to the root. Rejected duplicates are logged and
// returned as course.Errors; the tree is still usable.
func Build(logger *zap.Logger, courses []*course.Course) (*Tree, error) {
	t := New(logger)

	var duplicates course.Errors
	for _, c := range course.SortByPrerequisiteCount(courses) {
		if err := t.Insert(c); err != nil {
			t.logger.Warn("likely duplicate course detected", zap.String("course", c.Number), zap.Error(err))
			duplicates = append(duplicates, err)
		}
	}

	return t, duplicates.ErrorOrNil()
}
