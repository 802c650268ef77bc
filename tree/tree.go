package tree

import (
	"iter"

	"github.com/ZacxDev/prereq/course"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Tree struct {
	root   *node
	size   int
	logger *zap.Logger
}

type node struct {
	course *course.Course
	left   *node
	right  *node
}

func New(logger *zap.Logger) *Tree {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tree{logger: logger}
}

// Insert places c in the tree. A course whose number is already present is
// rejected with course.ErrDuplicateCourse and the tree is left as it was.
func (t *Tree) Insert(c *course.Course) error {
	if _, exists := t.Search(c.Number); exists {
		return errors.Wrapf(course.ErrDuplicateCourse, "course %q", c.Number)
	}

	if t.root == nil {
		t.root = &node{course: c}
	} else if err := t.insert(t.root, c); err != nil {
		return err
	}

	t.size++
	t.logger.Debug("course inserted", zap.String("course", c.Number))
	return nil
}

func (t *Tree) insert(n *node, c *course.Course) error {
	related := findRelated(n, c)

	switch {
	case related == nil:
		switch {
		case c.Number < n.course.Number:
			return t.attach(&n.left, c)
		case c.Number > n.course.Number:
			return t.attach(&n.right, c)
		default:
			return errors.Wrapf(course.ErrDuplicateCourse, "likely duplicate of %q", n.course.Number)
		}
	case course.IsPrerequisiteOf(related.course, c):
		return t.attach(&related.right, c)
	default:
		return t.attach(&related.left, c)
	}
}

// attach stores c in an empty slot or keeps descending from the occupant.
func (t *Tree) attach(slot **node, c *course.Course) error {
	if *slot == nil {
		*slot = &node{course: c}
		return nil
	}
	return t.insert(*slot, c)
}

// findRelated walks the subtree right, self, left and returns the first node
// that is a prerequisite of c or depends on c.
func findRelated(n *node, c *course.Course) *node {
	if n == nil {
		return nil
	}
	if related := findRelated(n.right, c); related != nil {
		return related
	}
	if course.IsPrerequisiteOf(n.course, c) || course.IsPrerequisiteOf(c, n.course) {
		return n
	}
	return findRelated(n.left, c)
}

// Search returns the course with the given number. Placement depends on
// relationships, so the whole tree is walked.
func (t *Tree) Search(number string) (*course.Course, bool) {
	var found *course.Course
	walk(t.root, func(n *node) bool {
		if n.course.Number == number {
			found = n.course
			return false
		}
		return true
	})
	return found, found != nil
}

// InOrder yields (number, name) pairs left, self, right. The sequence can be
// ranged over any number of times.
func (t *Tree) InOrder() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		walk(t.root, func(n *node) bool {
			return yield(n.course.Number, n.course.Name)
		})
	}
}

func (t *Tree) Len() int {
	return t.size
}

func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// walk visits n's subtree in order and stops as soon as visit returns false.
func walk(n *node, visit func(*node) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, visit) && visit(n) && walk(n.right, visit)
}
