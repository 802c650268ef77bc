package course

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Course is a single catalog entry. Values are treated as read-only once a
// loader has produced them.
type Course struct {
	Number        string   `validate:"required,max=64" yaml:"number"`
	Name          string   `validate:"required" yaml:"name"`
	Prerequisites []string `validate:"dive,required" yaml:"prerequisites"`
}

func New(number, name string, prerequisites ...string) *Course {
	return &Course{
		Number:        number,
		Name:          name,
		Prerequisites: slices.Clone(prerequisites),
	}
}

// IsPrerequisiteOf reports whether a must be taken before b.
func IsPrerequisiteOf(a, b *Course) bool {
	if a == nil || b == nil {
		return false
	}
	return slices.Contains(b.Prerequisites, a.Number)
}

func (c *Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

func (c *Course) String() string {
	return fmt.Sprintf("%s: %s", c.Number, c.Name)
}

// Validate checks the record on its own. Cross-record checks (unknown
// prerequisites, duplicates) belong to the loader.
func (c *Course) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrapf(err, "invalid course %q", c.Number)
	}
	if slices.Contains(c.Prerequisites, c.Number) {
		return errors.Errorf("invalid course %q: lists itself as a prerequisite", c.Number)
	}
	return nil
}

// SortByPrerequisiteCount returns a copy of courses ordered so that courses
// with the most prerequisites come first. Ties keep their input order.
func SortByPrerequisiteCount(courses []*Course) []*Course {
	sorted := slices.Clone(courses)
	slices.SortStableFunc(sorted, func(a, b *Course) int {
		return len(b.Prerequisites) - len(a.Prerequisites)
	})
	return sorted
}
