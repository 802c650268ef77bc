package course

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrerequisiteOf(t *testing.T) {
	intro := New("CSCI100", "Introduction to Computer Science")
	ds := New("CSCI200", "Data Structures", "CSCI100")

	assert.True(t, IsPrerequisiteOf(intro, ds))
	assert.False(t, IsPrerequisiteOf(ds, intro))
	assert.False(t, IsPrerequisiteOf(intro, intro))
	assert.False(t, IsPrerequisiteOf(nil, ds))
}

func TestNewCopiesPrerequisites(t *testing.T) {
	prereqs := []string{"MATH201"}
	c := New("CSCI300", "Algorithms", prereqs...)
	prereqs[0] = "changed"

	assert.Equal(t, []string{"MATH201"}, c.Prerequisites)
}

func TestValidate(t *testing.T) {
	t.Run("valid course", func(t *testing.T) {
		assert.NoError(t, New("CSCI200", "Data Structures", "CSCI100").Validate())
	})

	t.Run("missing number", func(t *testing.T) {
		err := New("", "Nameless").Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Number")
	})

	t.Run("missing name", func(t *testing.T) {
		err := New("CSCI100", "").Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name")
	})

	t.Run("empty prerequisite entry", func(t *testing.T) {
		assert.Error(t, New("CSCI200", "Data Structures", "").Validate())
	})

	t.Run("self prerequisite", func(t *testing.T) {
		err := New("CSCI200", "Data Structures", "CSCI200").Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lists itself")
	})
}

func TestSortByPrerequisiteCount(t *testing.T) {
	a := New("A", "a")
	b := New("B", "b", "A")
	c := New("C", "c", "A", "B")
	d := New("D", "d", "A")
	input := []*Course{a, b, c, d}

	sorted := SortByPrerequisiteCount(input)

	assert.Equal(t, []*Course{c, b, d, a}, sorted)
	assert.Equal(t, []*Course{a, b, c, d}, input, "input must not be reordered")
}

func TestErrors(t *testing.T) {
	var errs Errors
	assert.NoError(t, errs.ErrorOrNil())

	errs = append(errs, errors.Wrap(ErrUnknownCourse, "CSCI999"))
	errs = append(errs, errors.Wrap(ErrDuplicateCourse, "CSCI100"))

	err := errs.ErrorOrNil()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCourse))
	assert.True(t, errors.Is(err, ErrDuplicateCourse))
	assert.False(t, errors.Is(err, ErrCycleDetected))
	assert.Equal(t, "CSCI999: unknown course; CSCI100: duplicate course", err.Error())
}
