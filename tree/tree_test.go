package tree

import (
	"bytes"
	"fmt"
	"testing"
	"testing/quick"

	"github.com/ZacxDev/prereq/course"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func inOrderNumbers(t *Tree) []string {
	var numbers []string
	for number := range t.InOrder() {
		numbers = append(numbers, number)
	}
	return numbers
}

func TestInsertEmptyTree(t *testing.T) {
	tr := New(zaptest.NewLogger(t))
	c := course.New("CSCI100", "Intro")

	require.NoError(t, tr.Insert(c))
	require.NotNil(t, tr.root)
	assert.Same(t, c, tr.root.course)
	assert.Equal(t, 1, tr.Len())
}

func TestInsertLexicalFallback(t *testing.T) {
	tr := New(zaptest.NewLogger(t))
	require.NoError(t, tr.Insert(course.New("M", "m")))
	require.NoError(t, tr.Insert(course.New("C", "c")))
	require.NoError(t, tr.Insert(course.New("X", "x")))
	require.NoError(t, tr.Insert(course.New("E", "e")))

	assert.Equal(t, "C", tr.root.left.course.Number)
	assert.Equal(t, "X", tr.root.right.course.Number)
	assert.Equal(t, "E", tr.root.left.right.course.Number)
	assert.Equal(t, []string{"C", "E", "M", "X"}, inOrderNumbers(tr))
	assert.Equal(t, 3, tr.Height())
}

func TestInsertFollowsPrerequisites(t *testing.T) {
	t.Run("prerequisite goes left of the course needing it", func(t *testing.T) {
		tr := New(zaptest.NewLogger(t))
		require.NoError(t, tr.Insert(course.New("A", "a", "Z")))
		require.NoError(t, tr.Insert(course.New("Z", "z")))

		require.NotNil(t, tr.root.left)
		assert.Equal(t, "Z", tr.root.left.course.Number, "lexical order alone would put Z right")
		assert.Equal(t, []string{"Z", "A"}, inOrderNumbers(tr))
	})

	t.Run("dependent goes right of its prerequisite", func(t *testing.T) {
		tr := New(zaptest.NewLogger(t))
		require.NoError(t, tr.Insert(course.New("Z", "z")))
		require.NoError(t, tr.Insert(course.New("A", "a", "Z")))

		require.NotNil(t, tr.root.right)
		assert.Equal(t, "A", tr.root.right.course.Number)
		assert.Equal(t, []string{"Z", "A"}, inOrderNumbers(tr))
	})

	t.Run("occupied slot recurses into the subtree", func(t *testing.T) {
		tr := New(zaptest.NewLogger(t))
		require.NoError(t, tr.Insert(course.New("C", "c", "A", "B")))
		require.NoError(t, tr.Insert(course.New("B", "b", "A")))
		require.NoError(t, tr.Insert(course.New("A", "a")))

		assert.Equal(t, "B", tr.root.left.course.Number)
		assert.Equal(t, "A", tr.root.left.left.course.Number)
		assert.Equal(t, []string{"A", "B", "C"}, inOrderNumbers(tr))
	})

	t.Run("nearest related node is searched right side first", func(t *testing.T) {
		tr := New(zaptest.NewLogger(t))
		require.NoError(t, tr.Insert(course.New("M", "m")))
		require.NoError(t, tr.Insert(course.New("C", "c")))
		require.NoError(t, tr.Insert(course.New("X", "x")))
		// Needs both C and X; X sits on the right and is found first.
		require.NoError(t, tr.Insert(course.New("Q", "q", "C", "X")))

		require.NotNil(t, tr.root.right.right)
		assert.Equal(t, "Q", tr.root.right.right.course.Number)
		assert.Nil(t, tr.root.left.right)
	})
}

func TestInsertDuplicate(t *testing.T) {
	tr := New(zaptest.NewLogger(t))
	require.NoError(t, tr.Insert(course.New("A", "a")))
	require.NoError(t, tr.Insert(course.New("B", "b", "A")))
	before := inOrderNumbers(tr)

	err := tr.Insert(course.New("B", "b again"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, course.ErrDuplicateCourse))

	assert.Equal(t, 2, tr.Len())
	assert.Equal(t, before, inOrderNumbers(tr))
	found, ok := tr.Search("B")
	require.True(t, ok)
	assert.Equal(t, "b", found.Name)
}

func TestSearch(t *testing.T) {
	tr, err := Build(zaptest.NewLogger(t), []*course.Course{
		course.New("CSCI100", "Intro"),
		course.New("CSCI200", "Data Structures", "CSCI100"),
		course.New("MATH201", "Discrete Math"),
	})
	require.NoError(t, err)

	found, ok := tr.Search("MATH201")
	require.True(t, ok)
	assert.Equal(t, "Discrete Math", found.Name)

	found, ok = tr.Search("CSCI999")
	assert.False(t, ok)
	assert.Nil(t, found)

	_, ok = New(nil).Search("CSCI100")
	assert.False(t, ok)
}

func TestInOrderIsRestartable(t *testing.T) {
	tr, err := Build(nil, []*course.Course{
		course.New("A", "a"),
		course.New("B", "b", "A"),
		course.New("C", "c", "A", "B"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, inOrderNumbers(tr))
	assert.Equal(t, []string{"A", "B", "C"}, inOrderNumbers(tr))

	var names []string
	for _, name := range tr.InOrder() {
		names = append(names, name)
		break
	}
	assert.Equal(t, []string{"a"}, names)
}

func TestBuild(t *testing.T) {
	t.Run("inserts most prerequisites first", func(t *testing.T) {
		tr, err := Build(nil, []*course.Course{
			course.New("A", "a"),
			course.New("B", "b", "A"),
			course.New("C", "c", "A", "B"),
		})
		require.NoError(t, err)
		assert.Equal(t, "C", tr.root.course.Number)
		assert.Equal(t, 3, tr.Len())
	})

	t.Run("duplicates are reported and skipped", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		tr, err := Build(zap.New(core), []*course.Course{
			course.New("A", "a"),
			course.New("A", "a copy"),
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, course.ErrDuplicateCourse))
		assert.Equal(t, 1, tr.Len())
		assert.Equal(t, 1, logs.FilterMessage("likely duplicate course detected").Len())
	})
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, New(nil).Render(&buf), ErrEmptyTree)

	tr, err := Build(nil, []*course.Course{
		course.New("CSCI200", "Data Structures", "CSCI100"),
		course.New("CSCI100", "Intro"),
		course.New("MATH300", "Topology"),
	})
	require.NoError(t, err)

	require.NoError(t, tr.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "CSCI200: Data Structures")
	assert.Contains(t, out, "L CSCI100: Intro")
	assert.Contains(t, out, "R MATH300: Topology")
}

func TestLookupProperty(t *testing.T) {
	property := func(ids []uint16, missing uint16) bool {
		inserted := make(map[string]bool)
		var courses []*course.Course
		for i, id := range ids {
			number := fmt.Sprintf("N%05d", id)
			var prereqs []string
			if i > 0 && id%3 == 0 {
				prereqs = append(prereqs, courses[len(courses)-1].Number)
			}
			if inserted[number] {
				continue
			}
			inserted[number] = true
			courses = append(courses, course.New(number, "course", prereqs...))
		}

		tr, err := Build(nil, courses)
		if err != nil || tr.Len() != len(courses) {
			return false
		}

		for _, c := range courses {
			found, ok := tr.Search(c.Number)
			if !ok || found != c {
				return false
			}
		}

		seen := make(map[string]int)
		for number := range tr.InOrder() {
			seen[number]++
		}
		for number := range inserted {
			if seen[number] != 1 {
				return false
			}
		}

		absent := fmt.Sprintf("X%05d", missing)
		_, ok := tr.Search(absent)
		return !ok
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
