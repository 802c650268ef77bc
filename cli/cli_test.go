package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/ZacxDev/prereq/course"
	"github.com/ZacxDev/prereq/fs/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `# number, name, prerequisites...
CSCI100, Introduction to Computer Science
CSCI101, Introduction to Programming in C++, CSCI100
CSCI200, Data Structures, CSCI101
MATH201, Discrete Mathematics
CSCI300, Introduction to Algorithms, CSCI200, MATH201
`

func run(t *testing.T, fs *mock.MockFileSystem, args ...string) (string, string, error) {
	t.Helper()
	var out, errW bytes.Buffer
	err := Run(context.Background(), args, &out, &errW, fs)
	return out.String(), errW.String(), err
}

func catalogFS() *mock.MockFileSystem {
	fs := mock.NewMockFileSystem()
	fs.AddFile("catalog/courses.csv", catalogCSV)
	return fs
}

func TestRunTerms(t *testing.T) {
	out, _, err := run(t, catalogFS(), "--catalog", "catalog/*.csv", "terms")
	require.NoError(t, err)
	assert.Equal(t, "Term 1: CSCI100, MATH201\nTerm 2: CSCI101\nTerm 3: CSCI200\nTerm 4: CSCI300\n", out)
}

func TestRunSchedule(t *testing.T) {
	fs := catalogFS()
	out, _, err := run(t, fs, "-c", "catalog/courses.csv", "schedule", "--out", "out/schedule.json")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. CSCI100, Introduction to Computer Science\n")
	assert.Contains(t, out, "  5. CSCI300, Introduction to Algorithms\n")

	var exported map[string]any
	require.NoError(t, json.Unmarshal(fs.Files["out/schedule.json"], &exported))
	assert.EqualValues(t, 4, exported["terms"])
}

func TestRunCourse(t *testing.T) {
	out, _, err := run(t, catalogFS(), "-c", "catalog/courses.csv", "course", "csci300", "CSCI100")
	require.NoError(t, err)
	assert.Equal(t, "CSCI300, Introduction to Algorithms\n"+
		"Prerequisites: CSCI200, MATH201\n"+
		"\n"+
		"CSCI100, Introduction to Computer Science\n"+
		"Prerequisites: none\n"+
		"Required by: CSCI101\n", out)
}

func TestRunCourseUnknown(t *testing.T) {
	_, _, err := run(t, catalogFS(), "-c", "catalog/courses.csv", "course", "CSCI999")
	require.Error(t, err)
	assert.ErrorIs(t, err, course.ErrUnknownCourse)
}

func TestRunList(t *testing.T) {
	out, _, err := run(t, catalogFS(), "-c", "catalog/courses.csv", "list")
	require.NoError(t, err)
	for _, line := range []string{
		"CSCI100, Introduction to Computer Science\n",
		"CSCI101, Introduction to Programming in C++\n",
		"CSCI200, Data Structures\n",
		"CSCI300, Introduction to Algorithms\n",
		"MATH201, Discrete Mathematics\n",
	} {
		assert.Contains(t, out, line)
	}
}

func TestRunTree(t *testing.T) {
	out, _, err := run(t, catalogFS(), "-c", "catalog/courses.csv", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "CSCI300: Introduction to Algorithms")
}

func TestRunCycle(t *testing.T) {
	fs := mock.NewMockFileSystem()
	fs.AddFile("cycle.csv", "A, a, B\nB, b, A\n")

	_, logs, err := run(t, fs, "-c", "cycle.csv", "--log-format", "json", "schedule")
	require.Error(t, err)
	assert.ErrorIs(t, err, course.ErrCycleDetected)
	assert.Contains(t, logs, `"msg":"prerequisite cycle"`)
}

func TestRunMissingCatalog(t *testing.T) {
	_, _, err := run(t, mock.NewMockFileSystem(), "terms")
	require.Error(t, err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestRunUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown command":    {"frobnicate"},
		"invalid log level":  {"--log-level", "loud", "terms"},
		"invalid log format": {"--log-format", "xml", "terms"},
		"missing number":     {"course"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, catalogFS(), args...)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestRunHelp(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {"course", "--help"}} {
		out, _, err := run(t, catalogFS(), args...)

		var exitErr *ExitError
		require.True(t, errors.As(err, &exitErr), "got %v", err)
		assert.Equal(t, 0, exitErr.Code)
		assert.Empty(t, exitErr.Message)
		assert.Contains(t, out, "Usage: prereq")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("info", "json", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = NewLogger("loud", "json", &buf)
	assert.Error(t, err)
	_, err = NewLogger("info", "xml", &buf)
	assert.Error(t, err)
}
