// Package config loads course catalogs. A catalog is one or more files,
// selected with doublestar patterns, in any of the supported formats:
// Starlark (.star), HCL (.hcl), YAML (.yaml, .yml), CSV (.csv, .txt) and
// HTML (.html, .htm). Catalogs can also be read from PostgreSQL.
package config

import (
	"path/filepath"
	"strings"

	"github.com/ZacxDev/prereq/course"
	"github.com/ZacxDev/prereq/fs"
	"github.com/pkg/errors"
)

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Load reads every catalog file matched by patterns, in pattern order. A
// file matched by more than one pattern is read once. The result is not
// validated; see Validate.
func Load(fsys fs.FileSystem, patterns ...string) ([]*course.Course, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no catalog given")
	}

	var courses []*course.Course
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		files, err := expand(fsys, pattern)
		if err != nil {
			return nil, err
		}

		for _, file := range files {
			if seen[file] {
				continue
			}
			seen[file] = true

			parsed, err := LoadFile(fsys, file)
			if err != nil {
				return nil, err
			}
			courses = append(courses, parsed...)
		}
	}

	return courses, nil
}

// LoadFile reads a single catalog, choosing the parser by file extension.
func LoadFile(fsys fs.FileSystem, filename string) ([]*course.Course, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".star" {
		return ParseStarlarkCatalog(fsys, filename)
	}

	var parse func(string, []byte) ([]*course.Course, error)
	switch ext {
	case ".hcl":
		parse = ParseHCLCatalog
	case ".yaml", ".yml":
		parse = ParseYAMLCatalog
	case ".csv", ".txt":
		parse = ParseCSVCatalog
	case ".html", ".htm":
		parse = ParseHTMLCatalog
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", filename)
	}

	src, err := fsys.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", filename)
	}
	return parse(filename, src)
}

func expand(fsys fs.FileSystem, pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		if _, err := fsys.Stat(pattern); err != nil {
			return nil, errors.Wrapf(err, "catalog %s", pattern)
		}
		return []string{pattern}, nil
	}

	matches, err := fsys.DoublestarGlob(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "error expanding glob pattern %s", pattern)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no catalog files match %s", pattern)
	}
	return matches, nil
}

// Validate checks a loaded catalog: every record must be well formed,
// numbers must be unique and every prerequisite must name a loaded course.
// All problems are returned together as course.Errors.
func Validate(courses []*course.Course) error {
	var problems course.Errors
	numbers := make(map[string]bool, len(courses))

	for _, c := range courses {
		if err := c.Validate(); err != nil {
			problems = append(problems, err)
		}
		if numbers[c.Number] {
			problems = append(problems, errors.Wrapf(course.ErrDuplicateCourse, "course %q", c.Number))
		}
		numbers[c.Number] = true
	}

	for _, c := range courses {
		for _, prereq := range c.Prerequisites {
			if prereq != "" && !numbers[prereq] {
				problems = append(problems, errors.Wrapf(course.ErrUnknownCourse, "course %q lists prerequisite %q", c.Number, prereq))
			}
		}
	}

	return problems.ErrorOrNil()
}
