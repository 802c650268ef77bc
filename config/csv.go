package config

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/ZacxDev/prereq/course"
	"github.com/pkg/errors"
)

// ParseCSVCatalog reads one course per line: number, name, then any number
// of prerequisite numbers. Lines starting with # are comments.
func ParseCSVCatalog(filename string, src []byte) ([]*course.Course, error) {
	r := csv.NewReader(bytes.NewReader(src))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	var courses []*course.Course
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CSV catalog %s", filename)
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if len(record) < 2 {
			line, _ := r.FieldPos(0)
			return nil, errors.Errorf("%s:%d: expected at least a course number and name", filename, line)
		}

		var prereqs []string
		for _, p := range record[2:] {
			if p != "" {
				prereqs = append(prereqs, p)
			}
		}
		courses = append(courses, course.New(record[0], record[1], prereqs...))
	}

	return courses, nil
}
