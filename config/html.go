package config

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ZacxDev/prereq/course"
	"github.com/pkg/errors"
)

// ParseHTMLCatalog reads the rows of a `table.courses` element. Each row
// holds the course number, the name, and optionally a comma separated list
// of prerequisite numbers. Rows without td cells (headers) are skipped.
func ParseHTMLCatalog(filename string, src []byte) ([]*course.Course, error) {
	document, err := goquery.NewDocumentFromReader(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse HTML catalog %s", filename)
	}

	table := document.Find("table.courses")
	if table.Length() == 0 {
		return nil, errors.Errorf("no table.courses element in %s", filename)
	}

	var courses []*course.Course
	var rowErr error
	table.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}
		if cells.Length() < 2 {
			rowErr = errors.Errorf("%s: row %d: expected at least a course number and name", filename, i+1)
			return false
		}

		number := strings.TrimSpace(cells.Eq(0).Text())
		name := strings.TrimSpace(cells.Eq(1).Text())

		var prereqs []string
		if cells.Length() > 2 {
			for _, p := range strings.Split(cells.Eq(2).Text(), ",") {
				if p = strings.TrimSpace(p); p != "" {
					prereqs = append(prereqs, p)
				}
			}
		}

		courses = append(courses, course.New(number, name, prereqs...))
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return courses, nil
}
