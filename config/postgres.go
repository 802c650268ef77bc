package config

import (
	"context"

	"github.com/ZacxDev/prereq/course"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const listCourses = `SELECT number, name FROM courses ORDER BY number`
const listPrerequisites = `SELECT course_number, prerequisite_number FROM prerequisites ORDER BY course_number, position`

// PostgresSource reads a catalog from the courses and prerequisites tables.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

func NewPostgresSource(ctx context.Context, connString string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to catalog database")
	}
	return &PostgresSource{Pool: pool}, nil
}

func (s *PostgresSource) Close() {
	s.Pool.Close()
}

// Prerequisite is one row of the prerequisites table.
type Prerequisite struct {
	CourseNumber       string
	PrerequisiteNumber string
}

func (s *PostgresSource) Courses(ctx context.Context) ([]*course.Course, error) {
	rows, err := s.Pool.Query(ctx, listCourses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}
	courses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*course.Course, error) {
		c := &course.Course{}
		if err := row.Scan(&c.Number, &c.Name); err != nil {
			return nil, err
		}
		return c, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan courses")
	}

	rows, err = s.Pool.Query(ctx, listPrerequisites)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prerequisites")
	}
	prereqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Prerequisite, error) {
		var p Prerequisite
		err := row.Scan(&p.CourseNumber, &p.PrerequisiteNumber)
		return p, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan prerequisites")
	}

	return attachPrerequisites(courses, prereqs)
}

// attachPrerequisites appends each prerequisite row to its course. A row for
// a course that does not exist is an error; a row naming an unknown
// prerequisite is left for Validate to report.
func attachPrerequisites(courses []*course.Course, prereqs []Prerequisite) ([]*course.Course, error) {
	byNumber := make(map[string]*course.Course, len(courses))
	for _, c := range courses {
		byNumber[c.Number] = c
	}

	for _, p := range prereqs {
		c, ok := byNumber[p.CourseNumber]
		if !ok {
			return nil, errors.Wrapf(course.ErrUnknownCourse, "prerequisite row for %q", p.CourseNumber)
		}
		c.Prerequisites = append(c.Prerequisites, p.PrerequisiteNumber)
	}

	return courses, nil
}
