package planner

import (
	"encoding/json"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type exportedCourse struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Term   int    `json:"term"`
}

type exportedSchedule struct {
	Courses []exportedCourse `json:"courses"`
	Terms   int              `json:"terms"`
}

// ExportSchedule writes the schedule as JSON. Terms are numbered from 1.
func (p *Planner) ExportSchedule(path string) error {
	schedule, err := p.Schedule()
	if err != nil {
		return err
	}
	terms, err := p.Terms()
	if err != nil {
		return err
	}

	termOf := make(map[string]int, len(schedule))
	for i, term := range terms {
		for _, number := range term {
			termOf[number] = i + 1
		}
	}

	out := exportedSchedule{
		Courses: make([]exportedCourse, 0, len(schedule)),
		Terms:   len(terms),
	}
	for _, number := range schedule {
		out.Courses = append(out.Courses, exportedCourse{
			Number: number,
			Name:   p.index[number].Name,
			Term:   termOf[number],
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode schedule")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := p.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "error creating directory for %s", path)
		}
	}
	if err := p.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write schedule to %s", path)
	}

	p.logger.Info("schedule exported", zap.String("path", path), zap.Int("courses", len(schedule)))
	return nil
}
