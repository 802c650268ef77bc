package config

import (
	"github.com/ZacxDev/prereq/course"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlCatalog struct {
	Courses []*course.Course `yaml:"courses"`
}

func ParseYAMLCatalog(filename string, src []byte) ([]*course.Course, error) {
	var catalog yamlCatalog
	if err := yaml.Unmarshal(src, &catalog); err != nil {
		return nil, errors.Wrapf(err, "failed to parse YAML catalog %s", filename)
	}
	return catalog.Courses, nil
}
