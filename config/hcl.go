package config

import (
	"github.com/ZacxDev/prereq/course"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
)

// hclCatalog is the root of an HCL catalog file:
//
//	course "CSCI200" {
//	  name          = "Data Structures"
//	  prerequisites = ["CSCI100"]
//	}
type hclCatalog struct {
	Courses []*hclCourse `hcl:"course,block"`
}

type hclCourse struct {
	Number        string   `hcl:"number,label"`
	Name          string   `hcl:"name"`
	Prerequisites []string `hcl:"prerequisites,optional"`
}

func ParseHCLCatalog(filename string, src []byte) ([]*course.Course, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse HCL catalog %s", filename)
	}

	var root hclCatalog
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode HCL catalog %s", filename)
	}

	courses := make([]*course.Course, 0, len(root.Courses))
	for _, c := range root.Courses {
		courses = append(courses, course.New(c.Number, c.Name, c.Prerequisites...))
	}
	return courses, nil
}
