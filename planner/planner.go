package planner

import (
	"context"
	"io"
	"iter"

	"github.com/ZacxDev/prereq/config"
	"github.com/ZacxDev/prereq/course"
	"github.com/ZacxDev/prereq/fs"
	"github.com/ZacxDev/prereq/graph"
	"github.com/ZacxDev/prereq/tree"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNoCatalog     = errors.New("no catalog loaded")
	ErrTreeNotLoaded = errors.New("please load the data structure first")
)

// Source supplies catalog records from outside the file system.
type Source interface {
	Courses(ctx context.Context) ([]*course.Course, error)
}

// Planner ties a validated catalog to the dependency graph and the
// prerequisite tree. The graph is rebuilt on every load; the tree is built
// on demand with BuildTree.
type Planner struct {
	fs     fs.FileSystem
	logger *zap.Logger

	courses []*course.Course
	index   map[string]*course.Course
	graph   *graph.Graph
	tree    *tree.Tree
}

func New(logger *zap.Logger, fsys fs.FileSystem) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if fsys == nil {
		fsys = fs.RealFileSystem{}
	}
	return &Planner{
		fs:     fsys,
		logger: logger,
	}
}

// Load reads and validates the catalog files matched by patterns.
func (p *Planner) Load(patterns ...string) error {
	courses, err := config.Load(p.fs, patterns...)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog")
	}
	return p.LoadCourses(courses)
}

// LoadFrom reads and validates a catalog from src.
func (p *Planner) LoadFrom(ctx context.Context, src Source) error {
	courses, err := src.Courses(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog")
	}
	return p.LoadCourses(courses)
}

// LoadCourses replaces the current catalog. An invalid catalog is rejected
// as a whole and the previous one stays in place.
func (p *Planner) LoadCourses(courses []*course.Course) error {
	if err := config.Validate(courses); err != nil {
		return errors.Wrap(err, "invalid catalog")
	}

	g, err := graph.Build(p.logger, courses)
	if err != nil {
		return errors.Wrap(err, "failed to build dependency graph")
	}

	index := make(map[string]*course.Course, len(courses))
	for _, c := range courses {
		index[c.Number] = c
	}

	p.courses = courses
	p.index = index
	p.graph = g
	p.tree = nil

	p.logger.Info("catalog loaded", zap.Int("courses", len(courses)))
	return nil
}

// BuildTree loads the catalog into the prerequisite tree.
func (p *Planner) BuildTree() error {
	if p.graph == nil {
		return ErrNoCatalog
	}

	t, err := tree.Build(p.logger, p.courses)
	if err != nil {
		return errors.Wrap(err, "failed to build prerequisite tree")
	}

	p.tree = t
	p.logger.Info("prerequisite tree built", zap.Int("courses", t.Len()), zap.Int("height", t.Height()))
	return nil
}

func (p *Planner) TreeLoaded() bool {
	return p.tree != nil
}

// Schedule returns a course order that respects every prerequisite.
func (p *Planner) Schedule() ([]string, error) {
	if p.graph == nil {
		return nil, ErrNoCatalog
	}
	return p.graph.Schedule()
}

// Terms returns the schedule grouped into terms.
func (p *Planner) Terms() ([][]string, error) {
	if p.graph == nil {
		return nil, ErrNoCatalog
	}
	return p.graph.Terms()
}

// Lookup finds a course in the prerequisite tree.
func (p *Planner) Lookup(number string) (*course.Course, error) {
	if p.tree == nil {
		return nil, ErrTreeNotLoaded
	}
	c, ok := p.tree.Search(number)
	if !ok {
		return nil, errors.Wrapf(course.ErrUnknownCourse, "course %q not found", number)
	}
	return c, nil
}

// CourseList lists the tree in order as (number, name) pairs.
func (p *Planner) CourseList() (iter.Seq2[string, string], error) {
	if p.tree == nil {
		return nil, ErrTreeNotLoaded
	}
	return p.tree.InOrder(), nil
}

// RenderTree draws the prerequisite tree structure to w.
func (p *Planner) RenderTree(w io.Writer) error {
	if p.tree == nil {
		return ErrTreeNotLoaded
	}
	return p.tree.Render(w)
}
