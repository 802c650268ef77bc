package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ZacxDev/prereq/course"
	"github.com/ZacxDev/prereq/fs"
	"github.com/pkg/errors"
	"go.starlark.net/starlark"
)

// ModuleCache is used to store loaded Starlark modules
type ModuleCache struct {
	modules map[string]starlark.StringDict
	mutex   sync.RWMutex
}

// NewModuleCache creates a new ModuleCache
func NewModuleCache() *ModuleCache {
	return &ModuleCache{
		modules: make(map[string]starlark.StringDict),
	}
}

// Get retrieves a module from the cache
func (mc *ModuleCache) Get(key string) (starlark.StringDict, bool) {
	mc.mutex.RLock()
	defer mc.mutex.RUnlock()
	module, ok := mc.modules[key]
	return module, ok
}

// Set stores a module in the cache
func (mc *ModuleCache) Set(key string, module starlark.StringDict) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()
	mc.modules[key] = module
}

// LoadModule is a custom load function for Starlark that implements caching.
// Relative module paths resolve against the directory of the catalog being
// executed.
func LoadModule(thread *starlark.Thread, module string) (starlark.StringDict, error) {
	cache := thread.Local("moduleCache").(*ModuleCache)
	fsys := thread.Local("fs").(fs.FileSystem)

	if cachedModule, ok := cache.Get(module); ok {
		if cachedModule == nil {
			return nil, errors.Errorf("cycle in load graph at %s", module)
		}
		return cachedModule, nil
	}

	filename := module
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(filepath.Dir(thread.Name), filename)
	}

	src, err := fsys.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read module %s", filename)
	}

	// A nil entry marks the module as in progress.
	cache.Set(module, nil)
	globals, err := starlark.ExecFile(thread, filename, src, nil)
	if err != nil {
		return nil, err
	}

	cache.Set(module, globals)

	return globals, nil
}

// ParseStarlarkCatalog executes a Starlark catalog and reads its global
// `courses` dict:
//
//	courses = {
//	    "CSCI200": {"name": "Data Structures", "prerequisites": ["CSCI100"]},
//	}
func ParseStarlarkCatalog(fsys fs.FileSystem, filename string) ([]*course.Course, error) {
	src, err := fsys.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", filename)
	}

	thread := &starlark.Thread{
		Name: filename,
		Load: LoadModule,
	}
	thread.SetLocal("moduleCache", NewModuleCache())
	thread.SetLocal("fs", fsys)

	globals, err := starlark.ExecFile(thread, filename, src, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Starlark script")
	}

	coursesValue, ok := globals["courses"]
	if !ok {
		return nil, errors.New("global 'courses' object not found in Starlark catalog")
	}

	coursesDict, ok := coursesValue.(*starlark.Dict)
	if !ok {
		return nil, errors.New("global 'courses' object is not a dictionary")
	}

	var courses []*course.Course
	for _, item := range coursesDict.Items() {
		number, ok := item.Index(0).(starlark.String)
		if !ok {
			return nil, fmt.Errorf("expected string course number, got %s", item.Index(0).Type())
		}

		dict, ok := item.Index(1).(*starlark.Dict)
		if !ok {
			return nil, fmt.Errorf("expected dict for course %s, got %s", number.GoString(), item.Index(1).Type())
		}

		c, err := parseCourse(number.GoString(), dict)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse course %s", number.GoString())
		}
		courses = append(courses, c)
	}

	return courses, nil
}

func parseCourse(number string, dict *starlark.Dict) (*course.Course, error) {
	c := &course.Course{Number: number}

	if name, ok, err := getStringValue(dict, "name"); err != nil {
		return nil, err
	} else if ok {
		c.Name = name
	}

	if prereqs, ok, err := getStringList(dict, "prerequisites"); err != nil {
		return nil, err
	} else if ok {
		c.Prerequisites = prereqs
	}

	return c, nil
}

func getStringValue(dict *starlark.Dict, key string) (string, bool, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil || !found {
		return "", false, err
	}

	strValue, ok := value.(starlark.String)
	if !ok {
		return "", false, fmt.Errorf("expected string for key %s, got %T", key, value)
	}

	return strValue.GoString(), true, nil
}

func getStringList(dict *starlark.Dict, key string) ([]string, bool, error) {
	value, found, err := dict.Get(starlark.String(key))
	if err != nil || !found {
		return nil, false, err
	}

	list, ok := value.(*starlark.List)
	if !ok {
		return nil, false, fmt.Errorf("expected list for key %s, got %T", key, value)
	}

	var result []string
	iter := list.Iterate()
	defer iter.Done()
	var x starlark.Value
	for iter.Next(&x) {
		str, ok := x.(starlark.String)
		if !ok {
			return nil, false, fmt.Errorf("expected string in list for key %s, got %T", key, x)
		}
		result = append(result, str.GoString())
	}

	return result, true, nil
}
