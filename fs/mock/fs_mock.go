package mock

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

type mockFileInfo struct {
	name  string
	mode  os.FileMode
	size  int64
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Now() }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// MockFileSystem implements the FileSystem interface for testing
type MockFileSystem struct {
	Files    map[string][]byte
	Dirs     map[string]bool
	ReadOnly map[string]bool
	fileMode map[string]os.FileMode
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:    make(map[string][]byte),
		Dirs:     make(map[string]bool),
		ReadOnly: make(map[string]bool),
		fileMode: make(map[string]os.FileMode),
	}
}

// AddFile is a setup helper that stores content without permission checks.
func (m *MockFileSystem) AddFile(filename, content string) {
	m.Files[filename] = []byte(content)
	m.fileMode[filename] = 0644
}

func (m *MockFileSystem) ReadFile(filename string) ([]byte, error) {
	if data, ok := m.Files[filename]; ok {
		return append([]byte(nil), data...), nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) WriteFile(filename string, data []byte, perm os.FileMode) error {
	if m.ReadOnly[filename] {
		return os.ErrPermission
	}
	m.Files[filename] = append([]byte(nil), data...)
	m.fileMode[filename] = perm

	return nil
}

func (m *MockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	m.Dirs[filepath.Clean(path)] = true
	return nil
}

func (m *MockFileSystem) Stat(name string) (os.FileInfo, error) {
	if data, ok := m.Files[name]; ok {
		return &mockFileInfo{name: filepath.Base(name), mode: m.fileMode[name], size: int64(len(data))}, nil
	}
	if m.Dirs[filepath.Clean(name)] {
		return &mockFileInfo{name: filepath.Base(name), mode: os.ModeDir | 0755, isDir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (m *MockFileSystem) DoublestarGlob(pattern string) ([]string, error) {
	var matches []string
	for filename := range m.Files {
		matched, err := doublestar.Match(pattern, filename)
		if err != nil {
			return nil, err
		}
		if matched {
			matches = append(matches, filename)
		}
	}
	// Map iteration is random; the real glob walks directories in order.
	sort.Strings(matches)
	return matches, nil
}

// Paths returns every stored file under prefix, sorted.
func (m *MockFileSystem) Paths(prefix string) []string {
	var paths []string
	for path := range m.Files {
		if strings.HasPrefix(path, prefix) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}
