package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadDir parses every .json course file in dir. A missing directory is
// not an error: it simply means no courses have been imported yet.
func LoadDir(dir string) ([]Course, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var courses []Course
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		course, err := ParseCourse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		courses = append(courses, *course)
	}
	return courses, nil
}

// LoadCatalog builds the runtime catalog: the built-in courses plus
// everything imported into dir. An empty dir argument skips imports.
func LoadCatalog(dir string) (*Catalog, error) {
	courses := SeedCourses()
	if dir != "" {
		imported, err := LoadDir(dir)
		if err != nil {
			return nil, err
		}
		courses = append(courses, imported...)
	}
	return NewCatalog(courses)
}
