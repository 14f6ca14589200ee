package content

import (
	"os"
	"path/filepath"
	"testing"
)

const importedCourse = `{
  "id": "course-extra-001",
  "slug": "extra",
  "title": "Curso Extra",
  "description": "Material importado",
  "level": "intermedio",
  "estimated_minutes": 10,
  "sort_order": 2,
  "scenarios": [
    {
      "id": "scenario-extra-001",
      "course_id": "course-extra-001",
      "order_index": 0,
      "title": "Extra",
      "prompt": "¿Qué haces?",
      "options": [
        {"id": "a", "text": "A", "feedback": "ok", "is_best": true},
        {"id": "b", "text": "B", "feedback": "no", "is_best": false}
      ],
      "recall": [],
      "tags": ["ahorro"]
    }
  ]
}`

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.json"), []byte(importedCourse), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-JSON files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	courses, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "course-extra-001" {
		t.Fatalf("courses = %+v", courses)
	}
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	courses, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if courses != nil {
		t.Fatalf("expected no courses, got %v", courses)
	}
}

func TestLoadCatalog_MergesSeedAndImports(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "extra.json"), []byte(importedCourse), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Course("course-pilot-001") == nil {
		t.Error("seed course missing")
	}
	if catalog.Scenario("scenario-extra-001") == nil {
		t.Error("imported scenario missing")
	}
}

func TestLoadCatalog_RejectsIDCollision(t *testing.T) {
	dir := t.TempDir()
	dup := []byte(importedCourse)
	if err := os.WriteFile(filepath.Join(dir, "a.json"), dup, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.json"), dup, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(dir); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
