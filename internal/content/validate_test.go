package content

import (
	"strings"
	"testing"
)

const validCourseJSON = `{
  "id": "course-test",
  "title": "Curso de prueba",
  "level": "basico",
  "scenarios": [
    {
      "id": "sc-1",
      "title": "Decisión",
      "prompt": "¿Qué haces?",
      "tags": ["ahorro"],
      "options": [
        {"id": "a", "text": "Opción A", "feedback": "ok", "is_best": true},
        {"id": "b", "text": "Opción B", "feedback": "no", "is_best": false}
      ],
      "recall": [
        {
          "id": "r1",
          "question": "¿Cuál era la mejor opción?",
          "choices": [{"id": "x", "text": "A"}, {"id": "y", "text": "B"}],
          "correct_choice_id": "x",
          "explanation": "porque sí"
        }
      ]
    }
  ]
}`

func TestParseCourse_Valid(t *testing.T) {
	course, err := ParseCourse([]byte(validCourseJSON))
	if err != nil {
		t.Fatalf("ParseCourse: %v", err)
	}
	if course.ID != "course-test" {
		t.Errorf("ID = %q", course.ID)
	}
	if len(course.Scenarios) != 1 || len(course.Scenarios[0].Recall) != 1 {
		t.Errorf("unexpected structure: %+v", course)
	}

	// Parsed courses must also pass catalog-level validation.
	if _, err := NewCatalog([]Course{*course}); err != nil {
		t.Errorf("NewCatalog on parsed course: %v", err)
	}
}

func TestParseCourse_RejectsMissingPrompt(t *testing.T) {
	bad := strings.Replace(validCourseJSON, `"prompt": "¿Qué haces?",`, "", 1)
	if _, err := ParseCourse([]byte(bad)); err == nil {
		t.Error("expected schema error for missing prompt")
	}
}

func TestParseCourse_RejectsUnknownField(t *testing.T) {
	bad := strings.Replace(validCourseJSON, `"id": "course-test",`, `"id": "course-test", "surprise": 1,`, 1)
	if _, err := ParseCourse([]byte(bad)); err == nil {
		t.Error("expected schema error for unknown field")
	}
}

func TestParseCourse_RejectsMalformedJSON(t *testing.T) {
	if _, err := ParseCourse([]byte("{not json")); err == nil {
		t.Error("expected JSON error")
	}
}
