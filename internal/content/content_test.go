package content

import (
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Topics) != 4 {
		t.Errorf("len(Topics) = %d, want 4", len(c.Topics))
	}
	if len(c.Questions) != 5 {
		t.Errorf("len(Questions) = %d, want 5", len(c.Questions))
	}
}

func TestLoad_Cached(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, _ := Load()
	if a != b {
		t.Error("Load should return the same cached catalog")
	}
}

func TestParse_RejectsBadCategory(t *testing.T) {
	raw := []byte(`{
		"topics": [{"id":"x","title":"x","description":"x","category":"gaji","body":"x"}],
		"questions": [{"prompt":"p","options":["a","b","c","d"],"answer":0,"explanation":"e"}]
	}`)
	if _, err := parse(raw); err == nil {
		t.Error("expected validation error for unknown category")
	}
}

func TestParse_RejectsWrongOptionCount(t *testing.T) {
	raw := []byte(`{
		"topics": [{"id":"x","title":"x","description":"x","category":"konsep","body":"x"}],
		"questions": [{"prompt":"p","options":["a","b"],"answer":0,"explanation":"e"}]
	}`)
	if _, err := parse(raw); err == nil {
		t.Error("expected validation error for option count != 4")
	}
}

func TestQuestions_AnswerInRange(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, q := range c.Questions {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Errorf("question %d: answer %d out of range", i, q.Answer)
		}
	}
}

func TestCategoryIcons(t *testing.T) {
	for _, cat := range []Category{CategoryConcept, CategoryStructure, CategoryRevenue, CategorySpending} {
		if cat.Icon() == "•" {
			t.Errorf("category %q has no dedicated icon", cat)
		}
	}
	if Category("x").Icon() != "•" {
		t.Error("unknown category should fall back to bullet")
	}
}
