package quiz

import (
	"slices"
	"testing"
)

func questionProps(t *testing.T, s map[string]any) (map[string]any, []any) {
	t.Helper()
	questions := s["properties"].(map[string]any)["questions"].(map[string]any)
	item := questions["items"].(map[string]any)
	return item["properties"].(map[string]any), item["required"].([]any)
}

func TestBuildQuizSchema_PG(t *testing.T) {
	schema := buildQuizSchema(sampleForm().WithOptionCount(5))
	if schema.Name != "quiz-pilihan-ganda-5" {
		t.Errorf("unexpected schema name %q", schema.Name)
	}

	props, required := questionProps(t, schema.Definition)
	opts, ok := props["options"].(map[string]any)
	if !ok {
		t.Fatal("options missing from PG schema")
	}
	if opts["minItems"] != 5 || opts["maxItems"] != 5 {
		t.Errorf("expected minItems and maxItems 5, got %v / %v", opts["minItems"], opts["maxItems"])
	}
	if !slices.Contains(required, any("options")) {
		t.Error("options should be required for PG")
	}
	if props["correctAnswer"].(map[string]any)["type"] != "string" {
		t.Error("PG correctAnswer should be a string")
	}
}

func TestBuildQuizSchema_PGKompleks(t *testing.T) {
	schema := buildQuizSchema(sampleForm().WithFormat(FormatPGKompleks))
	props, _ := questionProps(t, schema.Definition)
	if props["correctAnswer"].(map[string]any)["type"] != "array" {
		t.Error("PG Kompleks correctAnswer should be an array")
	}
}

func TestBuildQuizSchema_Menjodohkan(t *testing.T) {
	schema := buildQuizSchema(sampleForm().WithFormat(FormatMenjodohkan))
	if schema.Name != "quiz-menjodohkan" {
		t.Errorf("unexpected schema name %q", schema.Name)
	}
	props, required := questionProps(t, schema.Definition)
	if _, ok := props["matches"]; !ok {
		t.Fatal("matches missing from menjodohkan schema")
	}
	if !slices.Contains(required, any("matches")) {
		t.Error("matches should be required for menjodohkan")
	}
	if _, ok := props["options"]; ok {
		t.Error("menjodohkan schema should not declare options")
	}
}

func TestBuildQuizSchema_Uraian(t *testing.T) {
	schema := buildQuizSchema(sampleForm().WithFormat(FormatUraian))
	props, _ := questionProps(t, schema.Definition)
	if _, ok := props["options"]; ok {
		t.Error("uraian schema should not declare options")
	}
	if _, ok := props["matches"]; ok {
		t.Error("uraian schema should not declare matches")
	}
}

func TestSchemaName_DistinguishesOptionCounts(t *testing.T) {
	a := schemaName(sampleForm().WithOptionCount(4))
	b := schemaName(sampleForm().WithOptionCount(6))
	if a == b {
		t.Error("schemas with different option counts must have distinct names")
	}
}
