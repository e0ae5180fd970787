package utils

import "testing"

type parseTarget struct {
	Highlights []string `json:"highlights"`
	Note       string   `json:"note"`
}

func TestSmartParseValidJSON(t *testing.T) {
	var out parseTarget
	if err := SmartParse(`{"highlights": ["a", "b"], "note": "n"}`, &out); err != nil {
		t.Fatalf("SmartParse: %v", err)
	}
	if len(out.Highlights) != 2 || out.Note != "n" {
		t.Errorf("unexpected parse result %+v", out)
	}
}

func TestSmartParseRepairsSingleQuotes(t *testing.T) {
	var out parseTarget
	if err := SmartParse(`{'highlights': ['a',], 'note': 'n'}`, &out); err != nil {
		t.Fatalf("SmartParse: %v", err)
	}
	if len(out.Highlights) != 1 || out.Highlights[0] != "a" {
		t.Errorf("unexpected parse result %+v", out)
	}
}

func TestSmartParseHjsonFallback(t *testing.T) {
	// Unquoted keys and a comment: hjson territory.
	input := `{
		// model commentary
		highlights: ["a"]
		note: plain
	}`
	var out parseTarget
	if err := SmartParse(input, &out); err != nil {
		t.Fatalf("SmartParse: %v", err)
	}
	if out.Note != "plain" {
		t.Errorf("unexpected note %q", out.Note)
	}
}

func TestSmartParseGarbage(t *testing.T) {
	var out parseTarget
	if err := SmartParse("sorry, I cannot help with that", &out); err == nil {
		t.Fatal("expected error for non-JSON input")
	}
}

func TestCleanMarkdown(t *testing.T) {
	got := CleanMarkdown("```json\n{\"a\": 1}\n```")
	if got != `{"a": 1}` {
		t.Errorf("unexpected cleaned output %q", got)
	}
}
