package extract

import "testing"

func TestSplitSections_QuotedEntries(t *testing.T) {
	body := `
	'gpt-4o': {
		contextWindow: 128_000,
		cost: { input: 2.5, output: 10.0 },
	},
	'o3-mini': {
		contextWindow: 200_000,
	},
	'claude-sonnet-4': {
		contextWindow: 200_000,
	},
`
	sections := splitSections(body)
	if len(sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(sections))
	}

	want := []string{"gpt-4o", "o3-mini", "claude-sonnet-4"}
	for i, name := range want {
		if sections[i].Name != name {
			t.Errorf("Section %d: expected name %q, got %q", i, name, sections[i].Name)
		}
	}
}

func TestSplitSections_NestedObjectsDoNotSplit(t *testing.T) {
	body := `
	'deepseek-r1': {
		reasoningCapabilities: {
			canTurnOff: false,
			slider: { type: 'budget', min: 1_024, max: 8_192, default: 2_048 },
		},
		cost: { input: 0.55, output: 2.19 },
	},
	'deepseek-v3': {
		contextWindow: 64_000,
	},
`
	sections := splitSections(body)
	if len(sections) != 2 {
		t.Fatalf("Nested objects must not open new sections, got %d sections", len(sections))
	}
	if sections[0].Name != "deepseek-r1" || sections[1].Name != "deepseek-v3" {
		t.Errorf("Unexpected section names: %q, %q", sections[0].Name, sections[1].Name)
	}
	if !contains(sections[0].Fragment, "budget") {
		t.Error("First fragment should span its whole entry including nested objects")
	}
	if contains(sections[0].Fragment, "64_000") {
		t.Error("First fragment must end before the next sibling entry")
	}
}

func TestSplitSections_BareIdentifierKeys(t *testing.T) {
	body := `
	anthropic: {
		apiKey: '',
	},
	openAI: {
		apiKey: '',
	},
`
	sections := splitSections(body)
	if len(sections) != 2 {
		t.Fatalf("Expected 2 sections for bare keys, got %d", len(sections))
	}
	if sections[0].Name != "anthropic" || sections[1].Name != "openAI" {
		t.Errorf("Unexpected names: %q, %q", sections[0].Name, sections[1].Name)
	}
}

func TestSplitSections_FallbackOnIrregularFormatting(t *testing.T) {
	// No "key: {" pattern at all; the fallback splits before each quoted
	// identifier followed by a colon.
	body := `'model-a': irregular(), 'model-b': alsoIrregular()`

	sections := splitSections(body)
	if len(sections) != 2 {
		t.Fatalf("Expected fallback to yield 2 sections, got %d", len(sections))
	}
	if sections[0].Name != "model-a" || sections[1].Name != "model-b" {
		t.Errorf("Unexpected fallback names: %q, %q", sections[0].Name, sections[1].Name)
	}
}

func TestSplitSections_EmptyBody(t *testing.T) {
	if sections := splitSections(""); len(sections) != 0 {
		t.Errorf("Expected no sections for empty body, got %d", len(sections))
	}
}

func TestSplitSections_UnterminatedQuote(t *testing.T) {
	// A stray trailing quote must end the scan, not panic it.
	for _, body := range []string{
		"foo: 1, '",
		"`",
		`"half finished`,
	} {
		if sections := splitSections(body); len(sections) != 0 {
			t.Errorf("Body %q: expected no sections, got %d", body, len(sections))
		}
	}

	// Entries before the stray quote survive.
	body := `
	'model-a': {
		contextWindow: 128_000,
	},
	'
`
	sections := splitSections(body)
	if len(sections) != 1 || sections[0].Name != "model-a" {
		t.Fatalf("Expected the entry before the stray quote to survive, got %+v", sections)
	}
}

func TestSplitSections_CommentsIgnored(t *testing.T) {
	body := `
	// 'commented-out': {
	'real-model': {
		contextWindow: 32_000, // inline note: {
	},
`
	sections := splitSections(body)
	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if sections[0].Name != "real-model" {
		t.Errorf("Expected name 'real-model', got %q", sections[0].Name)
	}
}
