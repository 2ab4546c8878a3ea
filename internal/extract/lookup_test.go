package extract

import (
	"testing"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

func capsWithWindow(window int) core.Capabilities {
	return core.Capabilities{ContextWindow: &window}
}

func TestNormalizeModelName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"claude-3.5-sonnet", "claudesonnet"},
		{"claude 3.5 sonnet", "claudesonnet"},
		{"llama3.1:latest", "llama"},
		{"qwen2.5-coder-7b", "qwencoder"},
		{"gpt-4o", "gpt4o"},
		{"deepseek_v3", "deepseekv3"},
	}
	for _, tc := range cases {
		if got := normalizeModelName(tc.in); got != tc.want {
			t.Errorf("normalizeModelName(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestLookupCapabilities_ExactMatch(t *testing.T) {
	flat := map[string]core.Capabilities{
		"gpt-4o": capsWithWindow(128000),
	}
	caps, key, found := lookupCapabilities("gpt-4o", flat)
	if !found {
		t.Fatal("Expected exact match")
	}
	if key != "gpt-4o" {
		t.Errorf("Expected matched key 'gpt-4o', got %q", key)
	}
	if caps.ContextWindow == nil || *caps.ContextWindow != 128000 {
		t.Error("Wrong capabilities returned")
	}
}

func TestLookupCapabilities_NormalizedContainment(t *testing.T) {
	flat := map[string]core.Capabilities{
		"claude-3.5-sonnet": capsWithWindow(200000),
	}

	caps, _, found := lookupCapabilities("claude 3.5 sonnet", flat)
	if !found {
		t.Fatal("Expected normalized match despite separator/version differences")
	}
	if caps.ContextWindow == nil || *caps.ContextWindow != 200000 {
		t.Error("Wrong capabilities returned")
	}

	// Containment in the other direction: query longer than the candidate.
	flat = map[string]core.Capabilities{
		"llama3": capsWithWindow(8192),
	}
	if _, _, found := lookupCapabilities("llama3.1-8b:latest", flat); !found {
		t.Error("Expected query-contains-candidate to match")
	}
}

func TestLookupCapabilities_FamilyFallback(t *testing.T) {
	flat := map[string]core.Capabilities{
		"gpt-4.1": capsWithWindow(1000000),
	}

	// "omni-4o-preview" shares no normalized containment with "gpt-4.1";
	// the "4o" substring resolves it through the gpt4 family.
	caps, key, found := lookupCapabilities("omni-4o-preview", flat)
	if !found {
		t.Fatal("Expected family-table fallback to match")
	}
	if key != "gpt-4.1" {
		t.Errorf("Expected family match against 'gpt-4.1', got %q", key)
	}
	if caps.ContextWindow == nil || *caps.ContextWindow != 1000000 {
		t.Error("Wrong capabilities returned")
	}
}

func TestLookupCapabilities_FamilyFallbackDeterministic(t *testing.T) {
	flat := map[string]core.Capabilities{
		"claude-b": capsWithWindow(2),
		"claude-a": capsWithWindow(1),
	}

	// Both candidates share the claude family; sorted key order makes the
	// first match deterministic.
	for i := 0; i < 10; i++ {
		_, key, found := lookupCapabilities("anthropic/claude.special", flat)
		if !found {
			t.Fatal("Expected family match")
		}
		if key != "claude-a" {
			t.Fatalf("Expected deterministic first key 'claude-a', got %q", key)
		}
	}
}

func TestLookupCapabilities_NotFound(t *testing.T) {
	flat := map[string]core.Capabilities{
		"gpt-4o": capsWithWindow(128000),
	}
	caps, _, found := lookupCapabilities("totally-unrelated", flat)
	if found {
		t.Error("Expected no match")
	}
	if !caps.IsEmpty() {
		t.Error("Not-found lookup must return empty capabilities")
	}
}
