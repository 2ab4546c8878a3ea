package extract

import (
	"strings"
	"testing"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

const sampleDocument = `
export const defaultProviderSettings = {
	anthropic: {
		apiKey: '',
	},
	openAI: {
		apiKey: '',
	},
	gemini: {
		apiKey: '',
	},
} as const

export const defaultModelsOfProvider = {
	anthropic: ['claude-sonnet-4'],
	openAI: [],
	gemini: [],
} as const

export const modelOptions = {
	'claude-sonnet-4': {
		contextWindow: 200_000,
		reservedOutputTokenSpace: 8_192,
		supportsFIM: false,
		reasoningCapabilities: {
			canTurnOffReasoning: true,
			reasoningSlider: { type: 'budget_slider', min: 1_024, max: 32_000, default: 4_096 },
		},
		cost: { input: 3.0, output: 15.0 },
	},
	'gemini-2.5-flash': {
		contextWindow: 1_000_000,
		reasoningCapabilities: false,
		cost: { input: 0, output: 0 },
	},
	'o3-mini': {
		contextWindow: 200_000,
		cost: { input: 1.1, output: 4.4 },
	},
} as const
`

func TestExtract_EndToEnd(t *testing.T) {
	catalog := NewExtractor(nil).Extract(sampleDocument)

	if len(catalog) != 3 {
		t.Fatalf("Expected 3 providers, got %d: %v", len(catalog), catalog)
	}

	anthropic := catalog["anthropic"]
	if len(anthropic.Models) != 1 || anthropic.Models[0].Name != "claude-sonnet-4" {
		t.Fatalf("Unexpected anthropic models: %+v", anthropic.Models)
	}
	caps := anthropic.Models[0].Capabilities
	if caps.ContextWindow == nil || *caps.ContextWindow != 200000 {
		t.Error("Explicit-list model should carry its extracted capabilities")
	}
	if caps.Reasoning == nil || !caps.Reasoning.Enabled || caps.Reasoning.SliderKind != core.SliderKindBudget {
		t.Errorf("Unexpected reasoning info: %+v", caps.Reasoning)
	}

	// gemini declares an empty list; its model arrives via the substring scan.
	gemini := catalog["gemini"]
	if len(gemini.Models) != 1 || gemini.Models[0].Name != "gemini-2.5-flash" {
		t.Fatalf("Unexpected gemini models: %+v", gemini.Models)
	}
	cost := gemini.Models[0].Capabilities.Cost
	if cost == nil || cost.Input == nil {
		t.Fatal("Explicit zero cost must survive extraction")
	}
	if *cost.Input != 0 {
		t.Errorf("Expected input cost 0, got %v", *cost.Input)
	}

	// openAI declares an empty list and nothing contains "openai"; the o3
	// prefix rule routes the remaining entry to it.
	openAI := catalog["openAI"]
	if len(openAI.Models) != 1 || openAI.Models[0].Name != "o3-mini" {
		t.Fatalf("Unexpected openAI models: %+v", openAI.Models)
	}
}

func TestExtract_MissingDeclarations(t *testing.T) {
	catalog := NewExtractor(nil).Extract("const unrelated = 42")
	if catalog == nil {
		t.Fatal("Missing declarations must yield an empty catalog, not nil")
	}
	if len(catalog) != 0 {
		t.Errorf("Expected empty catalog, got %v", catalog)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	catalog := NewExtractor(nil).Extract("")
	if len(catalog) != 0 {
		t.Errorf("Expected empty catalog for empty input, got %v", catalog)
	}
}

func TestExtract_ProvidersWithoutModels(t *testing.T) {
	doc := `
const defaultProviderSettings = {
	vLLM: {},
	lmStudio: {},
}
`
	catalog := NewExtractor(nil).Extract(doc)

	for _, id := range []string{"vLLM", "lmStudio"} {
		provider, ok := catalog[id]
		if !ok {
			t.Fatalf("Expected provider %q", id)
		}
		if len(provider.Models) != 1 || provider.Models[0].Name != core.PlaceholderModelName {
			t.Errorf("Provider %q should carry the placeholder, got %+v", id, provider.Models)
		}
	}
}

func TestExtract_DuplicateEntryFirstBlockWins(t *testing.T) {
	doc := `
const defaultProviderSettings = {
	openAI: {},
}
const modelOptions = {
	'gpt-4o': { contextWindow: 128_000 },
}
const openSourceModelOptions = {
	'gpt-4o': { contextWindow: 1 },
}
`
	catalog := NewExtractor(nil).Extract(doc)
	models := catalog["openAI"].Models
	if len(models) != 1 {
		t.Fatalf("Expected 1 model, got %+v", models)
	}
	if models[0].Capabilities.ContextWindow == nil || *models[0].Capabilities.ContextWindow != 128000 {
		t.Error("First capability block must win for duplicated entry names")
	}
}

func TestExtract_StableAcrossRuns(t *testing.T) {
	extractor := NewExtractor(nil)
	first := extractor.Extract(sampleDocument)
	for i := 0; i < 5; i++ {
		next := extractor.Extract(sampleDocument)
		if len(next) != len(first) {
			t.Fatal("Extraction must be deterministic across runs")
		}
		for id, provider := range first {
			other := next[id]
			if len(other.Models) != len(provider.Models) {
				t.Fatalf("Provider %q model count drifted between runs", id)
			}
			for j := range provider.Models {
				if other.Models[j].Name != provider.Models[j].Name {
					t.Fatalf("Provider %q model order drifted between runs", id)
				}
			}
		}
	}
}

func TestExtract_LargeDocumentTruncatedMidBlock(t *testing.T) {
	// Simulates an upstream document cut off mid-declaration; the unclosed
	// brace must not take down extraction for the blocks before it.
	truncated := sampleDocument[:strings.Index(sampleDocument, "'o3-mini'")]
	catalog := NewExtractor(nil).Extract(truncated)

	anthropic, ok := catalog["anthropic"]
	if !ok {
		t.Fatal("Providers parsed before the truncation point must survive")
	}
	if len(anthropic.Models) != 1 || anthropic.Models[0].Name != "claude-sonnet-4" {
		t.Errorf("Unexpected anthropic models: %+v", anthropic.Models)
	}
}
