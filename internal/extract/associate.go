package extract

import (
	"strings"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

// keywordRule classifies an unclaimed model name by keyword. Rules are
// evaluated top-down; the first match wins. The keyword sets are designed to
// be disjoint, so order only matters as a tie-break of last resort.
type keywordRule struct {
	providerID string
	contains   []string
	prefixes   []string
}

var keywordRules = []keywordRule{
	{providerID: "openAI", contains: []string{"gpt"}, prefixes: []string{"o1", "o3", "o4"}},
	{providerID: "anthropic", contains: []string{"claude"}},
	{providerID: "xAI", contains: []string{"grok"}},
	{providerID: "gemini", contains: []string{"gemini"}},
	{providerID: "ollama", contains: []string{"llama"}},
	{providerID: "mistral", contains: []string{"mistral", "codestral"}},
	{providerID: "deepseek", contains: []string{"deepseek"}},
	{providerID: "qwen", contains: []string{"qwen"}},
}

// providerDisplayNames maps provider identifiers to presentation names.
// Identifiers not listed here fall back to simple capitalization.
var providerDisplayNames = map[string]string{
	"anthropic":      "Anthropic",
	"openAI":         "OpenAI",
	"xAI":            "xAI",
	"gemini":         "Gemini",
	"deepseek":       "DeepSeek",
	"ollama":         "Ollama",
	"vLLM":           "vLLM",
	"liteLLM":        "LiteLLM",
	"lmStudio":       "LM Studio",
	"openRouter":     "OpenRouter",
	"mistral":        "Mistral",
	"qwen":           "Qwen",
	"groq":           "Groq",
	"googleVertex":   "Google Vertex",
	"microsoftAzure": "Microsoft Azure",
	"awsBedrock":     "AWS Bedrock",
	"other":          "Other",
}

func displayName(providerID string) string {
	if name, ok := providerDisplayNames[providerID]; ok {
		return name
	}
	if providerID == "" {
		return ""
	}
	return strings.ToUpper(providerID[:1]) + providerID[1:]
}

// associateProviders reconciles the declared providers, the explicit
// provider→model-name lists, and the flat entry→capabilities mapping into
// Provider values. Resolution runs in fixed priority order:
//
//  1. explicit model list (missing capability lookups yield empty
//     Capabilities, never an error)
//  2. case-insensitive substring scan for providers with an empty list
//  3. keyword classification of entries nobody claimed
//  4. the synthetic "other" provider for whatever is left
func associateProviders(providerIDs []string, defaultModels map[string][]string, flat map[string]core.Capabilities) core.Catalog {
	catalog := make(core.Catalog, len(providerIDs))
	claimed := make(map[string]bool, len(flat))

	for _, id := range providerIDs {
		provider := core.Provider{ID: id, DisplayName: displayName(id)}

		if names := defaultModels[id]; len(names) > 0 {
			for _, name := range names {
				caps, matchedKey, found := lookupCapabilities(name, flat)
				if found {
					claimed[matchedKey] = true
				}
				provider.Models = append(provider.Models, core.Model{Name: name, Capabilities: caps})
			}
		} else {
			lowerID := strings.ToLower(id)
			for _, key := range sortedKeys(flat) {
				if claimed[key] || !strings.Contains(strings.ToLower(key), lowerID) {
					continue
				}
				claimed[key] = true
				provider.Models = append(provider.Models, core.Model{Name: key, Capabilities: flat[key]})
			}
		}

		catalog[id] = provider
	}

	for _, key := range sortedKeys(flat) {
		if claimed[key] {
			continue
		}
		targetID := classifyByKeyword(key)
		if targetID == "" {
			targetID = core.UnknownProviderID
		}

		provider, ok := catalog[targetID]
		if !ok {
			provider = core.Provider{ID: targetID, DisplayName: displayName(targetID)}
			if targetID == core.UnknownProviderID {
				provider.Description = core.UnknownProviderDescription
			}
		}
		provider.Models = append(provider.Models, core.Model{Name: key, Capabilities: flat[key]})
		catalog[targetID] = provider
	}

	return catalog
}

// classifyByKeyword returns the provider ID of the first matching keyword
// rule, or "" when no rule matches.
func classifyByKeyword(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range keywordRules {
		if containsAny(lower, rule.contains) {
			return rule.providerID
		}
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(lower, prefix) {
				return rule.providerID
			}
		}
	}
	return ""
}
