package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

// familyTable maps a model lineage to the substrings identifying it. Used as
// the last lookup fallback: a queried name containing any substring of a
// family resolves to the first capability entry sharing that family.
// Families are consulted in sorted key order so resolution never depends on
// map iteration order.
var familyTable = map[string][]string{
	"claude":  {"claude"},
	"gemini":  {"gemini"},
	"gpt4":    {"gpt-4", "gpt4", "gpt 4", "4o"},
	"llama":   {"llama"},
	"mistral": {"mistral", "codestral"},
	"qwen":    {"qwen"},
}

var (
	separatorRe  = regexp.MustCompile(`[-_. ]`)
	versionRe    = regexp.MustCompile(`\d+\.\d+`)
	sizeSuffixRe = regexp.MustCompile(`\d+[bB]\b`)
)

// normalizeModelName reduces a model name to a comparable core: truncate at
// the first colon (tag suffixes like ":latest"), drop decimal version
// numbers, drop size suffixes like "7b", then drop separator characters.
func normalizeModelName(name string) string {
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		name = name[:idx]
	}
	name = strings.ToLower(name)
	name = versionRe.ReplaceAllString(name, "")
	name = sizeSuffixRe.ReplaceAllString(name, "")
	return separatorRe.ReplaceAllString(name, "")
}

// lookupCapabilities resolves a model name against the flat capability
// mapping:
//  1. exact key match
//  2. normalized containment in either direction
//  3. family-table fallback
//
// Candidate keys are always iterated in sorted order so the first match is
// deterministic. The matched key is returned so callers can mark it claimed;
// found is false when every step missed.
func lookupCapabilities(name string, flat map[string]core.Capabilities) (core.Capabilities, string, bool) {
	if caps, ok := flat[name]; ok {
		return caps, name, true
	}

	keys := sortedKeys(flat)

	normQuery := normalizeModelName(name)
	if normQuery != "" {
		for _, key := range keys {
			normKey := normalizeModelName(key)
			if normKey == "" {
				continue
			}
			if strings.Contains(normKey, normQuery) || strings.Contains(normQuery, normKey) {
				return flat[key], key, true
			}
		}
	}

	lowerName := strings.ToLower(name)
	for _, family := range sortedKeys(familyTable) {
		if !containsAny(lowerName, familyTable[family]) {
			continue
		}
		for _, key := range keys {
			if containsAny(strings.ToLower(key), familyTable[family]) {
				return flat[key], key, true
			}
		}
	}

	return core.Capabilities{}, "", false
}

func containsAny(name string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(name, sub) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
