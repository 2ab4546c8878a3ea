package extract

import (
	"fmt"
	"regexp"
)

// Declaration names with special roles in the upstream source.
const (
	providerSettingsBlock = "defaultProviderSettings"
	defaultModelsBlock    = "defaultModelsOfProvider"
)

// knownCapabilityBlocks are the capability declarations that are always
// attempted. The generic …Options… scan below picks up names added upstream
// after this list was written.
var knownCapabilityBlocks = []string{
	"modelOptions",
	"openSourceModelOptions",
}

// genericOptionsDeclRe matches any top-level declaration whose name follows
// the "…options…" naming convention, e.g. anthropicModelOptions or
// extraOptions_experimental.
var genericOptionsDeclRe = regexp.MustCompile(
	`(?m)^\s*(?:export\s+)?(?:const|let|var)\s+(\w*[Oo]ptions\w*)\s*[:=]`)

// locateBlock finds the named top-level declaration and returns the verbatim
// body text between its opening and closing braces. The declaration may be
// spelled with or without an export qualifier, with an optional type
// annotation, and with or without a trailing "as const" marker. A missing
// declaration is not an error: ok is false and the caller proceeds with an
// empty contribution.
func locateBlock(doc, name string) (body string, ok bool) {
	re := regexp.MustCompile(
		`(?m)^\s*(?:export\s+)?(?:const|let|var)\s+` + regexp.QuoteMeta(name) + `\s*(?::[^=\n]*)?=\s*\{`)
	loc := re.FindStringIndex(doc)
	if loc == nil {
		return "", false
	}

	openIdx := loc[1] - 1
	closeIdx := scanBalanced(doc, openIdx)
	if closeIdx < 0 {
		return "", false
	}
	return doc[openIdx+1 : closeIdx], true
}

// capabilityBlockNames returns the declaration names to try as capability
// blocks: the fixed known list plus any generically-named options
// declaration present in the document, minus the two special declarations.
func capabilityBlockNames(doc string) []string {
	names := make([]string, 0, len(knownCapabilityBlocks))
	seen := make(map[string]bool)
	for _, name := range knownCapabilityBlocks {
		names = append(names, name)
		seen[name] = true
	}

	for _, match := range genericOptionsDeclRe.FindAllStringSubmatch(doc, -1) {
		name := match[1]
		if seen[name] || name == providerSettingsBlock || name == defaultModelsBlock {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// quotedListItemRe pulls individual quoted strings out of a bracketed list.
var quotedListItemRe = regexp.MustCompile(`['"]([^'"]+)['"]`)

// modelListEntryRe matches one provider→model-list pair inside the
// default-models declaration, e.g. anthropic: ['claude-opus-4', ...].
var modelListEntryRe = regexp.MustCompile(`(?m)^\s*['"]?([\w.$-]+)['"]?\s*:\s*\[([^\]]*)\]`)

// parseProviderIDs extracts the provider identifiers (the top-level keys)
// from the provider-settings block body. Only the keys are consumed; the
// nested settings objects are ignored.
func parseProviderIDs(body string) []string {
	sections := splitSections(body)
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.Name)
	}
	return ids
}

// parseDefaultModels extracts the provider→model-name-list mapping from the
// default-models block body. List order is preserved.
func parseDefaultModels(body string) map[string][]string {
	result := make(map[string][]string)
	for _, match := range modelListEntryRe.FindAllStringSubmatch(body, -1) {
		provider := match[1]
		var names []string
		for _, item := range quotedListItemRe.FindAllStringSubmatch(match[2], -1) {
			names = append(names, item[1])
		}
		result[provider] = names
	}
	return result
}

// formatBlockSummary renders a short per-block log line.
func formatBlockSummary(name string, entries int) string {
	return fmt.Sprintf("block %s: %d entries", name, entries)
}
