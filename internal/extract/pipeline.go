// Package extract converts the upstream provider/capability source text into
// a normalized Provider→Model catalog. The input is loosely structured
// object-literal text whose shape drifts over time; extraction is
// best-effort and never raises past its interface.
package extract

import (
	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

// Extractor runs the extraction pipeline. It holds no state besides the
// injected logger, so one Extractor may serve concurrent invocations.
type Extractor struct {
	logger core.Logger
}

// NewExtractor creates an Extractor. A nil logger falls back to NopLogger.
func NewExtractor(logger core.Logger) *Extractor {
	if logger == nil {
		logger = &core.NopLogger{}
	}
	return &Extractor{logger: logger}
}

// Extract runs the full pipeline over one document: locate the provider and
// model-list declarations, collect every capability block into a flat
// name→capabilities mapping, associate entries with providers, and
// normalize. Any fault that escapes per-block handling degrades to an empty
// catalog; callers always receive a structurally valid result.
func (e *Extractor) Extract(doc string) (catalog core.Catalog) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("extraction failed, returning empty catalog: %v", r)
			catalog = core.Catalog{}
		}
	}()

	providerIDs := e.providerIDs(doc)
	defaultModels := e.defaultModels(doc)
	flat := e.collectCapabilities(doc)

	catalog = associateProviders(providerIDs, defaultModels, flat)
	normalizeCatalog(catalog)

	e.logger.Info("extracted %d providers, %d capability entries", len(catalog), len(flat))
	return catalog
}

func (e *Extractor) providerIDs(doc string) []string {
	body, ok := locateBlock(doc, providerSettingsBlock)
	if !ok {
		e.logger.Warn("declaration %s not found in source", providerSettingsBlock)
		return nil
	}
	ids := parseProviderIDs(body)
	e.logger.Info(formatBlockSummary(providerSettingsBlock, len(ids)))
	return ids
}

func (e *Extractor) defaultModels(doc string) map[string][]string {
	body, ok := locateBlock(doc, defaultModelsBlock)
	if !ok {
		e.logger.Warn("declaration %s not found in source", defaultModelsBlock)
		return map[string][]string{}
	}
	lists := parseDefaultModels(body)
	e.logger.Info(formatBlockSummary(defaultModelsBlock, len(lists)))
	return lists
}

// collectCapabilities locates every capability block and merges their
// entries into one flat mapping. A fault inside one block skips that block;
// a fault inside one entry skips that entry.
func (e *Extractor) collectCapabilities(doc string) map[string]core.Capabilities {
	flat := make(map[string]core.Capabilities)

	for _, name := range capabilityBlockNames(doc) {
		body, ok := locateBlock(doc, name)
		if !ok {
			e.logger.Warn("declaration %s not found in source", name)
			continue
		}
		e.collectBlock(name, body, flat)
	}

	return flat
}

func (e *Extractor) collectBlock(name, body string, flat map[string]core.Capabilities) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("skipping block %s: %v", name, r)
		}
	}()

	sections := splitSections(body)
	for _, s := range sections {
		e.collectEntry(s, flat)
	}
	e.logger.Info(formatBlockSummary(name, len(sections)))
}

func (e *Extractor) collectEntry(s section, flat map[string]core.Capabilities) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("skipping entry %s: %v", s.Name, r)
		}
	}()

	// First block wins when the same model name appears in two blocks.
	if _, exists := flat[s.Name]; exists {
		return
	}
	flat[s.Name] = extractCapabilities(s.Fragment)
}
