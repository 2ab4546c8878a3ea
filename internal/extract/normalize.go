package extract

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

// normalizeCatalog applies the final invariants to every provider: duplicate
// model names are dropped (first occurrence wins), the remaining models are
// sorted with a locale-aware collator, and a provider that ends up with zero
// models receives one placeholder entry.
func normalizeCatalog(catalog core.Catalog) {
	collator := collate.New(language.English)

	for id, provider := range catalog {
		seen := make(map[string]bool, len(provider.Models))
		models := provider.Models[:0]
		for _, model := range provider.Models {
			if model.Name == "" || seen[model.Name] {
				continue
			}
			seen[model.Name] = true
			models = append(models, model)
		}

		sort.SliceStable(models, func(i, j int) bool {
			return collator.CompareString(models[i].Name, models[j].Name) < 0
		})

		if len(models) == 0 {
			models = []core.Model{{Name: core.PlaceholderModelName}}
		}

		provider.Models = models
		catalog[id] = provider
	}
}
