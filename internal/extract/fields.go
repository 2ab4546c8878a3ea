package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cfugett/ai-model-info-viewer/internal/core"
)

// One compiled pattern per capability field. Fields are extracted
// independently: a pattern that does not match simply leaves its field
// absent, so the extractor keeps working as the upstream shape drifts.
var (
	contextWindowRe = regexp.MustCompile(`contextWindow\s*:\s*([\d_,]+)`)
	reservedRe      = regexp.MustCompile(`reservedOutputTokenSpace\s*:\s*(null|[\d_,]+)`)
	systemMessageRe = regexp.MustCompile(`supportsSystemMessage\s*:\s*(false|'[^']*'|"[^"]*")`)
	supportsFIMRe   = regexp.MustCompile(`supportsFIM\s*:\s*(true|false)`)
	toolFormatRe    = regexp.MustCompile(`specialToolFormat\s*:\s*['"]([^'"]+)['"]`)

	reasoningFalseRe = regexp.MustCompile(`reasoningCapabilities\s*:\s*false`)
	reasoningOpenRe  = regexp.MustCompile(`reasoningCapabilities\s*:\s*\{`)
	canTurnOffRe     = regexp.MustCompile(`canTurnOff\w*\s*:\s*(true|false)`)
	canIORe          = regexp.MustCompile(`canIO\w*\s*:\s*(true|false)`)
	sliderOpenRe     = regexp.MustCompile(`[sS]lider\s*:\s*\{`)
	sliderTypeRe     = regexp.MustCompile(`type\s*:\s*['"](budget|effort)(?:_slider)?['"]`)
	sliderMinRe      = regexp.MustCompile(`\bmin\s*:\s*([\d_,]+)`)
	sliderMaxRe      = regexp.MustCompile(`\bmax\s*:\s*([\d_,]+)`)
	numberDefaultRe  = regexp.MustCompile(`\bdefault\s*:\s*([\d_,]+)`)
	stringDefaultRe  = regexp.MustCompile(`\bdefault\s*:\s*['"]([^'"]+)['"]`)
	effortValuesRe   = regexp.MustCompile(`values\s*:\s*\[([^\]]*)\]`)
	thinkTagsRe      = regexp.MustCompile(`[tT]hinkTags\s*:\s*\[\s*['"]([^'"]*)['"]\s*,\s*['"]([^'"]*)['"]\s*\]`)

	costOpenRe      = regexp.MustCompile(`\bcost\s*:\s*\{`)
	costInputRe     = regexp.MustCompile(`\binput\s*:\s*([\d.]+)`)
	costOutputRe    = regexp.MustCompile(`\boutput\s*:\s*([\d.]+)`)
	costCacheReadRe = regexp.MustCompile(`\bcache_?[rR]ead\s*:\s*([\d.]+)`)
	costCacheWrtRe  = regexp.MustCompile(`\bcache_?[wW]rite\s*:\s*([\d.]+)`)

	downloadableRe = regexp.MustCompile(`downloadable\s*:\s*(false|\{)`)
	sizeGbRe       = regexp.MustCompile(`sizeGb\s*:\s*('[^']*'|"[^"]*"|[\d.]+)`)
)

var nonDigitRe = regexp.MustCompile(`[^\d]`)

// extractCapabilities pulls the typed capability fields out of one entry
// fragment. Every field is best-effort and independent of the others.
func extractCapabilities(fragment string) core.Capabilities {
	var caps core.Capabilities

	if m := contextWindowRe.FindStringSubmatch(fragment); m != nil {
		if n, err := parseGroupedInt(m[1]); err == nil {
			caps.ContextWindow = &n
		}
	}

	if m := reservedRe.FindStringSubmatch(fragment); m != nil {
		if m[1] == "null" {
			caps.ReservedOutputTokenSpace = &core.TokenReservation{Unspecified: true}
		} else if n, err := parseGroupedInt(m[1]); err == nil {
			caps.ReservedOutputTokenSpace = &core.TokenReservation{Tokens: n}
		}
	}

	if m := systemMessageRe.FindStringSubmatch(fragment); m != nil {
		if m[1] == "false" {
			caps.SystemMessage = &core.SystemMessageSupport{Supported: false}
		} else {
			caps.SystemMessage = &core.SystemMessageSupport{
				Supported: true,
				Mode:      strings.Trim(m[1], `'"`),
			}
		}
	}

	if m := supportsFIMRe.FindStringSubmatch(fragment); m != nil {
		fim := m[1] == "true"
		caps.SupportsFIM = &fim
	}

	if m := toolFormatRe.FindStringSubmatch(fragment); m != nil {
		format := m[1]
		caps.SpecialToolFormat = &format
	}

	caps.Reasoning = extractReasoning(fragment)
	caps.Cost = extractCost(fragment)
	extractDownload(fragment, &caps)

	return caps
}

// extractReasoning handles the reasoning field, which holds either the
// literal false or a nested object with optional sub-fields.
func extractReasoning(fragment string) *core.ReasoningInfo {
	if reasoningFalseRe.MatchString(fragment) {
		return &core.ReasoningInfo{Enabled: false}
	}

	loc := reasoningOpenRe.FindStringIndex(fragment)
	if loc == nil {
		return nil
	}
	sub := balancedAt(fragment, loc[1]-1)
	if sub == "" {
		return nil
	}

	info := &core.ReasoningInfo{Enabled: true}

	if m := canTurnOffRe.FindStringSubmatch(sub); m != nil {
		v := m[1] == "true"
		info.CanTurnOff = &v
	}
	if m := canIORe.FindStringSubmatch(sub); m != nil {
		v := m[1] == "true"
		info.CanIO = &v
	}

	if sliderLoc := sliderOpenRe.FindStringIndex(sub); sliderLoc != nil {
		slider := balancedAt(sub, sliderLoc[1]-1)
		if m := sliderTypeRe.FindStringSubmatch(slider); m != nil {
			info.SliderKind = m[1]
			switch m[1] {
			case core.SliderKindBudget:
				info.BudgetMin = matchGroupedInt(sliderMinRe, slider)
				info.BudgetMax = matchGroupedInt(sliderMaxRe, slider)
				info.BudgetDefault = matchGroupedInt(numberDefaultRe, slider)
			case core.SliderKindEffort:
				if vm := effortValuesRe.FindStringSubmatch(slider); vm != nil {
					for _, item := range quotedListItemRe.FindAllStringSubmatch(vm[1], -1) {
						info.EffortValues = append(info.EffortValues, item[1])
					}
				}
				if dm := stringDefaultRe.FindStringSubmatch(slider); dm != nil {
					info.EffortDefault = dm[1]
				}
			}
		}
	}

	if m := thinkTagsRe.FindStringSubmatch(sub); m != nil {
		info.ThinkTags = &core.ThinkTagPair{Open: m[1], Close: m[2]}
	}

	return info
}

// extractCost handles the nested cost object; each of the four sub-fields is
// optional and omitted when absent rather than defaulted to zero.
func extractCost(fragment string) *core.CostInfo {
	loc := costOpenRe.FindStringIndex(fragment)
	if loc == nil {
		return nil
	}
	sub := balancedAt(fragment, loc[1]-1)
	if sub == "" {
		return nil
	}

	cost := &core.CostInfo{
		Input:      matchFloat(costInputRe, sub),
		Output:     matchFloat(costOutputRe, sub),
		CacheRead:  matchFloat(costCacheReadRe, sub),
		CacheWrite: matchFloat(costCacheWrtRe, sub),
	}
	if cost.Input == nil && cost.Output == nil && cost.CacheRead == nil && cost.CacheWrite == nil {
		return nil
	}
	return cost
}

// extractDownload handles downloadable/sizeGb: downloadable is true unless
// the matched token is the literal false, and the size renders as "<n>GB"
// or "Unknown" when the source carries a sentinel string instead of a
// number.
func extractDownload(fragment string, caps *core.Capabilities) {
	m := downloadableRe.FindStringSubmatch(fragment)
	if m == nil {
		return
	}
	if m[1] == "false" {
		v := false
		caps.Downloadable = &v
		return
	}

	v := true
	caps.Downloadable = &v

	sm := sizeGbRe.FindStringSubmatch(fragment)
	if sm == nil {
		return
	}
	var size string
	if strings.HasPrefix(sm[1], "'") || strings.HasPrefix(sm[1], `"`) {
		size = "Unknown"
	} else {
		size = sm[1] + "GB"
	}
	caps.DownloadSize = &size
}

// balancedAt returns the text inside the brace at openIdx, or "" when the
// brace never closes.
func balancedAt(text string, openIdx int) string {
	closeIdx := scanBalanced(text, openIdx)
	if closeIdx < 0 {
		return ""
	}
	return text[openIdx+1 : closeIdx]
}

// parseGroupedInt parses a numeric literal after stripping all non-digit
// characters, so 128_000 and 1,000,000 both parse cleanly.
func parseGroupedInt(raw string) (int, error) {
	return strconv.Atoi(nonDigitRe.ReplaceAllString(raw, ""))
}

func matchGroupedInt(re *regexp.Regexp, text string) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := parseGroupedInt(m[1])
	if err != nil {
		return nil
	}
	return &n
}

func matchFloat(re *regexp.Regexp, text string) *float64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &f
}
