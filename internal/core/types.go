package core

// Provider groups the models that belong to one AI provider.
type Provider struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Description string  `json:"description,omitempty"`
	Models      []Model `json:"models"`
}

// Model is a single model entry with its extracted capability data.
type Model struct {
	Name         string       `json:"name"`
	Capabilities Capabilities `json:"capabilities"`
}

// Capabilities holds the optional capability fields extracted for one model.
// Every field is a pointer so that "absent from the source" stays distinct
// from "explicitly false/zero".
type Capabilities struct {
	ContextWindow            *int                  `json:"contextWindow,omitempty"`
	ReservedOutputTokenSpace *TokenReservation     `json:"reservedOutputTokenSpace,omitempty"`
	SystemMessage            *SystemMessageSupport `json:"systemMessage,omitempty"`
	SupportsFIM              *bool                 `json:"supportsFIM,omitempty"`
	SpecialToolFormat        *string               `json:"specialToolFormat,omitempty"`
	Reasoning                *ReasoningInfo        `json:"reasoning,omitempty"`
	Cost                     *CostInfo             `json:"cost,omitempty"`
	Downloadable             *bool                 `json:"downloadable,omitempty"`
	DownloadSize             *string               `json:"downloadSize,omitempty"`
}

// IsEmpty reports whether no field was extracted at all.
func (c Capabilities) IsEmpty() bool {
	return c.ContextWindow == nil &&
		c.ReservedOutputTokenSpace == nil &&
		c.SystemMessage == nil &&
		c.SupportsFIM == nil &&
		c.SpecialToolFormat == nil &&
		c.Reasoning == nil &&
		c.Cost == nil &&
		c.Downloadable == nil &&
		c.DownloadSize == nil
}

// TokenReservation is an output-token reservation: either a concrete token
// count or "unspecified" when the source marks it with a null literal.
type TokenReservation struct {
	Unspecified bool `json:"unspecified,omitempty"`
	Tokens      int  `json:"tokens,omitempty"`
}

// SystemMessageSupport records whether system messages are supported and, if
// so, under which mode label (e.g. "system-role", "developer-role").
type SystemMessageSupport struct {
	Supported bool   `json:"supported"`
	Mode      string `json:"mode,omitempty"`
}

// Slider kinds for reasoning control.
const (
	SliderKindBudget = "budget"
	SliderKindEffort = "effort"
)

// ReasoningInfo describes a model's reasoning capability. Sub-fields are only
// populated when Enabled is true and the source declared them.
type ReasoningInfo struct {
	Enabled       bool          `json:"enabled"`
	CanTurnOff    *bool         `json:"canTurnOff,omitempty"`
	CanIO         *bool         `json:"canIO,omitempty"`
	SliderKind    string        `json:"sliderKind,omitempty"`
	BudgetMin     *int          `json:"budgetMin,omitempty"`
	BudgetMax     *int          `json:"budgetMax,omitempty"`
	BudgetDefault *int          `json:"budgetDefault,omitempty"`
	EffortValues  []string      `json:"effortValues,omitempty"`
	EffortDefault string        `json:"effortDefault,omitempty"`
	ThinkTags     *ThinkTagPair `json:"thinkTags,omitempty"`
}

// ThinkTagPair is the open/close tag pair wrapping emitted reasoning text.
type ThinkTagPair struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// CostInfo holds pricing in currency per million tokens. Absent sub-fields
// are omitted, not zero.
type CostInfo struct {
	Input      *float64 `json:"input,omitempty"`
	Output     *float64 `json:"output,omitempty"`
	CacheRead  *float64 `json:"cacheRead,omitempty"`
	CacheWrite *float64 `json:"cacheWrite,omitempty"`
}

// Catalog is the normalized extraction result: provider ID → Provider.
type Catalog map[string]Provider
