// Package theme resolves a restaurant's visual theme: a named preset plus an
// optional partial override structure merged field by field into a fully
// populated result.
package theme

// Tokens is the complete set of themeable values. Every field of a resolved
// theme is populated; partial input only exists in TokenOverrides.
type Tokens struct {
	Background string
	Surface    string
	Card       string
	Text       string
	MutedText  string
	Accent     string
	AccentText string
	Border     string
	HeaderBg   string
	HeaderText string
	PriceText  string
	TagBg      string
	Radius     string
}

type Layout struct {
	Density  string // "comfortable" or "compact"
	LayoutID string // "minimal" or "modernCard"
}

type Variants struct {
	Item    string // "row" or "card"
	Section string // "plain" or "card"
}

// Resolved is a fully populated theme. Only Resolve produces one; callers
// never see a partially filled theme.
type Resolved struct {
	ID       string
	Label    string
	Tokens   Tokens
	Layout   Layout
	Variants Variants
}

// Overrides is what a restaurant owner stores to customize a preset. Every
// field is optional at every level; a nil pointer means "inherit from the
// preset". JSON null unmarshals to nil, so a cleared field never overwrites.
type Overrides struct {
	Tokens   *TokenOverrides   `json:"tokens,omitempty"`
	Layout   *LayoutOverrides  `json:"layout,omitempty"`
	Variants *VariantOverrides `json:"variants,omitempty"`
}

type TokenOverrides struct {
	Background *string `json:"background,omitempty"`
	Surface    *string `json:"surface,omitempty"`
	Card       *string `json:"card,omitempty"`
	Text       *string `json:"text,omitempty"`
	MutedText  *string `json:"mutedText,omitempty"`
	Accent     *string `json:"accent,omitempty"`
	AccentText *string `json:"accentText,omitempty"`
	Border     *string `json:"border,omitempty"`
	HeaderBg   *string `json:"headerBg,omitempty"`
	HeaderText *string `json:"headerText,omitempty"`
	PriceText  *string `json:"priceText,omitempty"`
	TagBg      *string `json:"tagBg,omitempty"`
	Radius     *string `json:"radius,omitempty"`
}

type LayoutOverrides struct {
	Density  *string `json:"density,omitempty"`
	LayoutID *string `json:"layoutId,omitempty"`
}

type VariantOverrides struct {
	Item    *string `json:"item,omitempty"`
	Section *string `json:"section,omitempty"`
}

// Resolve merges ov onto the named preset. An unknown preset id degrades to
// the default preset; bad theme input never errors. The function is total:
// every field of the result is populated.
func Resolve(presetID string, ov *Overrides) Resolved {
	p, ok := presets[presetID]
	if !ok {
		p = presets[DefaultPreset]
	}
	r := p
	if ov == nil {
		return r
	}
	if ov.Tokens != nil {
		mergeTokens(&r.Tokens, ov.Tokens)
	}
	if ov.Layout != nil {
		mergeLayout(&r.Layout, ov.Layout)
	}
	if ov.Variants != nil {
		mergeVariants(&r.Variants, ov.Variants)
	}
	return r
}

func mergeTokens(t *Tokens, o *TokenOverrides) {
	setIf(&t.Background, o.Background)
	setIf(&t.Surface, o.Surface)
	setIf(&t.Card, o.Card)
	setIf(&t.Text, o.Text)
	setIf(&t.MutedText, o.MutedText)
	setIf(&t.Accent, o.Accent)
	setIf(&t.AccentText, o.AccentText)
	setIf(&t.Border, o.Border)
	setIf(&t.HeaderBg, o.HeaderBg)
	setIf(&t.HeaderText, o.HeaderText)
	setIf(&t.PriceText, o.PriceText)
	setIf(&t.TagBg, o.TagBg)
	setIf(&t.Radius, o.Radius)
}

func mergeLayout(l *Layout, o *LayoutOverrides) {
	setIf(&l.Density, o.Density)
	setIf(&l.LayoutID, o.LayoutID)
}

func mergeVariants(v *Variants, o *VariantOverrides) {
	setIf(&v.Item, o.Item)
	setIf(&v.Section, o.Section)
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
