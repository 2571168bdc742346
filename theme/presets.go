package theme

const (
	PresetCoffeePastel = "coffeePastel"
	PresetMinimal      = "minimal"
	PresetModernCard   = "modernCard"

	DefaultPreset = PresetCoffeePastel
)

const (
	DensityComfortable = "comfortable"
	DensityCompact     = "compact"

	LayoutMinimal    = "minimal"
	LayoutModernCard = "modernCard"

	ItemRow      = "row"
	ItemCard     = "card"
	SectionPlain = "plain"
	SectionCard  = "card"
)

var presets = map[string]Resolved{
	PresetCoffeePastel: {
		ID:    PresetCoffeePastel,
		Label: "Coffee Pastel",
		Tokens: Tokens{
			Background: "#f7f1e8",
			Surface:    "#fffaf3",
			Card:       "#ffffff",
			Text:       "#3a2e26",
			MutedText:  "#8a7b6e",
			Accent:     "#b3714f",
			AccentText: "#ffffff",
			Border:     "#e6d9c8",
			HeaderBg:   "#efe3d2",
			HeaderText: "#3a2e26",
			PriceText:  "#8a5a3b",
			TagBg:      "#f0e0cc",
			Radius:     "14px",
		},
		Layout:   Layout{Density: DensityComfortable, LayoutID: LayoutMinimal},
		Variants: Variants{Item: ItemRow, Section: SectionPlain},
	},
	PresetMinimal: {
		ID:    PresetMinimal,
		Label: "Minimal",
		Tokens: Tokens{
			Background: "#ffffff",
			Surface:    "#ffffff",
			Card:       "#fafafa",
			Text:       "#1d1d1f",
			MutedText:  "#6e6e73",
			Accent:     "#1d1d1f",
			AccentText: "#ffffff",
			Border:     "#e5e5ea",
			HeaderBg:   "#ffffff",
			HeaderText: "#1d1d1f",
			PriceText:  "#1d1d1f",
			TagBg:      "#f2f2f7",
			Radius:     "6px",
		},
		Layout:   Layout{Density: DensityCompact, LayoutID: LayoutMinimal},
		Variants: Variants{Item: ItemRow, Section: SectionPlain},
	},
	PresetModernCard: {
		ID:    PresetModernCard,
		Label: "Modern Card",
		Tokens: Tokens{
			Background: "#101418",
			Surface:    "#181e24",
			Card:       "#1f262e",
			Text:       "#f4f6f8",
			MutedText:  "#9aa6b2",
			Accent:     "#4cc38a",
			AccentText: "#0c1210",
			Border:     "#2a333d",
			HeaderBg:   "#181e24",
			HeaderText: "#f4f6f8",
			PriceText:  "#4cc38a",
			TagBg:      "#243039",
			Radius:     "18px",
		},
		Layout:   Layout{Density: DensityComfortable, LayoutID: LayoutModernCard},
		Variants: Variants{Item: ItemCard, Section: SectionCard},
	},
}

// PresetIDs returns the closed set of preset identifiers.
func PresetIDs() []string {
	return []string{PresetCoffeePastel, PresetMinimal, PresetModernCard}
}
