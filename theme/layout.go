package theme

// Kind names one of the two rendering layouts.
type Kind string

const (
	KindList     Kind = "list"
	KindCardGrid Kind = "cardGrid"
)

// SelectLayout maps a resolved theme to its rendering layout. "modernCard"
// gets the card grid; every other layout id, "minimal" included, gets the
// list layout. A third layout means a third branch here and a third
// LayoutID constant, not a registry.
func SelectLayout(r Resolved) Kind {
	if r.Layout.LayoutID == LayoutModernCard {
		return KindCardGrid
	}
	return KindList
}
