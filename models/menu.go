package models

type Menu struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"businessId"`
	Name       string `json:"name"`
}

type Section struct {
	ID       int64  `json:"id"`
	MenuID   int64  `json:"menuId"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type Item struct {
	ID          int64    `json:"id"`
	SectionID   int64    `json:"sectionId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	PriceCents  int64    `json:"priceCents"` // minor units, BaseCurrency-denominated
	Tags        []string `json:"tags,omitempty"`
	ImageKey    string   `json:"-"`
}

// PublicSection is a section with its items, as served on the public menu.
type PublicSection struct {
	Section
	AnchorID string       `json:"anchorId"`
	Items    []PublicItem `json:"items"`
}

// PublicItem carries the resolved image URL instead of the raw storage key.
type PublicItem struct {
	Item
	ImageURL string `json:"imageUrl,omitempty"`
}
