// Package render composes the public menu view: it resolves the theme,
// converts item prices to the display currency, derives CSS custom-property
// bindings from theme tokens, and selects the rendering layout.
package render

import (
	"html/template"
	"sort"
	"strings"

	"menuboard/currency"
	"menuboard/models"
	"menuboard/services"
	"menuboard/theme"
)

// State describes what the public route can show. Transitions are driven
// purely by data availability; navigating to another slug restarts them.
type State int

const (
	// StateReady renders the full menu.
	StateReady State = iota
	// StateBusinessNotFound renders the not-found placeholder.
	StateBusinessNotFound
	// StateEmptyMenu renders the business name with an empty-menu placeholder.
	StateEmptyMenu
)

type ItemView struct {
	Name        string
	Description string
	Price       string
	Tags        []string
	ImageURL    string
}

type SectionView struct {
	Title    string
	AnchorID string
	Items    []ItemView
}

// View is everything the page template needs.
type View struct {
	BusinessName string
	Slug         string
	Currency     string
	Theme        theme.Resolved
	Layout       theme.Kind
	StyleVars    template.CSS // custom-property declarations for the page root
	Sections     []SectionView
}

// StateFor picks the render state from data availability.
func StateFor(pm *services.PublicMenu, err error) State {
	if err != nil || pm == nil {
		return StateBusinessNotFound
	}
	if !pm.HasMenu || len(pm.Sections) == 0 {
		return StateEmptyMenu
	}
	return StateReady
}

// Build assembles the view for a loaded public menu. Prices are converted
// from the stored base currency to the business display currency using
// rates; when rates are missing a currency, the unconverted price shows —
// conversion is a display enhancement and never blocks or fails the render.
func Build(pm *services.PublicMenu, rates map[string]float64) *View {
	b := pm.Business
	resolved := theme.Resolve(b.ThemePreset, b.ThemeOverrides)

	v := &View{
		BusinessName: b.Name,
		Slug:         b.Slug,
		Currency:     b.Currency,
		Theme:        resolved,
		Layout:       theme.SelectLayout(resolved),
		StyleVars:    template.CSS(StyleVars(resolved.Tokens)),
	}
	for _, sec := range pm.Sections {
		sv := SectionView{Title: sec.Title, AnchorID: sec.AnchorID}
		for _, it := range sec.Items {
			sv.Items = append(sv.Items, ItemView{
				Name:        it.Name,
				Description: it.Description,
				Price:       DisplayPrice(it.PriceCents, b.Currency, rates),
				Tags:        it.Tags,
				ImageURL:    it.ImageURL,
			})
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}

// DisplayPrice converts stored minor units to the display currency string.
func DisplayPrice(priceCents int64, displayCurrency string, rates map[string]float64) string {
	converted := currency.Convert(currency.FromCents(priceCents), models.BaseCurrency, displayCurrency, rates)
	return currency.Format(converted, displayCurrency)
}

// StyleVars turns theme tokens into a deterministic block of CSS custom
// properties, bound on the page root and consumed by the layout templates.
func StyleVars(t theme.Tokens) string {
	vars := map[string]string{
		"--menu-bg":          t.Background,
		"--menu-surface":     t.Surface,
		"--menu-card":        t.Card,
		"--menu-text":        t.Text,
		"--menu-muted":       t.MutedText,
		"--menu-accent":      t.Accent,
		"--menu-accent-text": t.AccentText,
		"--menu-border":      t.Border,
		"--menu-header-bg":   t.HeaderBg,
		"--menu-header-text": t.HeaderText,
		"--menu-price":       t.PriceText,
		"--menu-tag-bg":      t.TagBg,
		"--menu-radius":      t.Radius,
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(vars[name])
		b.WriteByte(';')
	}
	return b.String()
}
