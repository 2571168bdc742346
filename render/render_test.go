package render

import (
	"strings"
	"testing"

	"menuboard/models"
	"menuboard/services"
	"menuboard/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cafeLuna() *services.PublicMenu {
	return &services.PublicMenu{
		Business: models.Business{
			ID:          1,
			OwnerID:     "owner-1",
			Name:        "Cafe Luna",
			Slug:        "cafe-luna",
			Currency:    "EUR",
			ThemePreset: theme.PresetCoffeePastel,
		},
		HasMenu: true,
		Sections: []models.PublicSection{
			{
				Section:  models.Section{ID: 10, Title: "Breakfast", Position: 1},
				AnchorID: "breakfast",
				Items: []models.PublicItem{
					{Item: models.Item{ID: 100, Name: "Omelette", PriceCents: 1000}},
				},
			},
		},
	}
}

func TestBuildEndToEnd(t *testing.T) {
	rates := map[string]float64{"USD": 1, "EUR": 0.9}
	v := Build(cafeLuna(), rates)

	require.Len(t, v.Sections, 1)
	require.Len(t, v.Sections[0].Items, 1)
	assert.Equal(t, "Breakfast", v.Sections[0].Title)
	assert.Equal(t, "breakfast", v.Sections[0].AnchorID)
	// 10 USD at EUR 0.9 displays as €9.00.
	assert.Equal(t, "€9.00", v.Sections[0].Items[0].Price)
	assert.Equal(t, theme.KindList, v.Layout)
	assert.Equal(t, "Cafe Luna", v.BusinessName)
}

func TestBuildDegradesWithoutRates(t *testing.T) {
	// No usable rates: the original, unconverted price shows.
	v := Build(cafeLuna(), map[string]float64{})
	assert.Equal(t, "€10.00", v.Sections[0].Items[0].Price)
}

func TestBuildAppliesThemeOverrides(t *testing.T) {
	accent := "#123456"
	layoutID := theme.LayoutModernCard
	pm := cafeLuna()
	pm.Business.ThemeOverrides = &theme.Overrides{
		Tokens: &theme.TokenOverrides{Accent: &accent},
		Layout: &theme.LayoutOverrides{LayoutID: &layoutID},
	}
	v := Build(pm, map[string]float64{"USD": 1, "EUR": 0.9})

	assert.Equal(t, theme.KindCardGrid, v.Layout)
	assert.Contains(t, string(v.StyleVars), "--menu-accent:#123456;")
}

func TestStateFor(t *testing.T) {
	pm := cafeLuna()
	assert.Equal(t, StateReady, StateFor(pm, nil))
	assert.Equal(t, StateBusinessNotFound, StateFor(nil, services.ErrNotFound))

	pm.HasMenu = false
	pm.Sections = nil
	assert.Equal(t, StateEmptyMenu, StateFor(pm, nil))

	pm.HasMenu = true
	assert.Equal(t, StateEmptyMenu, StateFor(pm, nil), "menu with no non-empty sections")
}

func TestStyleVarsComplete(t *testing.T) {
	vars := StyleVars(theme.Resolve(theme.DefaultPreset, nil).Tokens)
	for _, name := range []string{
		"--menu-bg", "--menu-surface", "--menu-card", "--menu-text",
		"--menu-muted", "--menu-accent", "--menu-accent-text", "--menu-border",
		"--menu-header-bg", "--menu-header-text", "--menu-price",
		"--menu-tag-bg", "--menu-radius",
	} {
		if !strings.Contains(vars, name+":") {
			t.Errorf("StyleVars missing %s", name)
		}
	}
}

func TestDisplayPriceLocalCurrency(t *testing.T) {
	got := DisplayPrice(1200, "ALL", map[string]float64{"USD": 1})
	assert.Equal(t, "12 Lek", got)
}
