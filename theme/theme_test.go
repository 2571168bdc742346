package theme

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveEmptyOverrideIsNoOp(t *testing.T) {
	for _, id := range PresetIDs() {
		plain := Resolve(id, nil)
		empty := Resolve(id, &Overrides{})
		assert.Equal(t, plain, empty, "preset %s", id)
	}
}

func TestResolveTotality(t *testing.T) {
	// Deeply partial overrides must still yield a theme with no empty field.
	partials := []*Overrides{
		nil,
		{},
		{Tokens: &TokenOverrides{}},
		{Tokens: &TokenOverrides{Accent: strPtr("#123456")}},
		{Layout: &LayoutOverrides{Density: strPtr(DensityCompact)}},
		{Variants: &VariantOverrides{Item: strPtr(ItemCard)}},
		{
			Tokens:   &TokenOverrides{Radius: strPtr("2px")},
			Layout:   &LayoutOverrides{LayoutID: strPtr(LayoutModernCard)},
			Variants: &VariantOverrides{Section: strPtr(SectionCard)},
		},
	}
	for _, id := range PresetIDs() {
		for i, ov := range partials {
			r := Resolve(id, ov)
			requireNoEmptyStrings(t, reflect.ValueOf(r), id, i)
		}
	}
}

func requireNoEmptyStrings(t *testing.T, v reflect.Value, preset string, caseNo int) {
	t.Helper()
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			requireNoEmptyStrings(t, v.Field(i), preset, caseNo)
		}
	case reflect.String:
		require.NotEmpty(t, v.String(), "preset %s case %d leaked an empty field", preset, caseNo)
	}
}

func TestResolveOverridePrecedence(t *testing.T) {
	r := Resolve(PresetCoffeePastel, &Overrides{
		Tokens: &TokenOverrides{Accent: strPtr("#123456")},
	})
	base := Resolve(PresetCoffeePastel, nil)

	assert.Equal(t, "#123456", r.Tokens.Accent)

	// Every other token keeps the preset value.
	r.Tokens.Accent = base.Tokens.Accent
	assert.Equal(t, base, r)
}

func TestResolveUnknownPresetFallsBack(t *testing.T) {
	assert.Equal(t, Resolve(PresetCoffeePastel, nil), Resolve("doesNotExist", nil))
	assert.Equal(t, Resolve(PresetCoffeePastel, nil), Resolve("", nil))
}

func TestResolveNullFieldDoesNotOverwrite(t *testing.T) {
	// JSON null must decode to a nil pointer and therefore inherit.
	var ov Overrides
	require.NoError(t, json.Unmarshal([]byte(`{"tokens":{"accent":null,"text":"#000000"}}`), &ov))

	r := Resolve(PresetMinimal, &ov)
	base := Resolve(PresetMinimal, nil)
	assert.Equal(t, base.Tokens.Accent, r.Tokens.Accent)
	assert.Equal(t, "#000000", r.Tokens.Text)
}

func TestSelectLayout(t *testing.T) {
	tests := []struct {
		layoutID string
		want     Kind
	}{
		{LayoutModernCard, KindCardGrid},
		{LayoutMinimal, KindList},
		{"somethingElse", KindList},
		{"", KindList},
	}
	for _, tt := range tests {
		r := Resolve(DefaultPreset, nil)
		r.Layout.LayoutID = tt.layoutID
		if got := SelectLayout(r); got != tt.want {
			t.Errorf("SelectLayout(layoutId=%q) = %v, want %v", tt.layoutID, got, tt.want)
		}
	}
}
