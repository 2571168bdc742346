package models

import "menuboard/theme"

// Business is a restaurant record. Slug is derived from Name and is the
// public routing key; Currency is the display currency for the public menu.
type Business struct {
	ID             int64
	OwnerID        string
	Name           string
	Slug           string
	Currency       string
	ThemePreset    string
	ThemeOverrides *theme.Overrides
}

// BaseCurrency is the denomination item prices are stored in.
const BaseCurrency = "USD"
