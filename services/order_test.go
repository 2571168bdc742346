package services

import (
	"testing"

	"menuboard/models"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  int64
	}{
		{"empty", nil, 0},
		{"single", []models.OrderItem{{PriceCents: 950, Quantity: 1}}, 950},
		{"quantities", []models.OrderItem{
			{PriceCents: 950, Quantity: 2},
			{PriceCents: 400, Quantity: 3},
		}, 3100},
		{"free item", []models.OrderItem{{PriceCents: 0, Quantity: 5}}, 0},
	}
	for _, tt := range tests {
		if got := OrderTotal(tt.items); got != tt.want {
			t.Errorf("%s: OrderTotal = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestValidateOrderInput(t *testing.T) {
	tests := []struct {
		name    string
		items   []models.OrderItemInput
		wantErr bool
	}{
		{"empty", nil, true},
		{"ok", []models.OrderItemInput{{ItemID: 1, Quantity: 2}}, false},
		{"zero quantity", []models.OrderItemInput{{ItemID: 1, Quantity: 0}}, true},
		{"negative quantity", []models.OrderItemInput{{ItemID: 1, Quantity: -1}}, true},
		{"bad id", []models.OrderItemInput{{ItemID: 0, Quantity: 1}}, true},
		{"one bad among good", []models.OrderItemInput{
			{ItemID: 1, Quantity: 1},
			{ItemID: 2, Quantity: 0},
		}, true},
	}
	for _, tt := range tests {
		err := ValidateOrderInput(tt.items)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateOrderInput err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
