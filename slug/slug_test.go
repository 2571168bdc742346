package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Cafe Luna", "cafe-luna"},
		{"Cafe  Luna", "cafe-luna"},
		{"  Cafe Luna  ", "cafe-luna"},
		{"Café Luna", "caf-luna"},
		{"Joe's Diner & Grill", "joe-s-diner-grill"},
		{"---", ""},
		{"", ""},
		{"Bar 42", "bar-42"},
		{"ALL CAPS PLACE", "all-caps-place"},
	}
	for _, tt := range tests {
		if got := Make(tt.name); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
