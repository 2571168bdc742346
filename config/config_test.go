package config

import "testing"

func TestIsAdmin(t *testing.T) {
	admin := AdminConfig{IDs: splitIDs("alice, bob ,carol")}

	tests := []struct {
		userID string
		want   bool
	}{
		{"alice", true},
		{"bob", true},
		{"carol", true},
		{"dave", false},
		{"", false},
		{"ALICE", false},
	}
	for _, tt := range tests {
		if got := admin.IsAdmin(tt.userID); got != tt.want {
			t.Errorf("IsAdmin(%q) = %v, want %v", tt.userID, got, tt.want)
		}
	}
}

func TestSplitIDs(t *testing.T) {
	if got := splitIDs(""); got != nil {
		t.Errorf("splitIDs(\"\") = %v, want nil", got)
	}
	got := splitIDs(" a ,, b ")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitIDs = %v, want [a b]", got)
	}
}
