package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"single character", "a", false},
		{"at the limit", strings.Repeat("x", MaxItemNameRunes), false},
		{"multibyte runes count once", strings.Repeat("ж", MaxItemNameRunes), false},
		{"cyrillic title", "Тестовое объявление", false},
		{"empty", "", true},
		{"one over the limit", strings.Repeat("x", MaxItemNameRunes+1), true},
		{"invalid utf-8", "bad\xffname", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewItemName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.in {
				t.Errorf("expected %q, got %q", tt.in, got.String())
			}
		})
	}
}
