package model

import "testing"

func TestMapClass_Known(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Iop", "iop"},
		{"cra", "cra"},
		{"  Xelor ", "xelor"},
		{"HUPPERMAGE", "huppermage"},
		{"Beta", "beta"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MapClass(tt.input); got != tt.want {
				t.Errorf("MapClass(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMapClass_UnknownFallback(t *testing.T) {
	for _, label := range []string{"", "Dofus", "Release", "iop2"} {
		if got := MapClass(label); got != "unknown" {
			t.Errorf("MapClass(%q) = %q, want unknown", label, got)
		}
	}
}

func TestMatchedWindow_ClassKey(t *testing.T) {
	w := MatchedWindow{Label: "Sram"}
	if got := w.ClassKey(); got != "sram" {
		t.Errorf("ClassKey() = %q, want sram", got)
	}
}
