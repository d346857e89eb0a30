package platform

import (
	"testing"

	"github.com/mj1618/organizer-cli/internal/model"
)

func TestParsePoint_Valid(t *testing.T) {
	p, err := ParsePoint("10,20")
	if err != nil {
		t.Fatal(err)
	}
	if p.X != 10 || p.Y != 20 {
		t.Errorf("got %+v, want {10 20}", p)
	}
}

func TestParsePoint_WithSpacesAndNegative(t *testing.T) {
	p, err := ParsePoint(" -1920, 40 ")
	if err != nil {
		t.Fatal(err)
	}
	if p.X != -1920 || p.Y != 40 {
		t.Errorf("got %+v, want {-1920 40}", p)
	}
}

func TestParsePoint_Invalid(t *testing.T) {
	tests := []string{"", "10", "10,20,30", "a,b", "10,abc"}
	for _, s := range tests {
		if _, err := ParsePoint(s); err == nil {
			t.Errorf("ParsePoint(%q) should fail", s)
		}
	}
}

func TestMakeLParam(t *testing.T) {
	tests := []struct {
		p    Point
		want uintptr
	}{
		{Point{0, 0}, 0},
		{Point{1, 2}, 0x00020001},
		{Point{0xFFFF, 0}, 0x0000FFFF},
		{Point{-1, -1}, 0xFFFFFFFF},
	}
	for _, tt := range tests {
		if got := MakeLParam(tt.p); got != tt.want {
			t.Errorf("MakeLParam(%v) = %#x, want %#x", tt.p, got, tt.want)
		}
	}
}

func TestParseHandle(t *testing.T) {
	tests := []struct {
		input string
		want  model.Handle
	}{
		{"123", 123},
		{"0x1a2b", 0x1a2b},
		{" 0X10 ", 16},
	}
	for _, tt := range tests {
		got, err := ParseHandle(tt.input)
		if err != nil {
			t.Errorf("ParseHandle(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHandle(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseHandle_Invalid(t *testing.T) {
	for _, s := range []string{"", "0", "abc", "-5"} {
		if _, err := ParseHandle(s); err == nil {
			t.Errorf("ParseHandle(%q) should fail", s)
		}
	}
}
