package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/organizer-cli/internal/model"
)

// Window messages and key-state flags used for synthetic clicks.
const (
	WMLButtonDown uint32 = 0x0201
	WMLButtonUp   uint32 = 0x0202

	MKLButton uintptr = 0x0001
)

// Point is a position in screen or client coordinates.
type Point struct {
	X int32 `yaml:"x" json:"x"`
	Y int32 `yaml:"y" json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// MakeLParam packs a point into the low/high words of an LPARAM.
func MakeLParam(p Point) uintptr {
	return uintptr(uint32(uint16(p.X)) | uint32(uint16(p.Y))<<16)
}

// ParsePoint parses an "x,y" string into a Point.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	vals := make([]int32, 2)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
		}
		vals[i] = int32(v)
	}
	return Point{X: vals[0], Y: vals[1]}, nil
}

// ParseHandle accepts decimal or 0x-prefixed hexadecimal window handles.
func ParseHandle(s string) (model.Handle, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid window handle %q: must be non-zero", s)
	}
	return model.Handle(v), nil
}
