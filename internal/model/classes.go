package model

import "strings"

// ClassKeys is the set of character classes the UI has artwork for.
var ClassKeys = map[string]bool{
	"iop":        true,
	"cra":        true,
	"sacrieur":   true,
	"eniripsa":   true,
	"ouginak":    true,
	"feca":       true,
	"enutrof":    true,
	"sram":       true,
	"forgelance": true,
	"zobal":      true,
	"pandawa":    true,
	"sadida":     true,
	"osamodas":   true,
	"steamer":    true,
	"huppermage": true,
	"ecaflip":    true,
	"roublard":   true,
	"eliotrope":  true,
	"xelor":      true,
	"beta":       true,
}

// MapClass converts a raw title label to a class key, falling back to "unknown".
func MapClass(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if ClassKeys[key] {
		return key
	}
	return "unknown"
}
