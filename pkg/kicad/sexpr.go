package kicad

import (
	"math"
	"strconv"
	"strings"
)

// numberPrecision is the number of decimals written for coordinates.
const numberPrecision = 6

// FormatNumber renders a float the way KiCad files expect: fixed precision,
// trailing zeros dropped, no negative zero.
func FormatNumber(v float64) string {
	p := math.Pow10(numberPrecision)
	v = math.Round(v*p) / p
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Quote always returns a double-quoted string.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}

// Atom returns s unquoted when it is a plain token, quoted otherwise.
func Atom(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n()\"\\") {
		return Quote(s)
	}
	return s
}

// xy renders "x y".
func xy(x, y float64) string {
	return FormatNumber(x) + " " + FormatNumber(y)
}
