// Package format renders numbers for tick labels and tooltips using
// the d3-format specifier mini-language
// [[fill]align][sign][symbol][0][width][,][.precision][~][type],
// parameterized by locale.
package format

import (
	"fmt"
	"regexp"
	"strconv"
)

// Align positions the padded value within its width.
type Align uint8

const (
	// AlignRight pads on the left (default).
	AlignRight Align = iota
	// AlignLeft pads on the right.
	AlignLeft
	// AlignCenter splits the padding.
	AlignCenter
	// AlignAfterSign pads between the sign/symbol and the digits.
	AlignAfterSign
)

// Sign selects how the value's sign is shown.
type Sign uint8

const (
	// SignMinus shows a minus for negatives only (default).
	SignMinus Sign = iota
	// SignPlus shows a plus for non-negatives.
	SignPlus
	// SignSpace shows a space for non-negatives.
	SignSpace
	// SignParens wraps negatives in parentheses.
	SignParens
)

// Specifier is a parsed format directive. The zero value formats like
// the empty specifier.
type Specifier struct {
	Fill      rune
	Align     Align
	Sign      Sign
	Symbol    rune // '$', '#', or 0
	Zero      bool
	Width     int
	Comma     bool
	Precision int // -1 when unset
	Trim      bool
	Type      rune // one of b o d x X e f g r s % p c, or 0
}

var specRe = regexp.MustCompile(
	`^(?:(.)?([<>=^]))?([+\- (])?([#$])?(0)?(\d+)?(,)?(?:\.(\d+))?(~)?([a-zA-Z%])?$`)

// Parse decodes a specifier string.
func Parse(s string) (Specifier, error) {
	spec := Specifier{Fill: ' ', Precision: -1}
	m := specRe.FindStringSubmatch(s)
	if m == nil {
		return spec, fmt.Errorf("format: invalid specifier %q", s)
	}
	if m[1] != "" {
		spec.Fill = []rune(m[1])[0]
	}
	switch m[2] {
	case "<":
		spec.Align = AlignLeft
	case "^":
		spec.Align = AlignCenter
	case "=":
		spec.Align = AlignAfterSign
	}
	switch m[3] {
	case "+":
		spec.Sign = SignPlus
	case " ":
		spec.Sign = SignSpace
	case "(":
		spec.Sign = SignParens
	}
	if m[4] != "" {
		spec.Symbol = []rune(m[4])[0]
	}
	if m[5] != "" {
		spec.Zero = true
		spec.Fill = '0'
		spec.Align = AlignAfterSign
	}
	if m[6] != "" {
		spec.Width, _ = strconv.Atoi(m[6])
	}
	spec.Comma = m[7] != ""
	if m[8] != "" {
		spec.Precision, _ = strconv.Atoi(m[8])
	}
	spec.Trim = m[9] != ""
	if m[10] != "" {
		t := []rune(m[10])[0]
		switch t {
		case 'b', 'o', 'd', 'x', 'X', 'e', 'f', 'g', 'r', 's', '%', 'p', 'c':
			spec.Type = t
		default:
			return spec, fmt.Errorf("format: unknown type %q in %q", t, s)
		}
	}
	return spec, nil
}
