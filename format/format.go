package format

import (
	"math"
	"strconv"
	"strings"
)

// siPrefixes run from 1e-24 (yocto) to 1e24 (yotta) in steps of 1e3.
var siPrefixes = []string{
	"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y",
}

// defaultPrecision applies when the specifier omits one.
const defaultPrecision = 6

// Formatter renders float64 values according to a parsed specifier
// and a locale.
type Formatter struct {
	spec Specifier
	loc  Locale
}

// New compiles a specifier with the en-US locale.
func New(spec string) (Formatter, error) {
	return NewWith(spec, EnUS)
}

// NewWith compiles a specifier against a locale.
func NewWith(spec string, loc Locale) (Formatter, error) {
	s, err := Parse(spec)
	if err != nil {
		return Formatter{}, err
	}
	return Formatter{spec: s, loc: loc}, nil
}

// Format renders the value.
func (f Formatter) Format(v float64) string {
	spec, loc := f.spec, f.loc

	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return loc.Minus + "Infinity"
	}

	var prefix, suffix strings.Builder
	if spec.Type == '%' || spec.Type == 'p' {
		v *= 100
		suffix.WriteString(loc.Percent)
	}

	negative := v < 0
	v = math.Abs(v)

	switch {
	case spec.Sign == SignParens && negative:
		prefix.WriteByte('(')
		suffix.WriteByte(')')
	case negative:
		prefix.WriteString(loc.Minus)
	case spec.Sign == SignPlus:
		prefix.WriteByte('+')
	case spec.Sign == SignSpace:
		prefix.WriteByte(' ')
	}

	if spec.Symbol == '$' {
		prefix.WriteString(loc.CurrencyPrefix)
		s := suffix.String()
		suffix.Reset()
		suffix.WriteString(loc.CurrencySuffix)
		suffix.WriteString(s)
	}

	body := formatNumber(spec, loc, v)
	if spec.Trim {
		body = trimZeros(body, loc.Decimal)
	}
	if spec.Comma {
		body = groupDigits(body, loc)
	}
	if spec.Symbol == '#' {
		switch spec.Type {
		case 'b':
			body = "0b" + body
		case 'o':
			body = "0o" + body
		case 'x', 'X':
			body = "0x" + body
		}
	}
	return pad(spec, prefix.String(), body, suffix.String())
}

func formatNumber(spec Specifier, loc Locale, v float64) string {
	prec := spec.Precision
	if prec < 0 {
		prec = defaultPrecision
	}

	var out string
	switch spec.Type {
	case 0:
		if spec.Precision >= 0 {
			out = strconv.FormatFloat(v, 'f', prec, 64)
		} else {
			out = strconv.FormatFloat(v, 'f', -1, 64)
		}
	case 'e':
		out = strconv.FormatFloat(v, 'e', prec, 64)
	case 'f', '%', 'p':
		out = strconv.FormatFloat(v, 'f', prec, 64)
	case 'g':
		exp := strconv.FormatFloat(v, 'e', prec, 64)
		fixed := strconv.FormatFloat(v, 'f', prec, 64)
		if len(exp) < len(fixed) {
			out = exp
		} else {
			out = fixed
		}
	case 'r':
		out = strconv.FormatFloat(roundSignificant(v, max(prec, 1)), 'f', -1, 64)
	case 's':
		out = formatSI(v, prec)
	case 'd':
		out = strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	case 'b':
		out = strconv.FormatInt(int64(v), 2)
	case 'o':
		out = strconv.FormatInt(int64(v), 8)
	case 'x':
		out = strconv.FormatInt(int64(v), 16)
	case 'X':
		out = strings.ToUpper(strconv.FormatInt(int64(v), 16))
	case 'c':
		out = string(rune(v))
	}

	if loc.Decimal != "." {
		out = strings.Replace(out, ".", loc.Decimal, 1)
	}
	return out
}

// roundSignificant rounds v to the given number of significant
// digits.
func roundSignificant(v float64, digits int) float64 {
	if v == 0 {
		return 0
	}
	magnitude := math.Floor(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(digits-1)-magnitude)
	return math.Round(v*scale) / scale
}

// formatSI scales the value by a power of 1000 and appends the SI
// prefix. The exponent clamps at ±8 (yocto through yotta).
func formatSI(v float64, prec int) string {
	if v == 0 {
		return strconv.FormatFloat(0, 'f', prec, 64)
	}
	exp := math.Floor(math.Log10(math.Abs(v)) / 3)
	exp = math.Min(math.Max(exp, -8), 8)
	scaled := v / math.Pow(10, exp*3)
	return strconv.FormatFloat(scaled, 'f', prec, 64) + siPrefixes[int(exp)+8]
}

// groupDigits inserts the locale's thousands separator into the
// integer part following its grouping pattern, rightmost group first.
func groupDigits(s string, loc Locale) string {
	intPart, rest, hasFrac := strings.Cut(s, loc.Decimal)
	groups := loc.Grouping
	if len(groups) == 0 {
		groups = []int{3}
	}

	var chunks []string
	gi := 0
	for len(intPart) > 0 {
		g := groups[gi]
		if gi < len(groups)-1 {
			gi++
		}
		if g >= len(intPart) {
			chunks = append(chunks, intPart)
			break
		}
		chunks = append(chunks, intPart[len(intPart)-g:])
		intPart = intPart[:len(intPart)-g]
	}
	for i, j := 0, len(chunks)-1; i < j; i, j = i+1, j-1 {
		chunks[i], chunks[j] = chunks[j], chunks[i]
	}

	out := strings.Join(chunks, loc.Thousands)
	if hasFrac {
		return out + loc.Decimal + rest
	}
	return out
}

func trimZeros(s, decimal string) string {
	if !strings.Contains(s, decimal) {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, decimal)
}

// pad brings the rendered value up to the specifier width. AfterSign
// alignment inserts the fill between the sign/symbol and the digits.
func pad(spec Specifier, prefix, body, suffix string) string {
	content := prefix + body + suffix
	width := spec.Width
	n := len([]rune(content))
	if n >= width {
		return content
	}
	fill := strings.Repeat(string(spec.Fill), width-n)
	switch spec.Align {
	case AlignLeft:
		return content + fill
	case AlignCenter:
		half := (width - n) / 2
		return fill[:len(string(spec.Fill))*half] + content + fill[len(string(spec.Fill))*half:]
	case AlignAfterSign:
		return prefix + fill + body + suffix
	default:
		return fill + content
	}
}
