package format

import (
	"math"
	"testing"
)

func TestParseSpecifier(t *testing.T) {
	cases := []struct {
		in   string
		want Specifier
	}{
		{"d", Specifier{Fill: ' ', Precision: -1, Type: 'd'}},
		{".2f", Specifier{Fill: ' ', Precision: 2, Type: 'f'}},
		{"8d", Specifier{Fill: ' ', Width: 8, Precision: -1, Type: 'd'}},
		{"08d", Specifier{Fill: '0', Align: AlignAfterSign, Zero: true, Width: 8, Precision: -1, Type: 'd'}},
		{"+d", Specifier{Fill: ' ', Sign: SignPlus, Precision: -1, Type: 'd'}},
		{"_<8d", Specifier{Fill: '_', Align: AlignLeft, Width: 8, Precision: -1, Type: 'd'}},
		{",d", Specifier{Fill: ' ', Comma: true, Precision: -1, Type: 'd'}},
		{"$d", Specifier{Fill: ' ', Symbol: '$', Precision: -1, Type: 'd'}},
		{"#x", Specifier{Fill: ' ', Symbol: '#', Precision: -1, Type: 'x'}},
		{"~f", Specifier{Fill: ' ', Trim: true, Precision: -1, Type: 'f'}},
		{"", Specifier{Fill: ' ', Precision: -1}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseComplexSpecifier(t *testing.T) {
	got, err := Parse("_>+$12,.2f")
	if err != nil {
		t.Fatal(err)
	}
	if got.Fill != '_' || got.Align != AlignRight || got.Sign != SignPlus ||
		got.Symbol != '$' || got.Width != 12 || !got.Comma ||
		got.Precision != 2 || got.Type != 'f' {
		t.Errorf("parsed = %+v", got)
	}
}

func TestParseUnknownType(t *testing.T) {
	if _, err := Parse("q"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func fmtOrDie(t *testing.T, spec string, v float64) string {
	t.Helper()
	f, err := New(spec)
	if err != nil {
		t.Fatalf("New(%q): %v", spec, err)
	}
	return f.Format(v)
}

func TestFormatBasicTypes(t *testing.T) {
	cases := []struct {
		spec string
		v    float64
		want string
	}{
		{"d", 42, "42"},
		{"d", -42, "-42"},
		{"d", 42.7, "43"},
		{".2f", 3.14159, "3.14"},
		{".2e", 1234, "1.23e+03"},
		{"b", 5, "101"},
		{"o", 8, "10"},
		{"x", 255, "ff"},
		{"X", 255, "FF"},
		{"#x", 255, "0xff"},
		{"#b", 5, "0b101"},
		{"#o", 8, "0o10"},
		{"c", 9731, "☃"},
		{".3r", 123.45, "123"},
		{".1r", 0.00259, "0.003"},
		{".0%", 0.5, "50%"},
		{".1p", 0.125, "12.5%"},
	}
	for _, tc := range cases {
		if got := fmtOrDie(t, tc.spec, tc.v); got != tc.want {
			t.Errorf("%q(%v) = %q, want %q", tc.spec, tc.v, got, tc.want)
		}
	}
}

func TestFormatSpecialValues(t *testing.T) {
	if got := fmtOrDie(t, ".2f", math.NaN()); got != "NaN" {
		t.Errorf("NaN = %q", got)
	}
	if got := fmtOrDie(t, "d", math.Inf(1)); got != "Infinity" {
		t.Errorf("+Inf = %q", got)
	}
	if got := fmtOrDie(t, "d", math.Inf(-1)); got != "-Infinity" {
		t.Errorf("-Inf = %q", got)
	}
}

func TestFormatSigns(t *testing.T) {
	cases := []struct {
		spec string
		v    float64
		want string
	}{
		{"+d", 42, "+42"},
		{"+d", -42, "-42"},
		{" d", 42, " 42"},
		{"(d", -42, "(42)"},
		{"($.2f", -3.5, "($3.50)"},
	}
	for _, tc := range cases {
		if got := fmtOrDie(t, tc.spec, tc.v); got != tc.want {
			t.Errorf("%q(%v) = %q, want %q", tc.spec, tc.v, got, tc.want)
		}
	}
}

func TestFormatPaddingAndAlignment(t *testing.T) {
	cases := []struct {
		spec string
		v    float64
		want string
	}{
		{"8d", 42, "      42"},
		{"08d", 42, "00000042"},
		{"<8d", 42, "42      "},
		{"^8d", 42, "   42   "},
		{"=+8d", 42, "+     42"},
		{"_<8d", 42, "42______"},
		{"2d", 12345, "12345"},
	}
	for _, tc := range cases {
		if got := fmtOrDie(t, tc.spec, tc.v); got != tc.want {
			t.Errorf("%q(%v) = %q, want %q", tc.spec, tc.v, got, tc.want)
		}
	}
}

func TestFormatGrouping(t *testing.T) {
	if got := fmtOrDie(t, ",d", 1234567); got != "1,234,567" {
		t.Errorf("grouped = %q", got)
	}
	if got := fmtOrDie(t, ",.2f", 1234.5); got != "1,234.50" {
		t.Errorf("grouped fraction = %q", got)
	}
	if got := fmtOrDie(t, ",d", 123); got != "123" {
		t.Errorf("short value = %q", got)
	}
}

func TestFormatSI(t *testing.T) {
	cases := []struct {
		spec string
		v    float64
		want string
	}{
		{".2s", 1234, "1.23k"},
		{".2s", 0.00042, "420.00µ"},
		{".0s", 42e6, "42M"},
		{".1s", 0, "0.0"},
	}
	for _, tc := range cases {
		if got := fmtOrDie(t, tc.spec, tc.v); got != tc.want {
			t.Errorf("%q(%v) = %q, want %q", tc.spec, tc.v, got, tc.want)
		}
	}
	// Exponents clamp at the yotta/yocto boundaries.
	if got := fmtOrDie(t, ".0s", 1e27); got != "1000Y" {
		t.Errorf("clamped high = %q", got)
	}
	if got := fmtOrDie(t, ".2s", 1e-27); got != "0.00y" {
		t.Errorf("clamped low = %q", got)
	}
}

func TestFormatTrim(t *testing.T) {
	if got := fmtOrDie(t, "~f", 42); got != "42" {
		t.Errorf("trimmed = %q", got)
	}
	if got := fmtOrDie(t, ".4~f", 3.14); got != "3.14" {
		t.Errorf("trimmed = %q", got)
	}
	if got := fmtOrDie(t, ".4~f", 3.0001); got != "3.0001" {
		t.Errorf("kept digits = %q", got)
	}
}

func TestLocaleGerman(t *testing.T) {
	loc := ForName("de-DE")
	f, err := NewWith(",.2f", loc)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format(1234.5); got != "1.234,50" {
		t.Errorf("de = %q", got)
	}
}

func TestLocaleFrenchCurrency(t *testing.T) {
	f, err := NewWith("$,.2f", ForName("fr-FR"))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format(1234.5); got != "1 234,50 €" {
		t.Errorf("fr currency = %q", got)
	}
}

func TestLocaleHindiGrouping(t *testing.T) {
	f, err := NewWith(",d", ForName("hi-IN"))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Format(12345678); got != "1,23,45,678" {
		t.Errorf("hi grouping = %q", got)
	}
}

func TestLocaleFallback(t *testing.T) {
	loc := ForName("xx-Nonsense-!!")
	if loc.Decimal != "." || loc.Thousands != "," {
		t.Errorf("fallback locale = %+v", loc)
	}
}
