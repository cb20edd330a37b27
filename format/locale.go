package format

import "golang.org/x/text/language"

// Locale carries the separators and symbols number formatting varies
// by region.
type Locale struct {
	// Decimal is the fraction separator.
	Decimal string
	// Thousands is the group separator inserted by the ',' flag.
	Thousands string
	// Grouping is the digit group pattern from the right; the last
	// entry repeats. {3} groups 1,234,567; {3, 2} groups 12,34,567.
	Grouping []int
	// CurrencyPrefix and CurrencySuffix wrap '$'-symbol output.
	CurrencyPrefix string
	CurrencySuffix string
	// Minus is the negative sign.
	Minus string
	// Percent is the suffix for the '%' and 'p' types.
	Percent string
}

// EnUS is the default locale.
var EnUS = Locale{
	Decimal:        ".",
	Thousands:      ",",
	Grouping:       []int{3},
	CurrencyPrefix: "$",
	Minus:          "-",
	Percent:        "%",
}

// supported pairs the built-in locales with their language tags. The
// first entry is the matcher fallback.
var supported = []struct {
	tag language.Tag
	loc Locale
}{
	{language.AmericanEnglish, EnUS},
	{language.BritishEnglish, Locale{
		Decimal: ".", Thousands: ",", Grouping: []int{3},
		CurrencyPrefix: "£", Minus: "-", Percent: "%",
	}},
	{language.German, Locale{
		Decimal: ",", Thousands: ".", Grouping: []int{3},
		CurrencySuffix: " €", Minus: "-", Percent: "%",
	}},
	{language.French, Locale{
		Decimal: ",", Thousands: " ", Grouping: []int{3},
		CurrencySuffix: " €", Minus: "-", Percent: "%",
	}},
	{language.Japanese, Locale{
		Decimal: ".", Thousands: ",", Grouping: []int{3},
		CurrencyPrefix: "¥", Minus: "-", Percent: "%",
	}},
	{language.Hindi, Locale{
		Decimal: ".", Thousands: ",", Grouping: []int{3, 2},
		CurrencyPrefix: "₹", Minus: "-", Percent: "%",
	}},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	matcher = language.NewMatcher(tags)
}

// ForTag returns the closest built-in locale for the language tag,
// falling back to en-US.
func ForTag(tag language.Tag) Locale {
	_, i, _ := matcher.Match(tag)
	return supported[i].loc
}

// ForName parses a BCP 47 name like "de-DE" and resolves it. Unknown
// names fall back to en-US.
func ForName(name string) Locale {
	tag, err := language.Parse(name)
	if err != nil {
		return EnUS
	}
	return ForTag(tag)
}
