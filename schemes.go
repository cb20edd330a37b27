package viz

// Categorical color schemes. Each scheme is an ordered palette;
// ordinal scales cycle through it when the domain is longer.

// SchemeCategory10 is the classic 10-color categorical palette.
var SchemeCategory10 = hexScheme(
	0x1f77b4, 0xff7f0e, 0x2ca02c, 0xd62728, 0x9467bd,
	0x8c564b, 0xe377c2, 0x7f7f7f, 0xbcbd22, 0x17becf,
)

// SchemeTableau10 is the revised Tableau categorical palette.
var SchemeTableau10 = hexScheme(
	0x4e79a7, 0xf28e2c, 0xe15759, 0x76b7b2, 0x59a14f,
	0xedc949, 0xaf7aa1, 0xff9da7, 0x9c755f, 0xbab0ab,
)

// SchemeAccent is an 8-color accent palette.
var SchemeAccent = hexScheme(
	0x7fc97f, 0xbeaed4, 0xfdc086, 0xffff99,
	0x386cb0, 0xf0027f, 0xbf5b17, 0x666666,
)

// SchemeDark2 is an 8-color dark categorical palette.
var SchemeDark2 = hexScheme(
	0x1b9e77, 0xd95f02, 0x7570b3, 0xe7298a,
	0x66a61e, 0xe6ab02, 0xa6761d, 0x666666,
)

// SchemePastel1 is a 9-color pastel palette.
var SchemePastel1 = hexScheme(
	0xfbb4ae, 0xb3cde3, 0xccebc5, 0xdecbe4, 0xfed9a6,
	0xffffcc, 0xe5d8bd, 0xfddaec, 0xf2f2f2,
)

// SchemeSet2 is an 8-color mid-saturation palette.
var SchemeSet2 = hexScheme(
	0x66c2a5, 0xfc8d62, 0x8da0cb, 0xe78ac3,
	0xa6d854, 0xffd92f, 0xe5c494, 0xb3b3b3,
)

func hexScheme(values ...uint32) []RGBA {
	out := make([]RGBA, len(values))
	for i, v := range values {
		out[i] = FromHex(v)
	}
	return out
}
