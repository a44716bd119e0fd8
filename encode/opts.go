package encode

type EncodeOption func(*EncState)

// EncodeCompact renders single-line output without whitespace.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// EncodeIndent sets the indent width (default 2).
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colorizes output with c.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
