package encode

type EncodeOption func(*EncState)

// EncodeIndent selects human-readable output: children one per line
// with 2-space indentation and a trailing newline.
func EncodeIndent(v bool) EncodeOption {
	return func(es *EncState) { es.format = v }
}

// EncodeDecl prepends the XML declaration to the output.
func EncodeDecl(v bool) EncodeOption {
	return func(es *EncState) { es.decl = v }
}

// EncodeColors enables ANSI-colored output, for terminal viewing.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
