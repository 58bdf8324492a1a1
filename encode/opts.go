package encode

type EncodeOption func(*EncState)

// Wire selects the compact layout: no spaces, one line.
func Wire() EncodeOption {
	return func(es *EncState) { es.wire = true }
}

// Indent selects pretty-printing with n spaces per nesting level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting nesting level for indented output embedded in
// surrounding text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Colors enables ANSI color output.
func Colors(c *ColorSet) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
