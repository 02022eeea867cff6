package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the indent unit repeated per nesting level.
func EncodeIndent(indent string) EncodeOption {
	return func(es *EncState) { es.indent = indent }
}

// Depth sets the starting nesting level.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
