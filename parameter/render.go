package parameter

// Cord presentation
const (
	CordWidth = 8.0

	CordGlyphHorizontal = '─'
	CordGlyphVertical   = '│'
	CordGlyphRising     = '╱'
	CordGlyphFalling    = '╲'

	PoleGlyph       = 'Ψ'
	AttachmentGlyph = '◉'
	GroundGlyph     = '·'
)

// Player glyphs indexed by component.Direction
var PlayerGlyphs = [4]rune{'▲', '▼', '◀', '▶'}
