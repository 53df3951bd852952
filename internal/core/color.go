package core

// Color names what a screen cell shows rather than how it looks; the
// terminal host owns the mapping to real terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFarStar
	ColorNearStar
	ColorDebris
	ColorResource
	ColorCraft
	ColorFrame
	ColorMessage
)
