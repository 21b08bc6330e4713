package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform layer.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed           // red suits
	ColorWhite         // black suits on the dark felt
	ColorGreen         // felt and accents
	ColorYellow        // selection highlight
	ColorCyan          // hints
	ColorGray          // face-down backs and placeholders
	ColorBrightWhite
)
