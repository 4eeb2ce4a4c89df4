package game

import "image/color"

// CircuitTheme defines the color palette and visual style for the UI
type CircuitTheme struct {
	// Primary colors
	Primary   color.NRGBA // Electric cyan
	Secondary color.NRGBA // Neon purple
	Accent    color.NRGBA // Matrix green
	Danger    color.NRGBA // Error red
	Success   color.NRGBA // Confirm green
	Warning   color.NRGBA // Caution amber
	Gold      color.NRGBA // Prestige gold

	// Background colors
	Background     color.NRGBA // Deep space
	Surface        color.NRGBA // Panel surface
	CardBackground color.NRGBA // Purchase cards
	Glass          color.NRGBA // Translucent overlays

	// Text colors
	TextPrimary   color.NRGBA
	TextSecondary color.NRGBA
	TextMuted     color.NRGBA

	// Special effects
	Glow      color.NRGBA // Cyan glow
	Shadow    color.NRGBA
	Border    color.NRGBA
	Highlight color.NRGBA
	Rain      color.NRGBA // Binary rain glyphs
}

// DefaultCircuitTheme creates the standard deep-space palette
func DefaultCircuitTheme() *CircuitTheme {
	return &CircuitTheme{
		Primary:   color.NRGBA{0, 230, 255, 255},   // Electric cyan
		Secondary: color.NRGBA{160, 80, 255, 255},  // Neon purple
		Accent:    color.NRGBA{0, 255, 140, 255},   // Matrix green
		Danger:    color.NRGBA{255, 70, 90, 255},   // Error red
		Success:   color.NRGBA{60, 220, 120, 255},  // Confirm green
		Warning:   color.NRGBA{255, 180, 40, 255},  // Caution amber
		Gold:      color.NRGBA{255, 215, 0, 255},   // Prestige gold

		Background:     color.NRGBA{8, 10, 24, 255},   // Deep space blue
		Surface:        color.NRGBA{16, 20, 40, 255},  // Panel surface
		CardBackground: color.NRGBA{22, 28, 52, 255},  // Card background
		Glass:          color.NRGBA{20, 26, 48, 190},  // Translucent panel

		TextPrimary:   color.NRGBA{230, 240, 255, 255},
		TextSecondary: color.NRGBA{150, 170, 210, 255},
		TextMuted:     color.NRGBA{90, 100, 130, 255},

		Glow:      color.NRGBA{0, 230, 255, 180},
		Shadow:    color.NRGBA{0, 0, 0, 150},
		Border:    color.NRGBA{50, 70, 110, 255},
		Highlight: color.NRGBA{0, 230, 255, 110},
		Rain:      color.NRGBA{0, 255, 140, 255},
	}
}
