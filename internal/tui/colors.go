package tui

// Color constants for the dayflow TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#151A2E" // Dark navy
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (titles, user input)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorDisabledText  = "#6D7383" // Disabled/muted text (done items)
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#2563EB" // Accent elements, active borders
	ColorAccentBright = "#60A5FA" // Highlights, focused section

	// State Colors
	ColorError   = "#EF4444" // Mutation failures
	ColorSuccess = "#22C55E" // Completed items
	ColorWarning = "#F59E0B" // Overdue reminders

	// Board column accents
	ColorWillDo     = "#F59E0B"
	ColorInProgress = "#60A5FA"
	ColorCompleted  = "#22C55E"
)
