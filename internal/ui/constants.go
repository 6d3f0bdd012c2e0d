package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
	IconCheck    = "✓"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	PreviewMinWidth  float32 = 360
	PreviewMinHeight float32 = 270
)

// File dialog filter extensions
var (
	InputExtensions  = []string{".jpg", ".jpeg"}
	OutputExtensions = []string{".png"}
)

// Behavior timing
const (
	// NoticeAutoHide bounds how long the success message stays visible
	NoticeAutoHide = 5 * time.Second
)
