package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetGaugeWidth is the preferred width of the progress gauge.
	TargetGaugeWidth = 50

	// MinGaugeWidth is the minimum width of the progress gauge.
	MinGaugeWidth = 10

	// EventBuffer sizes the session event channel consumed by the UI.
	EventBuffer = 16
)

// Display strings.
const (
	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."

	DefaultTheme = "default"
)
