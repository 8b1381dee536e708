package config

import "time"

// Timer durations.
const (
	WorkDuration       = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute

	// TickInterval is the wall-clock length of one counted second.
	TickInterval = time.Second
)

// Notification settings.
const (
	NotifyTimeout = 5 * time.Second
	NotifyTitle   = "pomo"
)

// Application files.
const (
	AppName        = "pomo"
	DBFileName     = "pomo.db"
	ConfigFileName = "config.yaml"
	LogFileName    = "pomo.log"
)

// Settings keys stored in the database.
const (
	SettingTheme          = "theme"
	SettingDurationPrefix = "duration."
)

// Logging levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
