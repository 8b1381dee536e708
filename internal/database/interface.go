package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// SettingsRepository defines key/value settings operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	ListSettings(ctx context.Context) (map[string]string, error)
}

// PreferenceRepository defines typed preference operations.
type PreferenceRepository interface {
	DurationOverride(ctx context.Context, kind models.IntervalKind) (time.Duration, bool, error)
	SetDurationOverride(ctx context.Context, kind models.IntervalKind, seconds int) error
	ApplyDurationOverrides(ctx context.Context, durations models.Durations) (models.Durations, error)
	Theme(ctx context.Context, fallback string) string
	SetTheme(ctx context.Context, name string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	SettingsRepository
	PreferenceRepository
}

var _ Repository = (*Database)(nil)
