package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", key, err)
}

// DeleteSetting removes key. Missing keys report ErrSettingNotFound.
func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return wrapSettingErr("delete", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapSettingErr("delete", key, err)
	}
	if n == 0 {
		return wrapSettingErr("delete", key, ErrSettingNotFound)
	}
	return nil
}

// ListSettings returns every stored key/value pair.
func (d *Database) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT key, value FROM settings ORDER BY key")
	if err != nil {
		return nil, wrapSettingErr("list", "", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, wrapSettingErr("list", "", err)
		}
		out[key] = value.String
	}
	return out, wrapSettingErr("list", "", rows.Err())
}

// DurationKey is the settings key holding the override for kind.
func DurationKey(kind models.IntervalKind) string {
	return config.SettingDurationPrefix + kind.Key()
}

// DurationOverride returns the stored duration for kind, if any.
func (d *Database) DurationOverride(ctx context.Context, kind models.IntervalKind) (time.Duration, bool, error) {
	raw, ok := d.GetSetting(ctx, DurationKey(kind))
	if !ok {
		return 0, false, nil
	}
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs < 1 {
		return 0, false, wrapSettingErr("get", DurationKey(kind), fmt.Errorf("%w: %q", ErrInvalidSetting, raw))
	}
	return time.Duration(secs) * time.Second, true, nil
}

// SetDurationOverride stores a duration in whole seconds for kind.
func (d *Database) SetDurationOverride(ctx context.Context, kind models.IntervalKind, seconds int) error {
	if seconds < 1 {
		return wrapSettingErr("set", DurationKey(kind), fmt.Errorf("%w: %d seconds", ErrInvalidSetting, seconds))
	}
	return d.SetSetting(ctx, DurationKey(kind), strconv.Itoa(seconds))
}

// ApplyDurationOverrides returns durations with every stored override applied.
func (d *Database) ApplyDurationOverrides(ctx context.Context, durations models.Durations) (models.Durations, error) {
	var errs []error
	for _, kind := range models.IntervalKinds {
		value, ok, err := d.DurationOverride(ctx, kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			durations = durations.With(kind, value)
		}
	}
	return durations, errors.Join(errs...)
}

// Theme returns the stored theme name, or fallback.
func (d *Database) Theme(ctx context.Context, fallback string) string {
	if name, ok := d.GetSetting(ctx, config.SettingTheme); ok && name != "" {
		return name
	}
	return fallback
}

func (d *Database) SetTheme(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return wrapSettingErr("set", config.SettingTheme, ErrInvalidSetting)
	}
	return d.SetSetting(ctx, config.SettingTheme, name)
}
