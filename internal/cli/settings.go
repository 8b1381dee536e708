package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show effective durations and stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsList(cmd, opts)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "set <work|short_break|long_break|theme> <value>",
		Short: "Store a duration override or the theme",
		Long: `Durations accept Go duration syntax (25m, 90s) or whole seconds.
Themes: ` + strings.Join(tui.ThemeNames(), ", ") + `.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsSet(cmd, opts, args[0], args[1])
		},
	})
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsInit(cmd, opts, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	cmd.AddCommand(initCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "unset <work|short_break|long_break|theme>",
		Short: "Remove a stored setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsUnset(cmd, opts, args[0])
		},
	})
	return cmd
}

func runSettingsList(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	db, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer db.Close()

	durations, err := db.ApplyDurationOverrides(ctx, cfg.IntervalDurations())
	if err != nil {
		return err
	}
	stored, err := db.ListSettings(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, kind := range models.IntervalKinds {
		source := "config"
		if _, ok := stored[database.DurationKey(kind)]; ok {
			source = "stored"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind.Key(), durations.For(kind), source)
	}
	fmt.Fprintf(w, "%s\t%s\t\n", config.SettingTheme, db.Theme(ctx, cfg.Theme))
	if err := w.Flush(); err != nil {
		return err
	}
	printStored(out, stored)
	return nil
}

func printStored(out io.Writer, stored map[string]string) {
	if len(stored) == 0 {
		return
	}
	keys := make([]string, 0, len(stored))
	for k := range stored {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Stored:")
	for _, k := range keys {
		fmt.Fprintf(out, "  %s = %s\n", k, stored[k])
	}
}

func runSettingsSet(cmd *cobra.Command, opts *rootOptions, key, value string) error {
	ctx := cmd.Context()
	db, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer db.Close()

	if key == config.SettingTheme {
		if _, ok := tui.Themes[value]; !ok {
			return fmt.Errorf("%w: unknown theme %q", database.ErrInvalidSetting, value)
		}
		if err := db.SetTheme(ctx, value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "theme = %s\n", value)
		return nil
	}

	kind, err := models.ParseIntervalKind(key)
	if err != nil {
		return err
	}
	seconds, err := parseSeconds(value)
	if err != nil {
		return err
	}
	if err := db.SetDurationOverride(ctx, kind, seconds); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", kind.Key(), time.Duration(seconds)*time.Second)
	return nil
}

func runSettingsUnset(cmd *cobra.Command, opts *rootOptions, key string) error {
	ctx := cmd.Context()
	db, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer db.Close()

	storeKey := key
	if key != config.SettingTheme {
		kind, err := models.ParseIntervalKind(key)
		if err != nil {
			return err
		}
		storeKey = database.DurationKey(kind)
	}
	if err := db.DeleteSetting(ctx, storeKey); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", storeKey)
	return nil
}

func runSettingsInit(cmd *cobra.Command, opts *rootOptions, force bool) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	path = util.ExpandHome(path)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// parseSeconds accepts "90", "90s" or "25m" and returns whole seconds.
func parseSeconds(value string) (int, error) {
	value = strings.TrimSpace(value)
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a duration", database.ErrInvalidSetting, value)
	}
	return int(d / time.Second), nil
}
