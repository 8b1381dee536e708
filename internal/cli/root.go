// Package cli defines the Cobra commands for pomo.
// This file contains the root command, which runs a single session.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/notify"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
)

// tickInterval is the length of one counted second. Tests shorten it.
var tickInterval = config.TickInterval

type rootOptions struct {
	configPath string
	dbPath     string
	logLevel   string
	noNotify   bool

	kind       string
	plain      bool
	work       time.Duration
	shortBreak time.Duration
	longBreak  time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pomo",
		Short: "Pomodoro timer for the terminal",
		Long: `pomo counts down work sprints and short or long breaks.
It runs a full-screen view when attached to a terminal and prints
one line per second otherwise.`,
		Version:       tui.AppVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pomo/config.yaml)")
	pf.StringVar(&opts.dbPath, "db", "", "settings database (default $XDG_DATA_HOME/pomo/pomo.db)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&opts.noNotify, "no-notify", false, "disable completion notifications")

	f := cmd.Flags()
	f.StringVar(&opts.kind, "kind", "", "interval to start: work, short_break, long_break")
	f.BoolVar(&opts.plain, "plain", false, "print progress lines instead of the full-screen view")
	f.DurationVar(&opts.work, "work", 0, "work sprint length for this run (0 keeps the stored value)")
	f.DurationVar(&opts.shortBreak, "short", 0, "short break length for this run")
	f.DurationVar(&opts.longBreak, "long", 0, "long break length for this run")

	cmd.AddCommand(newSettingsCmd(opts))
	return cmd
}

// Execute runs the root command. Called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig applies the YAML file and the --log-level flag.
func loadConfig(opts *rootOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(util.ExpandHome(path))
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
		cfg.Validate()
	}
	return cfg, nil
}

func resolveDBPath(opts *rootOptions) string {
	if opts.dbPath != "" {
		return util.ExpandHome(opts.dbPath)
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

// openStore opens the settings database named by the flags.
func openStore(ctx context.Context, opts *rootOptions) (*database.Database, error) {
	db, err := database.Open(ctx, resolveDBPath(opts))
	if err != nil {
		return nil, fmt.Errorf("open settings: %w", err)
	}
	return db, nil
}

// resolveDurations layers stored overrides and flags over the config file.
// A zero flag leaves the duration alone; any other flag value must be at
// least one second.
func resolveDurations(ctx context.Context, cfg *config.Config, db database.PreferenceRepository, opts *rootOptions) (models.Durations, error) {
	durations, err := db.ApplyDurationOverrides(ctx, cfg.IntervalDurations())
	util.LogError("apply duration overrides", err)
	flags := map[models.IntervalKind]time.Duration{
		models.WorkSprint: opts.work,
		models.ShortBreak: opts.shortBreak,
		models.LongBreak:  opts.longBreak,
	}
	for kind, d := range flags {
		if d != 0 {
			durations = durations.With(kind, d)
		}
	}
	if err := durations.Validate(); err != nil {
		return models.Durations{}, fmt.Errorf("invalid duration flag: %w", err)
	}
	return durations, nil
}

// notifierFactory builds the completion notifier. Tests replace it.
var notifierFactory = buildNotifier

func buildNotifier(cfg *config.Config, noNotify bool, out io.Writer) notify.Notifier {
	if noNotify {
		return notify.Nop{}
	}
	var multi notify.Multi
	if cfg.Notify.Desktop {
		multi = append(multi, notify.NewDBus(config.AppName, cfg.Notify.Timeout))
	}
	if cfg.Notify.Bell {
		multi = append(multi, notify.NewBell(out))
	}
	if len(multi) == 0 {
		return notify.Nop{}
	}
	return multi
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	var kind models.IntervalKind
	if opts.kind != "" {
		if kind, err = models.ParseIntervalKind(opts.kind); err != nil {
			return err
		}
	}

	dbPath := resolveDBPath(opts)
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), config.LogFileName)
	}
	prev := slog.Default()
	logFile, err := util.SetupLogging(util.ExpandHome(logPath), cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() {
		slog.SetDefault(prev)
		_ = logFile.Close()
	}()

	db, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		util.LogError("close settings", db.Close())
	}()

	durations, err := resolveDurations(ctx, cfg, db, opts)
	if err != nil {
		return err
	}
	notifier := notifierFactory(cfg, opts.noNotify, cmd.OutOrStdout())

	var session *timer.Session
	dispatcher := notify.NewDispatcher(notifier, cfg.Notify.Timeout, func() notify.Message {
		return notify.CompletionMessage(session.Kind())
	})
	// Runs before the store and log file close, so a completion fired on the
	// last tick is still delivered and logged.
	defer dispatcher.Wait(cfg.Notify.Timeout)
	session = timer.NewSession(durations, timer.Options{TickInterval: tickInterval}, dispatcher.Fire)
	defer session.Close()

	slog.Info("session ready",
		"work", durations.Work.String(),
		"short_break", durations.ShortBreak.String(),
		"long_break", durations.LongBreak.String())

	if opts.plain || !tui.IsTTY() {
		session.Start(kind)
		return runPlain(ctx, cmd.OutOrStdout(), session, tickInterval)
	}
	if opts.kind != "" {
		session.Start(kind)
	}
	model := tui.NewModel(ctx, session, db, db.Theme(ctx, cfg.Theme))
	return tui.Run(model)
}
