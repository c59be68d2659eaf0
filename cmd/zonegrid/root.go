package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zonegrid/zonegrid/pkg/convert"
	"github.com/zonegrid/zonegrid/pkg/tz"
	"github.com/zonegrid/zonegrid/pkg/zonelist"
)

var (
	zoneFlags    []string
	anchorFlag   string
	atFlag       string
	twelveHour   bool
	colorEnabled bool
	excludeLocal bool
	liveMode     bool
	liveInterval int
	searchQuery  string

	// Set before config binding: applying config values marks flags
	// Changed, which would make persisted zones look user-typed.
	zonesFromCommandLine bool

	v      = viper.New()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
)

var rootCmd = &cobra.Command{
	Use:     "zonegrid",
	Version: "v1.0.0",
	Short:   "Compare wall-clock time across time zones",
	Long: `zonegrid shows one day as a 24-hour grid across a set of time zones:
converted local times, UTC offsets, day-rollover markers, night hours, and
the current hour. Your zone selection is saved, so you only specify it once.

Examples:

  # Current time across your saved zones (plus your local zone):
  $ zonegrid

  # Pick zones explicitly:
  $ zonegrid -z America/New_York -z Europe/Stockholm -z Asia/Tokyo

  # What is 23:30 UTC on New Year's Day everywhere else?
  $ zonegrid -z UTC -z Asia/Tokyo --at 2024-01-01T23:30

  # Anchor the grid on another zone's day:
  $ zonegrid -a Asia/Tokyo

  # Refresh continuously:
  $ zonegrid --live --interval 5

  # Find a zone identifier:
  $ zonegrid --search kolkata`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verboseCount, _ := cmd.Flags().GetCount("verbose")
		if verboseCount > 0 {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		return initializeConfig(cmd)
	},
	Args: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("at") && liveMode {
			return fmt.Errorf("--at and --live are mutually exclusive")
		}
		// time.NewTicker panics on non-positive intervals.
		if liveInterval < 1 {
			return fmt.Errorf("--interval must be at least 1 second")
		}
		if atFlag != "" {
			if _, err := time.Parse(convert.LocalTimeLayout, atFlag); err != nil {
				return fmt.Errorf("invalid --at value %q, expected YYYY-MM-DDTHH:MM", atFlag)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		resolver := tz.NewResolver()

		if searchQuery != "" {
			catalog := tz.NewCatalog(resolver, logger)
			for _, name := range catalog.Search(searchQuery, 50) {
				fmt.Println(name)
			}
			return nil
		}

		list, err := buildZoneList(resolver)
		if err != nil {
			return err
		}
		savePreferences(list)

		engine := convert.New(resolver)
		if liveMode {
			runLive(engine, list)
			return nil
		}
		return render(engine, list, time.Now())
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "zonegrid %s\n" .Version}}`)
	rootCmd.Flags().StringArrayVarP(&zoneFlags, "zone", "z", []string{}, "zone to compare, e.g. America/New_York; repeatable")
	rootCmd.Flags().StringVarP(&anchorFlag, "anchor", "a", "", "zone whose day anchors the grid (default: first zone)")
	rootCmd.Flags().StringVar(&atFlag, "at", "", "wall-clock time in the anchor zone, YYYY-MM-DDTHH:MM; default now")
	rootCmd.Flags().BoolVarP(&twelveHour, "twelve-hour", "t", false, "use 12-hour time format")
	rootCmd.Flags().BoolVarP(&colorEnabled, "color", "c", true, "colorize night and current hours")
	rootCmd.Flags().BoolVarP(&excludeLocal, "exclude-local", "x", false, "do not add the local zone to the list")
	rootCmd.Flags().BoolVarP(&liveMode, "live", "l", false, "refresh the grid continuously (Ctrl+C to exit)")
	rootCmd.Flags().IntVarP(&liveInterval, "interval", "i", 1, "refresh interval in seconds for live mode")
	rootCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "search zone identifiers and exit")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase logging verbosity")

	rootCmd.MarkFlagsMutuallyExclusive("live", "at")
}

// initializeConfig wires viper to the config file and binds flags, so zone
// selections persist across runs (flags > env > config file).
func initializeConfig(cmd *cobra.Command) error {
	configPath := ""
	if runtime.GOOS == "windows" {
		configPath = os.Getenv("APPDATA")
	} else {
		configPath = filepath.Join(os.Getenv("HOME"), ".config")
	}
	if err := os.MkdirAll(configPath, 0o755); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}
	configFile := filepath.Join(configPath, ".zonegrid.yaml")

	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			if err := v.SafeWriteConfigAs(configFile); err != nil {
				logger.Error("Failed to create config file", "error", err)
			}
		} else {
			logger.Debug("Config file unreadable", "error", err)
		}
	}

	v.SetEnvPrefix("ZONEGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	zonesFromCommandLine = cmd.Flags().Changed("zone")
	bindFlags(cmd, v)
	return nil
}

// bindFlags applies config/env values to flags the user did not set on the
// command line. Array values are applied element by element.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		val := v.Get(f.Name)
		if arr, ok := val.([]any); ok {
			for _, item := range arr {
				if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", item)); err != nil {
					logger.Error("Failed to apply config value", "flag", f.Name, "error", err)
				}
			}
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
			logger.Error("Failed to apply config value", "flag", f.Name, "error", err)
		}
	})
}

// buildZoneList assembles the comparison list: configured/flagged zones,
// the local zone unless excluded, defaults when nothing survives. Invalid
// flag values fail loudly; only persisted state degrades silently.
func buildZoneList(resolver *tz.Resolver) (*zonelist.List, error) {
	var zones []string
	if !excludeLocal {
		if local := tz.LocalZone(); local != "" && resolver.Valid(local) {
			zones = append(zones, local)
		}
	}
	zones = append(zones, zoneFlags...)

	if zonesFromCommandLine {
		// Explicit flags: reject typos instead of dropping them. Zones
		// restored from the config file fall through to the silent
		// filter below, so a stale saved zone never blocks startup.
		for _, zone := range zoneFlags {
			if !resolver.Valid(zone) {
				return nil, fmt.Errorf("unknown zone %q", zone)
			}
		}
	}

	list := zonelist.FromZones(resolver, zones, anchorFlag)
	if anchorFlag != "" && list.Anchor() != anchorFlag {
		return nil, fmt.Errorf("anchor %q is not in the zone list", anchorFlag)
	}
	return list, nil
}

func savePreferences(list *zonelist.List) {
	v.Set("zone", list.Zones())
	v.Set("twelve-hour", twelveHour)
	v.Set("color", colorEnabled)
	if err := v.WriteConfig(); err != nil {
		logger.Error("Failed to save preferences", "error", err)
	}
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

// runLive re-renders on a ticker until interrupted. The ticker is stopped
// on the way out; nothing keeps running after Ctrl+C.
func runLive(engine *convert.Engine, list *zonelist.List) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Duration(liveInterval) * time.Second)
	defer ticker.Stop()

	if err := render(engine, list, time.Now()); err != nil {
		logger.Error("Render failed", "error", err)
		return
	}
	fmt.Println("\nLive mode active. Press Ctrl+C to exit.")

	for {
		select {
		case <-sigChan:
			fmt.Println("\nExiting live mode...")
			return
		case <-ticker.C:
			clearScreen()
			if err := render(engine, list, time.Now()); err != nil {
				logger.Error("Render failed", "error", err)
				return
			}
			fmt.Println("\nLive mode active. Press Ctrl+C to exit.")
		}
	}
}
