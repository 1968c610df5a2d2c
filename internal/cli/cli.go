// Package cli wires the ingestion pipeline into the command-line
// interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"x4stats/internal/catalog"
	"x4stats/internal/config"
	"x4stats/internal/export"
	"x4stats/internal/locale"
	"x4stats/internal/macro"
	"x4stats/internal/stats"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "x4stats",
		Short: "Browse X4: Foundations ship, engine, shield and weapon data",
		Long:  "Parses extracted X4: Foundations XML macro files into normalized tables and computes derived performance statistics.",
	}

	rootCmd.PersistentFlags().Int("language", 0, "Language id override (e.g. 44 for English)")

	rootCmd.AddCommand(loadCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(languagesCmd())
	rootCmd.AddCommand(speedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [data-dir...]",
		Short: "Load all entity tables and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := buildStore(cmd, args)
			if err != nil {
				return err
			}
			c := store.Reload()
			printSummary(store, c)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [data-dir...]",
		Short: "Load all tables, then write CSV snapshots and the sqlite cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")
			if outDir == "" {
				outDir = config.Load().CacheDir
			}

			store, err := buildStore(cmd, args)
			if err != nil {
				return err
			}
			c := store.Reload()
			printSummary(store, c)

			if err := export.WriteCSV(c, outDir); err != nil {
				return fmt.Errorf("csv export: %w", err)
			}

			cache, err := export.OpenCache(filepath.Join(outDir, "x4stats.db"))
			if err != nil {
				return err
			}
			defer cache.Close()
			if err := cache.Rebuild(c); err != nil {
				return fmt.Errorf("cache rebuild: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output directory (defaults to the configured cache dir)")
	return cmd
}

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and show the current selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			detector := newDetector(cmd, cfg)

			ids := make([]int, 0, len(locale.Languages))
			for id := range locale.Languages {
				ids = append(ids, id)
			}
			sort.Ints(ids)

			selected := detector.LanguageID()
			for _, id := range ids {
				marker := "  "
				if id == selected {
					marker = "* "
				}
				fmt.Printf("%s%3d  %s\n", marker, id, locale.Languages[id])
			}
			fmt.Printf("\nSelected: %s (file %s)\n", locale.LanguageName(selected), locale.FileName(selected))
			return nil
		},
	}
}

func speedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speed <ship-macro> <engine-macro> [data-dir...]",
		Short: "Compute travel speed and cargo round-trip time for one pairing",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := buildStore(cmd, args[2:])
			if err != nil {
				return err
			}
			c := store.Reload()

			ship, ok := c.ShipByMacro(args[0])
			if !ok {
				return fmt.Errorf("unknown ship macro: %s", args[0])
			}
			engine, ok := c.EngineByName(args[1])
			if !ok {
				return fmt.Errorf("unknown engine macro: %s", args[1])
			}

			speed := stats.TravelSpeed(ship, engine)
			fmt.Printf("Ship:          %s\n", ship.DisplayName)
			fmt.Printf("Engine:        %s\n", engine.DisplayName)
			fmt.Printf("Travel speed:  %.1f m/s\n", speed)
			if minutes, ok := stats.CargoRoundTrip(ship.CargoMax, speed); ok {
				fmt.Printf("Cargo round trip: %.1f min (cargo %d)\n", minutes, ship.CargoMax)
			} else {
				fmt.Println("Cargo round trip: not applicable")
			}
			return nil
		},
	}
}

// buildStore assembles the load pipeline from configuration plus any
// data directories given on the command line.
func buildStore(cmd *cobra.Command, dirs []string) (*catalog.Store, error) {
	cfg := config.Load()
	if len(dirs) == 0 {
		dirs = cfg.DataDirs
	}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			log.Warn().Str("dir", dir).Msg("Data directory not accessible")
		}
	}

	detector := newDetector(cmd, cfg)
	lc := locale.NewContext(detector, dirs)
	locator := macro.NewLocator(dirs...)
	loader := catalog.NewLoader(locator, lc)
	return catalog.NewStore(loader), nil
}

func newDetector(cmd *cobra.Command, cfg *config.Config) *locale.Detector {
	detector := locale.NewDetector(cfg.GameConfigPath, cfg.StoreLanguage)

	override := cfg.LanguageOverride
	if flagID, err := cmd.Flags().GetInt("language"); err == nil && flagID != 0 {
		override = flagID
	}
	if override != 0 {
		if err := detector.SetOverride(override); err != nil {
			log.Warn().Err(err).Msg("Ignoring invalid language override")
		}
	}
	return detector
}

func printSummary(store *catalog.Store, c *catalog.Catalog) {
	if c.Empty() {
		fmt.Println("No game data found. Check the data directory layout.")
		return
	}
	fmt.Printf("Language: %s\n", store.LanguageName())
	fmt.Printf("Ships:    %d\n", len(c.Ships()))
	fmt.Printf("Engines:  %d\n", len(c.Engines()))
	fmt.Printf("Shields:  %d\n", len(c.Shields()))
	fmt.Printf("Weapons:  %d\n", len(c.Weapons()))
	fmt.Printf("Turrets:  %d\n", len(c.Turrets()))
}
