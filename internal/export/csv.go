// Package export serializes catalog tables to parallel output formats:
// CSV snapshots and a local sqlite cache database.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"x4stats/internal/catalog"
	"x4stats/internal/extract"
)

// WriteCSV writes one CSV file per table into dir, creating it if
// needed. Weapon and turret tables are sorted by faction, size, type and
// mk so successive exports diff cleanly.
func WriteCSV(c *catalog.Catalog, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	weapons := sortedWeapons(c.Weapons())
	turrets := sortedTurrets(c.Turrets())

	files := []struct {
		name string
		rows any
	}{
		{"ships.csv", c.Ships()},
		{"engines.csv", c.Engines()},
		{"shields.csv", c.Shields()},
		{"weapons.csv", weapons},
		{"turrets.csv", turrets},
	}

	for _, f := range files {
		if err := writeCSVFile(filepath.Join(dir, f.name), f.rows); err != nil {
			return err
		}
	}
	log.Info().Str("dir", dir).Msg("CSV export complete")
	return nil
}

func writeCSVFile(path string, rows any) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func sortedWeapons(in []extract.Weapon) []extract.Weapon {
	weapons := append([]extract.Weapon{}, in...)
	sort.SliceStable(weapons, func(i, j int) bool {
		a, b := weapons[i], weapons[j]
		if a.Faction != b.Faction {
			return a.Faction < b.Faction
		}
		if a.SizeClass != b.SizeClass {
			return a.SizeClass < b.SizeClass
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.MkLevel < b.MkLevel
	})
	return weapons
}

func sortedTurrets(in []extract.Turret) []extract.Turret {
	turrets := append([]extract.Turret{}, in...)
	sort.SliceStable(turrets, func(i, j int) bool {
		a, b := turrets[i], turrets[j]
		if a.Faction != b.Faction {
			return a.Faction < b.Faction
		}
		if a.SizeClass != b.SizeClass {
			return a.SizeClass < b.SizeClass
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.MkLevel < b.MkLevel
	})
	return turrets
}
