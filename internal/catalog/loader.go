package catalog

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"x4stats/internal/extract"
	"x4stats/internal/locale"
	"x4stats/internal/macro"
)

// On-disk category layout, inherited from the game's asset structure.
const (
	unitDirPattern    = "assets/units/size_*"
	excludedSizeDir   = "size_xs"
	shipFilePattern   = "macros/ship_*.xml"
	engineFilePattern = "assets/props/Engines/macros/*.xml"
	shieldFilePattern = "assets/props/SurfaceElements/macros/shield_*.xml"
	weaponSystemsDir  = "assets/props/WeaponSystems"
	macroFileSuffix   = "_macro.xml"
)

// Loader runs the full ingestion pipeline: localization, then one pass
// per entity kind. The load is sequential and deterministic; loading the
// same tree twice produces identical tables.
type Loader struct {
	locator *macro.Locator
	locale  *locale.Context
}

func NewLoader(locator *macro.Locator, lc *locale.Context) *Loader {
	return &Loader{locator: locator, locale: lc}
}

// Load builds a complete catalog. Per-file failures are logged and
// skipped; a tree with no matching files yields empty tables, never an
// error (the caller decides how to present "no data").
func (l *Loader) Load() *Catalog {
	l.locale.Load()

	c := &Catalog{}
	c.engines = l.loadEngines()
	c.ships = l.loadShips()
	c.shields = l.loadShields()
	c.weapons, c.turrets = l.loadWeaponSystems()
	c.index()

	log.Info().
		Int("ships", len(c.ships)).
		Int("engines", len(c.engines)).
		Int("shields", len(c.shields)).
		Int("weapons", len(c.weapons)).
		Int("turrets", len(c.turrets)).
		Msg("Catalog load complete")
	return c
}

func (l *Loader) loadShips() []extract.Ship {
	var ships []extract.Ship
	for _, sizeDir := range l.locator.FindDirs(unitDirPattern) {
		sizeFolder := filepath.Base(sizeDir)
		// Extra small units are drones, pods and utility vessels.
		if sizeFolder == excludedSizeDir {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(sizeDir, shipFilePattern))
		if err != nil {
			continue
		}
		for _, path := range matches {
			doc, err := macro.LoadDocument(path)
			if err != nil {
				log.Warn().Err(err).Str("file", path).Msg("Failed to parse ship macro")
				continue
			}
			if ship, ok := extract.ShipFromDocument(doc, path, sizeFolder, l.locator, l.locale); ok {
				ships = append(ships, *ship)
			}
		}
	}
	log.Info().Int("count", len(ships)).Msg("Loaded ships")
	return ships
}

func (l *Loader) loadEngines() []extract.Engine {
	var engines []extract.Engine
	for _, path := range l.locator.FindFiles(engineFilePattern) {
		doc, err := macro.LoadDocument(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Failed to parse engine macro")
			continue
		}
		if engine, ok := extract.EngineFromDocument(doc, l.locale); ok {
			engines = append(engines, *engine)
		}
	}
	log.Info().Int("count", len(engines)).Msg("Loaded engines")
	return engines
}

func (l *Loader) loadShields() []extract.Shield {
	var shields []extract.Shield
	for _, path := range l.locator.FindFiles(shieldFilePattern) {
		doc, err := macro.LoadDocument(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Failed to parse shield macro")
			continue
		}
		if shield, ok := extract.ShieldFromDocument(doc, l.locale); ok {
			shields = append(shields, *shield)
		}
	}
	log.Info().Int("count", len(shields)).Msg("Loaded shields")
	return shields
}

func (l *Loader) loadWeaponSystems() ([]extract.Weapon, []extract.Turret) {
	var weapons []extract.Weapon
	var turrets []extract.Turret
	for _, path := range l.locator.FindFilesRecursive(weaponSystemsDir, macroFileSuffix) {
		base := filepath.Base(path)
		doc, err := macro.LoadDocument(path)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Failed to parse weapon system macro")
			continue
		}
		switch {
		case strings.HasPrefix(base, "weapon_"):
			if weapon, ok := extract.WeaponFromDocument(doc, l.locale); ok {
				weapons = append(weapons, *weapon)
			}
		case strings.HasPrefix(base, "turret_"):
			if turret, ok := extract.TurretFromDocument(doc, l.locale); ok {
				turrets = append(turrets, *turret)
			}
		}
	}
	log.Info().Int("weapons", len(weapons)).Int("turrets", len(turrets)).Msg("Loaded weapon systems")
	return weapons, turrets
}
