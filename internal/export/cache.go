package export

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"x4stats/internal/catalog"
)

// Cache is the sqlite database holding a snapshot of the last export,
// one table per entity kind. It is rebuilt wholesale on every export.
type Cache struct {
	db   *sql.DB
	path string
}

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	return &Cache{db: db, path: path}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

var cacheSchema = []string{
	`CREATE TABLE ships (
		macro_name TEXT PRIMARY KEY,
		alias TEXT,
		class TEXT,
		maker_race TEXT,
		display_name TEXT,
		hull_max REAL,
		storage_cargo_max INTEGER,
		storage_cargo_type TEXT,
		purpose_primary TEXT,
		ship_type TEXT,
		mass REAL,
		drag_forward REAL,
		drag_reverse REAL,
		drag_horizontal REAL,
		drag_vertical REAL,
		engine_connections INTEGER,
		shield_connections INTEGER,
		shield_size_class TEXT,
		component_ref TEXT,
		file TEXT
	)`,
	`CREATE TABLE engines (
		name TEXT PRIMARY KEY,
		display_name TEXT,
		maker_race TEXT,
		mk TEXT,
		travel_thrust REAL,
		boost_thrust REAL,
		forward_thrust REAL,
		reverse_thrust REAL
	)`,
	`CREATE TABLE shields (
		name TEXT PRIMARY KEY,
		display_name TEXT,
		maker_race TEXT,
		mk TEXT,
		shield_size TEXT,
		recharge_max REAL,
		recharge_rate REAL,
		recharge_delay REAL,
		hull_max REAL,
		hull_threshold REAL
	)`,
	`CREATE TABLE weapons (
		weapon_id TEXT PRIMARY KEY,
		display_name TEXT,
		weapon_type TEXT,
		faction TEXT,
		size_class TEXT,
		mk_level INTEGER,
		bullet_class TEXT,
		overheat_threshold REAL,
		cooling_delay REAL,
		cooling_rate REAL,
		max_rotation_speed REAL,
		hull_points REAL
	)`,
	`CREATE TABLE turrets (
		turret_id TEXT PRIMARY KEY,
		display_name TEXT,
		turret_type TEXT,
		faction TEXT,
		size_class TEXT,
		mk_level INTEGER,
		bullet_class TEXT,
		max_rotation_speed REAL,
		max_rotation_acceleration REAL,
		reload_rate REAL,
		reload_time REAL,
		hull_threshold REAL,
		hull_integrated INTEGER
	)`,
}

// Rebuild replaces the cached tables with the given catalog, inside one
// transaction so readers of the file never see a partial snapshot.
func (c *Cache) Rebuild(cat *catalog.Catalog) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache rebuild: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"ships", "engines", "shields", "weapons", "turrets"} {
		if _, err := tx.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	for _, stmt := range cacheSchema {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("create cache schema: %w", err)
		}
	}

	if err := c.insertShips(tx, cat); err != nil {
		return err
	}
	if err := c.insertEngines(tx, cat); err != nil {
		return err
	}
	if err := c.insertShields(tx, cat); err != nil {
		return err
	}
	if err := c.insertWeapons(tx, cat); err != nil {
		return err
	}
	if err := c.insertTurrets(tx, cat); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache rebuild: %w", err)
	}
	log.Info().Str("path", c.path).Msg("Cache rebuild complete")
	return nil
}

func (c *Cache) insertShips(tx *sql.Tx, cat *catalog.Catalog) error {
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO ships VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare ship insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range cat.Ships() {
		_, err := stmt.Exec(s.MacroName, s.Alias, s.Class, s.MakerRace, s.DisplayName,
			s.HullMax, s.CargoMax, s.CargoTags, s.PurposePrimary, s.ShipType, s.Mass,
			s.DragForward, s.DragReverse, s.DragHorizontal, s.DragVertical,
			s.EngineConnections, s.ShieldConnections, s.ShieldSizeClass,
			s.ComponentRef, s.SourceFile)
		if err != nil {
			return fmt.Errorf("insert ship %s: %w", s.MacroName, err)
		}
	}
	return nil
}

func (c *Cache) insertEngines(tx *sql.Tx, cat *catalog.Catalog) error {
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO engines VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare engine insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range cat.Engines() {
		_, err := stmt.Exec(e.Name, e.DisplayName, e.MakerRace, e.Mk,
			e.TravelThrust, e.BoostThrust, e.ForwardThrust, e.ReverseThrust)
		if err != nil {
			return fmt.Errorf("insert engine %s: %w", e.Name, err)
		}
	}
	return nil
}

func (c *Cache) insertShields(tx *sql.Tx, cat *catalog.Catalog) error {
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO shields VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare shield insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range cat.Shields() {
		_, err := stmt.Exec(s.Name, s.DisplayName, s.MakerRace, s.Mk, s.SizeClass,
			s.RechargeMax, s.RechargeRate, s.RechargeDelay, s.HullMax, s.HullThreshold)
		if err != nil {
			return fmt.Errorf("insert shield %s: %w", s.Name, err)
		}
	}
	return nil
}

func (c *Cache) insertWeapons(tx *sql.Tx, cat *catalog.Catalog) error {
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO weapons VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare weapon insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range cat.Weapons() {
		_, err := stmt.Exec(w.ID, w.DisplayName, w.Type, w.Faction, w.SizeClass,
			w.MkLevel, w.BulletClass, w.Overheat, w.CoolDelay, w.CoolRate,
			w.RotationMax, w.HullMax)
		if err != nil {
			return fmt.Errorf("insert weapon %s: %w", w.ID, err)
		}
	}
	return nil
}

func (c *Cache) insertTurrets(tx *sql.Tx, cat *catalog.Catalog) error {
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO turrets VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare turret insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range cat.Turrets() {
		integrated := 0
		if t.HullIntegrated {
			integrated = 1
		}
		_, err := stmt.Exec(t.ID, t.DisplayName, t.Type, t.Faction, t.SizeClass,
			t.MkLevel, t.BulletClass, t.RotationMax, t.RotationAccel,
			t.ReloadRate, t.ReloadTime, t.HullThreshold, integrated)
		if err != nil {
			return fmt.Errorf("insert turret %s: %w", t.ID, err)
		}
	}
	return nil
}
