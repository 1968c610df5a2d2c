// Package catalog assembles extracted records into the in-memory tables
// consumed by the GUI and export layers.
package catalog

import "x4stats/internal/extract"

// Catalog holds one complete load: ordered per-kind tables plus lookup
// indexes. Records are never mutated after assembly, so concurrent reads
// by multiple consumers are safe.
type Catalog struct {
	ships   []extract.Ship
	engines []extract.Engine
	shields []extract.Shield
	weapons []extract.Weapon
	turrets []extract.Turret

	shipsByMacro  map[string]*extract.Ship
	enginesByName map[string]*extract.Engine
}

// Ships returns all ship records in load order.
func (c *Catalog) Ships() []extract.Ship { return c.ships }

// Engines returns all engine records in load order.
func (c *Catalog) Engines() []extract.Engine { return c.engines }

// Shields returns all shield records in load order.
func (c *Catalog) Shields() []extract.Shield { return c.shields }

// Weapons returns all weapon records in load order.
func (c *Catalog) Weapons() []extract.Weapon { return c.weapons }

// Turrets returns all turret records in load order.
func (c *Catalog) Turrets() []extract.Turret { return c.turrets }

// ShipByMacro looks up a ship by its macro name.
func (c *Catalog) ShipByMacro(name string) (*extract.Ship, bool) {
	s, ok := c.shipsByMacro[name]
	return s, ok
}

// EngineByName looks up an engine by its macro name.
func (c *Catalog) EngineByName(name string) (*extract.Engine, bool) {
	e, ok := c.enginesByName[name]
	return e, ok
}

// Empty reports whether the load found no records of any kind.
func (c *Catalog) Empty() bool {
	return len(c.ships) == 0 && len(c.engines) == 0 && len(c.shields) == 0 &&
		len(c.weapons) == 0 && len(c.turrets) == 0
}

// index builds the lookup maps and performs the best-effort ship/engine
// merge. Called once by the loader after every table is final, so the
// stored pointers stay valid.
func (c *Catalog) index() {
	c.enginesByName = make(map[string]*extract.Engine, len(c.engines))
	for i := range c.engines {
		c.enginesByName[c.engines[i].Name] = &c.engines[i]
	}

	c.shipsByMacro = make(map[string]*extract.Ship, len(c.ships))
	for i := range c.ships {
		ship := &c.ships[i]
		// Direct merge when the component reference literally names an
		// engine; pairing is otherwise formed at query time.
		if engine, ok := c.enginesByName[ship.ComponentRef]; ok {
			ship.Engine = engine
		}
		c.shipsByMacro[ship.MacroName] = ship
	}
}
