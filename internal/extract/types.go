// Package extract turns parsed macro XML documents into flat typed
// records, one extractor per entity kind.
package extract

// Ship is one ship macro, immutable once extracted.
type Ship struct {
	// MacroName is the unique key within a load (the alias when one is
	// declared).
	MacroName string `csv:"macro_name"`
	Alias     string `csv:"alias"`
	Class     string `csv:"class"`
	MakerRace string `csv:"maker_race"`
	// DisplayName is the resolved name, falling back to MacroName.
	DisplayName string  `csv:"display_name"`
	HullMax     float64 `csv:"hull_max"`
	// CargoMax is 0 when the ship has no cargo hold.
	CargoMax       int    `csv:"storage_cargo_max"`
	CargoTags      string `csv:"storage_cargo_type"`
	PurposePrimary string `csv:"purpose_primary"`
	// ShipType is the fine-grained type tag; drones and laser towers are
	// excluded during extraction.
	ShipType       string  `csv:"ship_type"`
	Mass           float64 `csv:"mass"`
	DragForward    float64 `csv:"drag_forward"`
	DragReverse    float64 `csv:"drag_reverse"`
	DragHorizontal float64 `csv:"drag_horizontal"`
	DragVertical   float64 `csv:"drag_vertical"`
	// EngineConnections is the engine hardpoint count; never below 1 so
	// downstream division stays safe.
	EngineConnections int `csv:"engine_connections"`
	ShieldConnections int `csv:"shield_connections"`
	// ShieldSizeClass is one of s/m/l/xl, or empty when unknown.
	ShieldSizeClass string `csv:"shield_size_class"`
	ComponentRef    string `csv:"component_ref"`
	SourceFile      string `csv:"file"`

	// Engine is the best-effort direct merge when ComponentRef names a
	// known engine; pairing for stats otherwise happens at query time.
	Engine *Engine `csv:"-"`
}

// Engine is one engine macro.
type Engine struct {
	Name        string `csv:"name"`
	DisplayName string `csv:"display_name"`
	MakerRace   string `csv:"maker_race"`
	Mk          string `csv:"mk"`
	// Thrust values default to 0 when the element is absent.
	TravelThrust  float64 `csv:"travel_thrust"`
	BoostThrust   float64 `csv:"boost_thrust"`
	ForwardThrust float64 `csv:"forward_thrust"`
	ReverseThrust float64 `csv:"reverse_thrust"`
}

// Shield is one shield generator macro.
type Shield struct {
	Name        string `csv:"name"`
	DisplayName string `csv:"display_name"`
	MakerRace   string `csv:"maker_race"`
	Mk          string `csv:"mk"`
	// SizeClass is derived from the macro name tokens (_s_, _m_, _l_, _xl_).
	SizeClass     string  `csv:"shield_size"`
	RechargeMax   float64 `csv:"recharge_max"`
	RechargeRate  float64 `csv:"recharge_rate"`
	RechargeDelay float64 `csv:"recharge_delay"`
	HullMax       float64 `csv:"hull_max"`
	HullThreshold float64 `csv:"hull_threshold"`
}

// Weapon is one fixed weapon macro.
type Weapon struct {
	ID          string `csv:"weapon_id"`
	DisplayName string `csv:"display_name"`
	// Type is classified from name tokens (beam/plasma/pulse/...).
	Type        string  `csv:"weapon_type"`
	Faction     string  `csv:"faction"`
	SizeClass   string  `csv:"size_class"`
	MkLevel     int     `csv:"mk_level"`
	BulletClass string  `csv:"bullet_class"`
	Overheat    float64 `csv:"overheat_threshold"`
	CoolDelay   float64 `csv:"cooling_delay"`
	CoolRate    float64 `csv:"cooling_rate"`
	RotationMax float64 `csv:"max_rotation_speed"`
	HullMax     float64 `csv:"hull_points"`
}

// Turret is one turret macro.
type Turret struct {
	ID             string  `csv:"turret_id"`
	DisplayName    string  `csv:"display_name"`
	Type           string  `csv:"turret_type"`
	Faction        string  `csv:"faction"`
	SizeClass      string  `csv:"size_class"`
	MkLevel        int     `csv:"mk_level"`
	BulletClass    string  `csv:"bullet_class"`
	RotationMax    float64 `csv:"max_rotation_speed"`
	RotationAccel  float64 `csv:"max_rotation_acceleration"`
	ReloadRate     float64 `csv:"reload_rate"`
	ReloadTime     float64 `csv:"reload_time"`
	HullThreshold  float64 `csv:"hull_threshold"`
	HullIntegrated bool    `csv:"hull_integrated"`
}
