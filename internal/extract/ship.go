package extract

import (
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"x4stats/internal/locale"
	"x4stats/internal/macro"
)

// Auxiliary unit tags excluded from ship listings: the raw data mixes
// drones, laser towers and transport drones in with player ships.
const (
	shipTypeSmallDrone   = "smalldrone"
	shipTypeLaserTower   = "lasertower"
	transportDroneMarker = "transdrone"
)

// ShipFromDocument extracts one ship record from a parsed macro file.
// sizeFolder is the size-class directory the file was found under
// (e.g. "size_m"). Returns false when the document is not a ship macro
// or the entity is excluded.
func ShipFromDocument(doc *etree.Document, path, sizeFolder string, loc *macro.Locator, lc *locale.Context) (*Ship, bool) {
	macroEl := doc.FindElement("//macro")
	if macroEl == nil {
		return nil, false
	}

	macroName := attr(macroEl, "name")
	alias := attr(macroEl, "alias")
	if strings.HasSuffix(alias, "_macro") {
		macroName = alias
	}

	props := macroEl.FindElement("properties")
	if props == nil {
		log.Warn().Str("file", filepath.Base(path)).Msg("Ship macro has no properties element")
		return nil, false
	}

	shipType := attr(props.FindElement("ship"), "type")
	if shipType == shipTypeSmallDrone || shipType == shipTypeLaserTower {
		return nil, false
	}
	if strings.Contains(filepath.Base(path), transportDroneMarker) {
		return nil, false
	}

	ship := &Ship{
		MacroName:  macroName,
		Alias:      alias,
		Class:      attr(macroEl, "class"),
		ShipType:   shipType,
		SourceFile: path,
	}
	if ship.Class == "" {
		ship.Class = "unknown"
	}

	ident := props.FindElement("identification")
	ship.MakerRace = attr(ident, "makerrace")

	ship.HullMax = attrFloat(props.FindElement("hull"), "max")
	ship.PurposePrimary = attr(props.FindElement("purpose"), "primary")

	if physics := props.FindElement("physics"); physics != nil {
		ship.Mass = attrFloat(physics, "mass")
		if drag := physics.FindElement("drag"); drag != nil {
			ship.DragForward = attrFloat(drag, "forward")
			ship.DragReverse = attrFloat(drag, "reverse")
			ship.DragHorizontal = attrFloat(drag, "horizontal")
			ship.DragVertical = attrFloat(drag, "vertical")
		}
	}

	ship.ComponentRef = attr(macroEl.FindElement("component"), "ref")
	countHardpoints(ship, path, sizeFolder, loc)

	ship.CargoMax, ship.CargoTags = resolveStorage(macroEl, path, loc)

	ship.DisplayName = resolveShipName(lc, ident, macroName)

	return ship, true
}

// countHardpoints fills the engine and shield connection counts from the
// component file referenced by the macro. The component file sits in the
// grandparent directory, sibling of the macro's own subfolder. Absence of
// discoverable hardpoint data defaults engines to 1 and shields to 0.
func countHardpoints(ship *Ship, path, sizeFolder string, loc *macro.Locator) {
	ship.EngineConnections = 1
	ship.ShieldConnections = 0

	if ship.ComponentRef == "" {
		return
	}
	componentFile := filepath.Join(filepath.Dir(filepath.Dir(path)), ship.ComponentRef+".xml")
	doc, err := macro.LoadDocument(componentFile)
	if err != nil {
		log.Warn().Err(err).Str("file", componentFile).Msg("Failed to parse component file")
		return
	}

	engines := 0
	shields := 0
	var firstShieldTags string
	for _, conn := range doc.FindElements("//connection") {
		tags := attr(conn, "tags")
		if tags == "" {
			continue
		}
		if strings.Contains(tags, "engine") {
			engines++
		}
		if strings.Contains(tags, "shield") {
			if shields == 0 {
				firstShieldTags = tags
			}
			shields++
		}
	}
	if engines > 0 {
		ship.EngineConnections = engines
	}
	ship.ShieldConnections = shields

	if shields > 0 {
		ship.ShieldSizeClass = shieldSizeFromTags(firstShieldTags)
		if ship.ShieldSizeClass == "" {
			ship.ShieldSizeClass = strings.TrimPrefix(sizeFolder, "size_")
		}
	}
}

// shieldSizeFromTags scans a connection tag list for a size keyword.
// extralarge must be tested before large.
func shieldSizeFromTags(tags string) string {
	switch {
	case strings.Contains(tags, "extralarge"):
		return "xl"
	case strings.Contains(tags, "large"):
		return "l"
	case strings.Contains(tags, "medium"):
		return "m"
	case strings.Contains(tags, "small"):
		return "s"
	}
	return ""
}

// resolveStorage reads cargo capacity from the storage macro referenced
// in the ship's connection list, falling back to the ship_ -> storage_
// filename convention when no connection yields a usable value.
func resolveStorage(macroEl *etree.Element, path string, loc *macro.Locator) (int, string) {
	if conns := macroEl.FindElement("connections"); conns != nil {
		for _, conn := range conns.SelectElements("connection") {
			ref := attr(conn.SelectElement("macro"), "ref")
			if ref == "" || !strings.Contains(strings.ToLower(ref), "storage") {
				continue
			}
			if max, tags, ok := parseStorageMacro(path, ref, loc); ok && max > 0 {
				return max, tags
			}
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".xml")
	if strings.HasPrefix(stem, "ship_") {
		storageName := "storage_" + strings.TrimPrefix(stem, "ship_")
		if max, tags, ok := parseStorageMacro(path, storageName, loc); ok {
			return max, tags
		}
	}
	return 0, ""
}

func parseStorageMacro(anchor, refName string, loc *macro.Locator) (int, string, bool) {
	storageFile, ok := loc.FindAuxiliary(anchor, refName)
	if !ok {
		return 0, "", false
	}
	doc, err := macro.LoadDocument(storageFile)
	if err != nil {
		log.Warn().Err(err).Str("file", storageFile).Msg("Failed to parse storage file")
		return 0, "", false
	}
	cargo := doc.FindElement("//cargo")
	if cargo == nil {
		return 0, "", false
	}
	return attrInt(cargo, "max"), attr(cargo, "tags"), true
}

// resolveShipName applies the ship naming policy: composite construction
// when both basename and variation references exist, else the plain name
// reference with complex re-parsing, else the macro name.
func resolveShipName(lc *locale.Context, ident *etree.Element, macroName string) string {
	basenameRef := attr(ident, "basename")
	variationRef := attr(ident, "variation")
	if basenameRef != "" && variationRef != "" {
		name := lc.ConstructName(basenameRef, variationRef)
		if name != "" && !strings.HasPrefix(name, "{") {
			return name
		}
		return macroName
	}
	return resolveSimpleName(lc, attr(ident, "name"), macroName)
}
