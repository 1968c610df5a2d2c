package extract

import (
	"github.com/beevik/etree"

	"x4stats/internal/locale"
)

// TurretFromDocument extracts one turret record from a parsed macro
// file. Returns false when the document declares no turret macro.
func TurretFromDocument(doc *etree.Document, lc *locale.Context) (*Turret, bool) {
	macroEl := findMacro(doc, "turret")
	if macroEl == nil {
		return nil, false
	}

	id := attr(macroEl, "name")
	props := macroEl.FindElement("properties")
	if props == nil {
		return nil, false
	}

	turret := &Turret{
		ID:          id,
		DisplayName: id,
		Type:        ClassifyTurretType(id),
		Faction:     ClassifyFaction(id),
		SizeClass:   ClassifySize(id),
		MkLevel:     1,
	}

	if ident := props.FindElement("identification"); ident != nil {
		turret.MkLevel = parseMkLevel(attr(ident, "mk"))
		turret.DisplayName = resolveSimpleName(lc, attr(ident, "name"), id)
		// An explicit maker race beats name-token inference.
		if makerRace := attr(ident, "makerrace"); makerRace != "" {
			turret.Faction = makerRace
		}
	}

	turret.BulletClass = attr(props.FindElement("bullet"), "class")
	turret.RotationMax = attrFloat(props.FindElement("rotationspeed"), "max")
	turret.RotationAccel = attrFloat(props.FindElement("rotationacceleration"), "max")
	if reload := props.FindElement("reload"); reload != nil {
		turret.ReloadRate = attrFloat(reload, "rate")
		turret.ReloadTime = attrFloat(reload, "time")
	}
	if hull := props.FindElement("hull"); hull != nil {
		turret.HullThreshold = attrFloat(hull, "threshold")
		turret.HullIntegrated = attr(hull, "integrated") == "1"
	}

	return turret, true
}
