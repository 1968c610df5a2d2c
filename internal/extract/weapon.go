package extract

import (
	"github.com/beevik/etree"

	"x4stats/internal/locale"
)

// WeaponFromDocument extracts one fixed-weapon record from a parsed
// macro file. Returns false when the document declares no weapon macro.
func WeaponFromDocument(doc *etree.Document, lc *locale.Context) (*Weapon, bool) {
	macroEl := findMacro(doc, "weapon")
	if macroEl == nil {
		return nil, false
	}

	id := attr(macroEl, "name")
	props := macroEl.FindElement("properties")
	if props == nil {
		return nil, false
	}

	weapon := &Weapon{
		ID:          id,
		DisplayName: id,
		Type:        ClassifyWeaponType(id),
		Faction:     ClassifyFaction(id),
		SizeClass:   ClassifySize(id),
		MkLevel:     1,
	}

	if ident := props.FindElement("identification"); ident != nil {
		weapon.MkLevel = parseMkLevel(attr(ident, "mk"))
		weapon.DisplayName = resolveSimpleName(lc, attr(ident, "name"), id)
	}

	weapon.BulletClass = attr(props.FindElement("bullet"), "class")
	if heat := props.FindElement("heat"); heat != nil {
		weapon.Overheat = attrFloat(heat, "overheat")
		weapon.CoolDelay = attrFloat(heat, "cooldelay")
		weapon.CoolRate = attrFloat(heat, "coolrate")
	}
	weapon.RotationMax = attrFloat(props.FindElement("rotationspeed"), "max")
	weapon.HullMax = attrFloat(props.FindElement("hull"), "max")

	return weapon, true
}
