package extract

import (
	"strings"

	"github.com/beevik/etree"

	"x4stats/internal/locale"
)

// shieldSizeTokens map macro name tokens to shield size classes.
var shieldSizeTokens = []keywordRule{
	{"_xl_", "xl"},
	{"_s_", "s"},
	{"_m_", "m"},
	{"_l_", "l"},
}

// ShieldFromDocument extracts one shield generator record from a parsed
// macro file. Returns false when the document declares no shield macro.
func ShieldFromDocument(doc *etree.Document, lc *locale.Context) (*Shield, bool) {
	macroEl := findMacro(doc, "shieldgenerator")
	if macroEl == nil {
		return nil, false
	}

	name := attr(macroEl, "name")
	shield := &Shield{
		Name:        name,
		DisplayName: name,
		SizeClass:   shieldSizeFromName(name),
	}

	props := macroEl.FindElement("properties")
	if props == nil {
		return shield, true
	}

	ident := props.FindElement("identification")
	shield.MakerRace = attr(ident, "makerrace")
	shield.Mk = attr(ident, "mk")

	if recharge := props.FindElement("recharge"); recharge != nil {
		shield.RechargeMax = attrFloat(recharge, "max")
		shield.RechargeRate = attrFloat(recharge, "rate")
		shield.RechargeDelay = attrFloat(recharge, "delay")
	}
	if hull := props.FindElement("hull"); hull != nil {
		shield.HullMax = attrFloat(hull, "max")
		shield.HullThreshold = attrFloat(hull, "threshold")
	}

	if ident != nil {
		shield.DisplayName = resolveComponentName(lc, ident, name)
	}
	return shield, true
}

// shieldSizeFromName derives the size class purely from the macro name.
func shieldSizeFromName(name string) string {
	lower := strings.ToLower(name)
	for _, r := range shieldSizeTokens {
		if strings.Contains(lower, r.keyword) {
			return r.category
		}
	}
	return ""
}
