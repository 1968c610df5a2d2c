package extract

import (
	"github.com/beevik/etree"

	"x4stats/internal/locale"
)

// EngineFromDocument extracts one engine record from a parsed macro
// file. Returns false when the document declares no engine macro.
func EngineFromDocument(doc *etree.Document, lc *locale.Context) (*Engine, bool) {
	macroEl := findMacro(doc, "engine")
	if macroEl == nil {
		return nil, false
	}

	name := attr(macroEl, "name")
	if name == "" {
		name = "unknown_engine"
	}
	engine := &Engine{
		Name:        name,
		DisplayName: name,
	}

	props := macroEl.FindElement("properties")
	if props == nil {
		return engine, true
	}

	ident := props.FindElement("identification")
	engine.MakerRace = attr(ident, "makerrace")
	engine.Mk = attr(ident, "mk")

	// The three thrust sources live in separate elements; each defaults
	// to 0 when absent.
	engine.TravelThrust = attrFloat(props.FindElement("travel"), "thrust")
	engine.BoostThrust = attrFloat(props.FindElement("boost"), "thrust")
	if thrust := props.FindElement("thrust"); thrust != nil {
		engine.ForwardThrust = attrFloat(thrust, "forward")
		engine.ReverseThrust = attrFloat(thrust, "reverse")
	}

	if ident != nil {
		engine.DisplayName = resolveComponentName(lc, ident, name)
	}
	return engine, true
}
