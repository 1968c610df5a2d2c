package extract

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"x4stats/internal/locale"
)

func attr(el *etree.Element, name string) string {
	if el == nil {
		return ""
	}
	return el.SelectAttrValue(name, "")
}

func attrFloat(el *etree.Element, name string) float64 {
	v, err := strconv.ParseFloat(attr(el, name), 64)
	if err != nil {
		return 0
	}
	return v
}

func attrInt(el *etree.Element, name string) int {
	v, err := strconv.Atoi(attr(el, name))
	if err != nil {
		return 0
	}
	return v
}

// findMacro returns the document's first macro element of the given
// class, or nil.
func findMacro(doc *etree.Document, class string) *etree.Element {
	return doc.FindElement("//macro[@class='" + class + "']")
}

// resolveSimpleName resolves a plain name reference, re-parsing complex
// inline references, and falls back to the macro name when resolution
// fails outright.
func resolveSimpleName(lc *locale.Context, nameRef, fallback string) string {
	if nameRef == "" {
		return fallback
	}
	resolved := lc.Resolve(nameRef)
	if locale.IsComplexReference(resolved) {
		if parsed, ok := lc.ParseComplexReference(resolved); ok {
			return parsed
		}
	}
	if resolved == "" || strings.HasPrefix(resolved, "{") {
		return fallback
	}
	return resolved
}

// resolveComponentName applies the engine/shield naming policy: prefer
// the basename reference with a " MkN" suffix, else the plain name
// reference, else the macro name.
func resolveComponentName(lc *locale.Context, ident *etree.Element, macroName string) string {
	basenameRef := attr(ident, "basename")
	if basenameRef != "" {
		base := lc.Resolve(basenameRef)
		if locale.IsComplexReference(base) {
			if parsed, ok := lc.ParseComplexReference(base); ok {
				base = parsed
			}
		}
		if mk := attr(ident, "mk"); mk != "" {
			return base + " Mk" + mk
		}
		return base
	}
	return resolveSimpleName(lc, attr(ident, "name"), macroName)
}
