package extract

import (
	"strconv"
	"strings"
)

// keywordRule maps a name substring to a category. Rules are evaluated in
// order; the first match wins.
type keywordRule struct {
	keyword  string
	category string
}

var weaponTypeRules = []keywordRule{
	{"beam", "beam"},
	{"laser", "beam"},
	{"plasma", "plasma"},
	{"particle", "particle"},
	{"ion", "particle"},
	{"pulse", "pulse"},
	{"burst", "pulse"},
	{"mining", "mining"},
	{"gatling", "gatling"},
	{"missile", "missile"},
	{"torpedo", "torpedo"},
	{"railgun", "railgun"},
	{"cannon", "cannon"},
	{"shotgun", "shotgun"},
}

// flak is a turret-only category; weapon ids never carry it.
var turretTypeRules = append(append([]keywordRule{}, weaponTypeRules...),
	keywordRule{"flak", "flak"},
	keywordRule{"arc", "arc"},
	keywordRule{"disruptor", "disruptor"},
	keywordRule{"pointdefense", "point_defense"},
	keywordRule{"destroyer", "destroyer"},
)

// factionRules match the _xxx_ race prefix embedded in macro identifiers.
var factionRules = []keywordRule{
	{"_arg_", "argon"},
	{"_par_", "paranid"},
	{"_tel_", "teladi"},
	{"_spl_", "split"},
	{"_ter_", "terran"},
	{"_kha_", "khaak"},
	{"_xen_", "xenon"},
	{"_bor_", "boron"},
	{"_gen_", "generic"},
	{"_yak_", "yakuza"},
	{"_pio_", "pioneer"},
}

var sizeRules = []keywordRule{
	{"_xs_", "extra_small"},
	{"_xl_", "extra_large"},
	{"_s_", "small"},
	{"_m_", "medium"},
	{"_l_", "large"},
}

// classify returns the category of the first rule whose keyword occurs in
// the identifier, or "unknown".
func classify(id string, rules []keywordRule) string {
	lower := strings.ToLower(id)
	for _, r := range rules {
		if strings.Contains(lower, r.keyword) {
			return r.category
		}
	}
	return "unknown"
}

// ClassifyWeaponType categorizes a weapon by its macro identifier.
func ClassifyWeaponType(id string) string { return classify(id, weaponTypeRules) }

// ClassifyTurretType categorizes a turret by its macro identifier.
func ClassifyTurretType(id string) string { return classify(id, turretTypeRules) }

// ClassifyFaction infers the owning faction from the identifier's race
// prefix token.
func ClassifyFaction(id string) string { return classify(id, factionRules) }

// ClassifySize infers the size class from the identifier's size token.
func ClassifySize(id string) string { return classify(id, sizeRules) }

// parseMkLevel reads an mk attribute value, defaulting to 1 when absent
// or unparsable.
func parseMkLevel(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
