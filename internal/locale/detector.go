package locale

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"
)

// Detector selects the active language id. Priority order: user override,
// game configuration file, platform store preference, OS locale, and
// finally DefaultLanguage.
type Detector struct {
	gameConfigPath string
	storeLanguage  string

	override int // 0 = unset
	cached   int // 0 = not yet detected
}

// NewDetector creates a Detector. gameConfigPath may be empty when the
// game's config.xml is unknown; storeLanguage may be empty when no store
// preference is configured.
func NewDetector(gameConfigPath, storeLanguage string) *Detector {
	return &Detector{
		gameConfigPath: gameConfigPath,
		storeLanguage:  storeLanguage,
	}
}

// LanguageID returns the selected language id, caching the result until
// the override changes.
func (d *Detector) LanguageID() int {
	if d.cached != 0 {
		return d.cached
	}

	if d.override != 0 {
		log.Info().Int("id", d.override).Str("language", LanguageName(d.override)).Msg("Using language override")
		d.cached = d.override
		return d.cached
	}

	if id, ok := d.detectGameConfig(); ok {
		log.Info().Int("id", id).Str("language", LanguageName(id)).Msg("Using game configuration language")
		d.cached = id
		return d.cached
	}

	if id, ok := d.detectStore(); ok {
		log.Info().Int("id", id).Str("language", LanguageName(id)).Msg("Using store language preference")
		d.cached = id
		return d.cached
	}

	id := detectSystem()
	log.Info().Int("id", id).Str("language", LanguageName(id)).Msg("Using system language")
	d.cached = id
	return d.cached
}

// SetOverride pins the language id and invalidates the cached detection.
func (d *Detector) SetOverride(id int) error {
	if _, ok := Languages[id]; !ok {
		return fmt.Errorf("invalid language id: %d", id)
	}
	d.override = id
	d.cached = 0
	return nil
}

// ClearOverride removes the override and forces re-detection.
func (d *Detector) ClearOverride() {
	d.override = 0
	d.cached = 0
}

// detectGameConfig reads the <language> element from the game's config.xml.
func (d *Detector) detectGameConfig() (int, bool) {
	if d.gameConfigPath == "" {
		return 0, false
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(d.gameConfigPath); err != nil {
		return 0, false
	}
	el := doc.FindElement("//language")
	if el == nil {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(el.Text()))
	if err != nil {
		return 0, false
	}
	if _, ok := Languages[id]; !ok {
		return 0, false
	}
	return id, true
}

// detectStore maps the configured store language name to a language id.
func (d *Detector) detectStore() (int, bool) {
	if d.storeLanguage == "" {
		return 0, false
	}
	id, ok := storeToLanguage[strings.ToLower(d.storeLanguage)]
	return id, ok
}

// detectSystem maps the OS locale environment to a language id.
func detectSystem() int {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		// Strip encoding/modifier suffixes, e.g. "de_DE.UTF-8".
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if id, ok := localeToLanguage[v]; ok {
			return id
		}
		if i := strings.Index(v, "_"); i > 0 {
			if id, ok := localeToLanguage[v[:i]]; ok {
				return id
			}
		}
	}
	return DefaultLanguage
}
