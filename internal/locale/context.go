package locale

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"
)

// escapeCleaner undoes the escaping the translation files apply to
// parentheses inside display strings.
var escapeCleaner = strings.NewReplacer(`\(`, "(", `\)`, ")")

// Context owns the text-mapping table for one active language. It is
// built once per load and rebuilt in full whenever the language changes;
// it is never patched incrementally.
type Context struct {
	detector *Detector
	roots    []string

	mappings     map[string]string
	languageName string
	loadedFile   string
	loaded       bool
}

// NewContext creates a Context reading translation files from the t/
// subdirectory of the given candidate roots.
func NewContext(detector *Detector, roots []string) *Context {
	return &Context{
		detector: detector,
		roots:    roots,
		mappings: make(map[string]string),
	}
}

// Detector exposes the language detector for override handling.
func (c *Context) Detector() *Detector { return c.detector }

// LanguageName reports the loaded language, "English (fallback)" when the
// preferred file was missing, or "" before any load.
func (c *Context) LanguageName() string { return c.languageName }

// MappingCount reports how many text entries are loaded.
func (c *Context) MappingCount() int { return len(c.mappings) }

// Invalidate drops the loaded table so the next Resolve rebuilds it.
func (c *Context) Invalidate() {
	c.mappings = make(map[string]string)
	c.languageName = ""
	c.loadedFile = ""
	c.loaded = false
}

// SetLanguage overrides the active language and invalidates the table.
func (c *Context) SetLanguage(id int) error {
	if err := c.detector.SetOverride(id); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Load builds the mapping table for the detected language. A missing
// preferred file falls back to the baseline language; when even that is
// missing the table stays empty and resolution degrades to raw tokens.
func (c *Context) Load() {
	c.loaded = true
	c.mappings = make(map[string]string)

	id := c.detector.LanguageID()
	fileName := FileName(id)
	langName := LanguageName(id)

	path, ok := c.findTranslationFile(fileName)
	if !ok {
		log.Warn().Str("file", fileName).Str("language", langName).Msg("Translation file not found, trying baseline")
		path, ok = c.findTranslationFile(FileName(DefaultLanguage))
		if !ok {
			log.Warn().Msg("No translation files found, text references stay unresolved")
			return
		}
		langName = "English (fallback)"
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Failed to parse translation file")
		return
	}
	root := doc.Root()
	if root == nil || root.Tag != "language" {
		log.Warn().Str("file", path).Msg("Invalid translation file format")
		return
	}

	for _, page := range root.FindElements("//page") {
		pageID := page.SelectAttrValue("id", "")
		if pageID == "" {
			continue
		}
		for _, entry := range page.SelectElements("t") {
			textID := entry.SelectAttrValue("id", "")
			if textID == "" {
				continue
			}
			key := "{" + pageID + "," + textID + "}"
			c.mappings[key] = escapeCleaner.Replace(strings.TrimSpace(entry.Text()))
		}
	}

	c.languageName = langName
	c.loadedFile = path
	log.Info().
		Int("entries", len(c.mappings)).
		Str("language", langName).
		Str("file", filepath.Base(path)).
		Msg("Loaded text mappings")
}

func (c *Context) findTranslationFile(fileName string) (string, bool) {
	for _, root := range c.roots {
		path := filepath.Join(root, "t", fileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Resolve maps a {page,id} token to its display string. Literal strings
// and unknown tokens come back unchanged; callers detect a failed lookup
// by the result still starting with "{".
func (c *Context) Resolve(ref string) string {
	if !c.loaded {
		c.Load()
	}
	if v, ok := c.mappings[ref]; ok {
		return v
	}
	return ref
}

// ConstructName builds a display name from a basename reference plus
// zero or more space-separated variation references. Variations that fail
// to resolve are skipped; an unresolved basename stays a raw token so the
// caller can fall back to the macro name.
func (c *Context) ConstructName(basenameRef, variationRefs string) string {
	if basenameRef == "" {
		return ""
	}
	name := c.Resolve(basenameRef)

	var variations []string
	for _, ref := range strings.Fields(variationRefs) {
		if !strings.HasPrefix(ref, "{") || !strings.HasSuffix(ref, "}") {
			continue
		}
		if v := c.Resolve(ref); !strings.HasPrefix(v, "{") {
			variations = append(variations, v)
		}
	}

	if len(variations) == 0 {
		return name
	}
	return name + " " + strings.Join(variations, " ")
}

var (
	complexPattern = regexp.MustCompile(`^\(([^)]+)\)(.+)$`)
	refPattern     = regexp.MustCompile(`\{[^}]+\}`)
)

// IsComplexReference reports whether a resolved string embeds a
// parenthesized fallback name followed by further reference tokens,
// e.g. "(Behemoth E){20101,11001} {20111,5462}".
func IsComplexReference(s string) bool {
	return strings.HasPrefix(s, "(") && strings.Contains(s, "{")
}

// ParseComplexReference resolves the trailing tokens of a complex
// reference and joins the parenthesized fallback literal with whatever
// resolved; when every token fails, the literal stands alone. Returns
// false when the string is not a complex reference.
func (c *Context) ParseComplexReference(s string) (string, bool) {
	m := complexPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	literal := m[1]

	var resolved []string
	for _, ref := range refPattern.FindAllString(m[2], -1) {
		if v := c.Resolve(ref); v != "" && !strings.HasPrefix(v, "{") {
			resolved = append(resolved, v)
		}
	}

	if len(resolved) == 0 {
		return literal, true
	}
	return literal + " " + strings.Join(resolved, " "), true
}
