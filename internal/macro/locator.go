// Package macro locates and loads the game's XML macro files across a
// layered set of candidate data directories.
package macro

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"
)

// storageSubdirs are the well-known locations for storage module macros,
// relative to each data root.
var storageSubdirs = []string{
	filepath.Join("assets", "props", "StorageModules", "macros"),
	filepath.Join("assets", "props", "StorageModules"),
}

// Locator searches an ordered list of candidate root directories. All
// roots are searched and results concatenated, so data spread over
// multiple install layouts merges into one view.
type Locator struct {
	roots []string
}

func NewLocator(roots ...string) *Locator {
	return &Locator{roots: roots}
}

// Roots returns the candidate root directories in search order.
func (l *Locator) Roots() []string { return l.roots }

// FindFiles globs the given root-relative pattern under every root and
// concatenates the matches. Matches within a root are sorted so repeated
// loads see files in the same order.
func (l *Locator) FindFiles(pattern string) []string {
	var files []string
	for _, root := range l.roots {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("Bad file pattern")
			continue
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files
}

// FindDirs is FindFiles restricted to directories.
func (l *Locator) FindDirs(pattern string) []string {
	var dirs []string
	for _, path := range l.FindFiles(pattern) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			dirs = append(dirs, path)
		}
	}
	return dirs
}

// FindFilesRecursive walks the given root-relative directory under every
// root and returns all files whose base name matches the suffix, sorted
// within each root.
func (l *Locator) FindFilesRecursive(relDir, suffix string) []string {
	var files []string
	for _, root := range l.roots {
		dir := filepath.Join(root, relDir)
		var found []string
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("dir", dir).Msg("Error walking directory")
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files
}

// FindAuxiliary resolves a referenced auxiliary macro by name: first a
// sibling of the anchor file, then the well-known storage module
// directories under each root. The boolean is false when nothing exists;
// the caller applies its default.
func (l *Locator) FindAuxiliary(anchorFile, refName string) (string, bool) {
	candidates := []string{filepath.Join(filepath.Dir(anchorFile), refName+".xml")}
	for _, root := range l.roots {
		for _, sub := range storageSubdirs {
			candidates = append(candidates, filepath.Join(root, sub, refName+".xml"))
		}
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// LoadDocument parses one XML file. A malformed file is an error at the
// granularity of that file only; callers log and continue.
func LoadDocument(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	return doc, nil
}
