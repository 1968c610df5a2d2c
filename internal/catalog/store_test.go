package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCurrentBeforeFirstLoad(t *testing.T) {
	store := NewStore(newLoader(t.TempDir()))
	assert.True(t, store.Current().Empty())
}

func TestStoreReloadSwapsCatalog(t *testing.T) {
	root := t.TempDir()
	buildDataTree(t, root)
	store := NewStore(newLoader(root))

	first := store.Reload()
	assert.Same(t, first, store.Current())

	// New content appears only after the next reload completes.
	write(t, filepath.Join(root, "assets", "units", "size_s", "macros", "ship_arg_s_hauler_01_macro.xml"),
		shipXML("ship_arg_s_hauler_01_macro", "freighter", "10201"))
	assert.Len(t, store.Current().Ships(), 1)

	second := store.Reload()
	assert.Len(t, second.Ships(), 2)
	assert.Same(t, second, store.Current())
	assert.Len(t, first.Ships(), 1, "the previous catalog is untouched")
}

func TestStoreSetLanguage(t *testing.T) {
	root := t.TempDir()
	buildDataTree(t, root)
	store := NewStore(newLoader(root))
	store.Reload()

	require.Error(t, store.SetLanguage(999))

	// German has no translation file in this tree, so the load falls
	// back to the baseline file.
	require.NoError(t, store.SetLanguage(49))
	store.Reload()
	assert.Equal(t, "English (fallback)", store.LanguageName())
}
