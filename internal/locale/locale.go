// Package locale loads the gettext message catalogs for player-facing text.
package locale

import (
	"fmt"
	"io/fs"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalog exists for the requested language.
const DefaultLanguage = "en"

// Catalog resolves message keys to translated text.
type Catalog struct {
	Language string
	po       *gotext.Po
}

// Load reads locale/<lang>.po from fsys, falling back to DefaultLanguage.
func Load(fsys fs.FS, lang string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, "locale/"+lang+".po")
	if err != nil {
		if lang == DefaultLanguage {
			return nil, fmt.Errorf("load catalog %s: %w", lang, err)
		}
		return Load(fsys, DefaultLanguage)
	}
	return Parse(lang, data), nil
}

// Parse builds a catalog from raw .po bytes.
func Parse(lang string, data []byte) *Catalog {
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{Language: lang, po: po}
}

// Get returns the translation for key, formatted with vars.
// Untranslated keys come back unchanged.
func (c *Catalog) Get(key string, vars ...any) string {
	if c == nil || c.po == nil {
		if len(vars) > 0 {
			return fmt.Sprintf(key, vars...)
		}
		return key
	}
	return c.po.Get(key, vars...)
}
