// Package locale loads the embedded translation catalogues into gotext.
// Strings are looked up with gotext.Get and constant keys.
package locale

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is requested
const DefaultLanguage = "en"

//go:embed po/*.po
var catalogues embed.FS

// Languages returns the available language codes, sorted
func Languages() []string {
	entries, err := catalogues.ReadDir("po")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	sort.Strings(langs)
	return langs
}

// Load installs the catalogue for lang as gotext's global storage.
// An empty lang loads DefaultLanguage.
func Load(lang string) error {
	if lang == "" {
		lang = DefaultLanguage
	}

	data, err := catalogues.ReadFile(path.Join("po", lang+".po"))
	if err != nil {
		return fmt.Errorf("unsupported language %q (have %s): %w", lang, strings.Join(Languages(), ", "), err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator("default", po)
	gotext.SetStorage(l)

	return nil
}
