// Package dataset discovers available locales and loads their category
// collections from flat text files.
package dataset

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Category names used by the record generator.
const (
	CategoryMaleFirstNames   = "male-first-names"
	CategoryFemaleFirstNames = "female-first-names"
	CategoryMaleSurnames     = "male-surnames"
	CategoryFemaleSurnames   = "female-surnames"
	CategorySurnames         = "surnames"
	CategoryStreets          = "streets"
	CategoryCities           = "cities"
	CategoryCountries        = "countries"
	CategoryPostalRegistry   = "postal-registry"
)

// defaultCategories lists the files a locale directory is expected to
// provide. Categories are enumerated explicitly rather than discovered by
// globbing so stray files in a locale directory are never picked up.
var defaultCategories = []string{
	CategoryMaleFirstNames,
	CategoryFemaleFirstNames,
	CategoryMaleSurnames,
	CategoryFemaleSurnames,
	CategorySurnames,
	CategoryStreets,
	CategoryCities,
	CategoryCountries,
	CategoryPostalRegistry,
}

// localeCategories overrides the expected category list per locale. A
// locale absent from the map uses the default list, so new locale
// directories work without code changes.
var localeCategories = map[string][]string{}

// Dataset maps a category name to its loaded lines.
type Dataset map[string][]string

// Loader reads locale datasets from a directory tree with one
// subdirectory per locale and one <category>.txt file per category.
type Loader struct {
	root   string
	logger zerolog.Logger
}

// NewLoader creates a loader rooted at the given data directory.
func NewLoader(root string, logger zerolog.Logger) *Loader {
	return &Loader{root: root, logger: logger}
}

// DiscoverLocales scans one directory level for locale subdirectories.
// A missing or unreadable root yields an empty, sorted slice and a logged
// error, never a failure.
func (l *Loader) DiscoverLocales() []string {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		l.logger.Error().Err(err).Str("root", l.root).Msg("cannot read data root")
		return []string{}
	}

	locales := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			locales = append(locales, entry.Name())
		}
	}
	sort.Strings(locales)
	return locales
}

// HasLocale reports whether a dataset directory exists for the locale.
func (l *Loader) HasLocale(locale string) bool {
	info, err := os.Stat(filepath.Join(l.root, locale))
	return err == nil && info.IsDir()
}

// LoadCategories loads every expected category for the locale. A category
// whose file is missing or unreadable loads as an empty collection with a
// warning; the rest of the locale still loads.
func (l *Loader) LoadCategories(locale string) Dataset {
	categories, ok := localeCategories[locale]
	if !ok {
		categories = defaultCategories
	}

	data := make(Dataset, len(categories))
	dir := filepath.Join(l.root, locale)
	for _, category := range categories {
		lines, err := loadLines(filepath.Join(dir, category+".txt"))
		if err != nil {
			l.logger.Warn().
				Err(err).
				Str("locale", locale).
				Str("category", category).
				Msg("category file not loaded, using empty collection")
			data[category] = []string{}
			continue
		}
		data[category] = lines
	}
	return data
}

// loadLines reads a newline-delimited UTF-8 file, trimming whitespace and
// dropping blank lines.
func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
