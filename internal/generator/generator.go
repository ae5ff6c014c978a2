// Package generator assembles full identity records from a locale's
// datasets, national-id scheme and postal registry.
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"datagen-api/internal/dataset"
	"datagen-api/internal/models"
	"datagen-api/internal/natid"
	"datagen-api/internal/postal"

	"github.com/rs/zerolog"
)

// Birth-date range for locales without an id scheme, where the date is not
// derived from an identifier.
const (
	placeholderMinYear = 1950
	placeholderMaxYear = 2000
	placeholderIDLen   = 11
)

// countryDefaults names the country when a locale ships no countries
// category.
var countryDefaults = map[string]string{
	"pl": "Polska",
	"de": "Deutschland",
}

// Generator produces identity records for one locale. It owns its datasets
// and random source; construct one per concurrent consumer.
type Generator struct {
	locale   string
	data     dataset.Dataset
	registry *postal.Registry
	idGen    natid.Generator
	rng      *rand.Rand
	logger   zerolog.Logger
}

// New creates a generator over already-loaded locale data. Locales without
// a registered id scheme fall back to placeholder identifiers.
func New(locale string, data dataset.Dataset, rng *rand.Rand, logger zerolog.Logger) *Generator {
	g := &Generator{
		locale:   locale,
		data:     data,
		registry: postal.NewRegistry(data[dataset.CategoryPostalRegistry], rng, logger),
		rng:      rng,
		logger:   logger,
	}

	idGen, ok := natid.ForLocale(locale, rng)
	if !ok {
		logger.Warn().Str("locale", locale).Msg("no id scheme for locale, using placeholder ids")
	}
	g.idGen = idGen

	return g
}

// GenerateOne produces a single fully-populated record.
func (g *Generator) GenerateOne() (*models.Record, error) {
	male := g.rng.IntN(2) == 0

	nameCategory := dataset.CategoryFemaleFirstNames
	if male {
		nameCategory = dataset.CategoryMaleFirstNames
	}
	firstName, err := g.pick(nameCategory)
	if err != nil {
		return nil, err
	}

	surname, err := g.pickSurname(male)
	if err != nil {
		return nil, err
	}

	id, birthDate, err := g.identity(male)
	if err != nil {
		return nil, err
	}

	record := models.NewRecord()
	record.Set(models.FieldName, firstName)
	record.Set(models.FieldSurname, surname)
	record.Set(models.FieldID, id)
	record.Set(models.FieldBirthDate, birthDate)
	g.fillAddress(record)

	return record, nil
}

// GenerateBatch produces count independent records. Duplicates across
// records are permitted.
func (g *Generator) GenerateBatch(count int) ([]*models.Record, error) {
	records := make([]*models.Record, 0, count)
	for i := 0; i < count; i++ {
		record, err := g.GenerateOne()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// pickSurname uses the unified surname list when the locale has one and
// the gender-matched list otherwise.
func (g *Generator) pickSurname(male bool) (string, error) {
	if len(g.data[dataset.CategorySurnames]) > 0 {
		return g.pick(dataset.CategorySurnames)
	}
	category := dataset.CategoryFemaleSurnames
	if male {
		category = dataset.CategoryMaleSurnames
	}
	return g.pick(category)
}

// identity produces the id and birth date, via the locale's scheme when
// one exists and an unchecksummed placeholder otherwise.
func (g *Generator) identity(male bool) (id, birthDate string, err error) {
	if g.idGen == nil {
		return g.placeholderIdentity()
	}

	gender := natid.GenderFemale
	if male {
		gender = natid.GenderMale
	}
	res, err := g.idGen.Generate(natid.Constraints{Gender: gender})
	if err != nil {
		return "", "", err
	}
	return res.ID, res.BirthDate, nil
}

// placeholderIdentity draws a random numeric id and a birth date uniform
// over 1950-2000.
func (g *Generator) placeholderIdentity() (string, string, error) {
	digits := make([]byte, placeholderIDLen)
	for i := range digits {
		digits[i] = byte('0' + g.rng.IntN(10))
	}

	year := placeholderMinYear + g.rng.IntN(placeholderMaxYear-placeholderMinYear+1)
	month := 1 + g.rng.IntN(12)
	maxDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := 1 + g.rng.IntN(maxDay)

	return string(digits), fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// fillAddress populates address fields from the postal registry, or from
// the independent street/city lists when the registry is empty. In the
// fallback path, sub-fields with no category equivalent are omitted.
func (g *Generator) fillAddress(record *models.Record) {
	if !g.registry.Empty() {
		addr := g.registry.ResolveAddress(g.registry.RandomEntry())
		record.Set(models.FieldStreet, addr.Street)
		record.Set(models.FieldCity, addr.City)
		record.Set(models.FieldPostalCode, addr.PostalCode)
		g.fillCountry(record)
		record.Set(models.FieldDistrict, addr.District)
		record.Set(models.FieldCounty, addr.County)
		record.Set(models.FieldRegion, addr.Region)
		return
	}

	if streets := g.data[dataset.CategoryStreets]; len(streets) > 0 {
		record.Set(models.FieldStreet, streets[g.rng.IntN(len(streets))])
	}
	if cities := g.data[dataset.CategoryCities]; len(cities) > 0 {
		record.Set(models.FieldCity, cities[g.rng.IntN(len(cities))])
	}
	g.fillCountry(record)
}

// fillCountry uses the countries category when present and a fixed
// locale-keyed default otherwise.
func (g *Generator) fillCountry(record *models.Record) {
	if countries := g.data[dataset.CategoryCountries]; len(countries) > 0 {
		record.Set(models.FieldCountry, countries[g.rng.IntN(len(countries))])
		return
	}
	if name, ok := countryDefaults[g.locale]; ok {
		record.Set(models.FieldCountry, name)
		return
	}
	record.Set(models.FieldCountry, g.locale)
}

// pick draws uniformly from a category, failing explicitly when the
// collection is empty.
func (g *Generator) pick(category string) (string, error) {
	values := g.data[category]
	if len(values) == 0 {
		return "", &models.MissingDatasetError{Locale: g.locale, Category: category}
	}
	return values[g.rng.IntN(len(values))], nil
}
