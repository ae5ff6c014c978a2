// Package postal parses a locale's postal-code registry and resolves
// concrete street addresses from its entries.
package postal

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"datagen-api/internal/models"

	"github.com/rs/zerolog"
)

// registryFieldCount is the minimum number of ;-delimited fields a
// registry line must carry: code;locality;street;houseNumbers;district;
// county;region.
const registryFieldCount = 7

// fallbackMaxHouseNumber bounds the house number drawn when an entry has
// no house-number spec.
const fallbackMaxHouseNumber = 150

// Registry holds the parsed postal entries for one locale and resolves
// addresses from them.
type Registry struct {
	entries []models.PostalEntry
	rng     *rand.Rand
	logger  zerolog.Logger
}

// NewRegistry parses raw registry lines into a registry. Lines with fewer
// than seven fields are logged and skipped; parsing never fails.
func NewRegistry(lines []string, rng *rand.Rand, logger zerolog.Logger) *Registry {
	r := &Registry{rng: rng, logger: logger}
	for i, line := range lines {
		entry, ok := parseLine(line)
		if !ok {
			r.logger.Warn().
				Int("line", i+1).
				Str("content", line).
				Msg("skipping malformed postal registry line")
			continue
		}
		r.entries = append(r.entries, entry)
	}
	return r
}

// parseLine splits one registry line into a postal entry. Empty street and
// house-number fields are kept as empty strings, meaning absent.
func parseLine(line string) (models.PostalEntry, bool) {
	parts := strings.Split(line, ";")
	if len(parts) < registryFieldCount {
		return models.PostalEntry{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return models.PostalEntry{
		PostalCode:   parts[0],
		Locality:     parts[1],
		Street:       parts[2],
		HouseNumbers: parts[3],
		District:     parts[4],
		County:       parts[5],
		Region:       parts[6],
	}, true
}

// Empty reports whether no registry lines parsed successfully.
func (r *Registry) Empty() bool {
	return len(r.entries) == 0
}

// Len returns the number of parsed entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// RandomEntry draws a uniform entry. Callers must check Empty first.
func (r *Registry) RandomEntry() models.PostalEntry {
	return r.entries[r.rng.IntN(len(r.entries))]
}

// ResolveAddress turns an entry into a concrete address, selecting a house
// number from the entry's spec. The street label is "street n" when the
// entry names a street and "locality n" otherwise.
func (r *Registry) ResolveAddress(entry models.PostalEntry) models.Address {
	number := r.houseNumber(entry.HouseNumbers)

	label := entry.Locality
	if entry.Street != "" {
		label = entry.Street
	}

	return models.Address{
		Street:     fmt.Sprintf("%s %s", label, number),
		City:       entry.Locality,
		PostalCode: entry.PostalCode,
		District:   entry.District,
		County:     entry.County,
		Region:     entry.Region,
	}
}

// houseNumber selects a house number from a spec: a list "A,B,C" picks one
// element, a range "A-B" draws uniformly within it (falling back to the
// literal text when the bounds do not parse), a single value is used
// verbatim, and an absent spec draws from [1, 150].
func (r *Registry) houseNumber(spec string) string {
	if spec == "" {
		return strconv.Itoa(1 + r.rng.IntN(fallbackMaxHouseNumber))
	}

	if strings.Contains(spec, ",") {
		options := strings.Split(spec, ",")
		return strings.TrimSpace(options[r.rng.IntN(len(options))])
	}

	if strings.Contains(spec, "-") {
		parts := strings.SplitN(spec, "-", 2)
		start, errStart := strconv.Atoi(strings.TrimSpace(parts[0]))
		end, errEnd := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errStart != nil || errEnd != nil {
			return spec
		}
		if start > end {
			start, end = end, start
		}
		return strconv.Itoa(start + r.rng.IntN(end-start+1))
	}

	return spec
}
