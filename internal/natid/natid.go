// Package natid generates checksum-valid national identity numbers for a
// closed set of locale variants. Each variant embeds a (possibly
// constrained) birth date, a random serial and, where the scheme encodes
// it, a gender parity digit, then appends a scheme-specific control digit.
package natid

import (
	"math/rand/v2"

	"datagen-api/internal/models"
)

// Gender constrains the parity digit of schemes that encode gender.
type Gender int

const (
	GenderAny Gender = iota
	GenderMale
	GenderFemale
)

// Constraints optionally pins date components and gender. Nil pointers
// mean "draw uniformly from the scheme's valid range". Out-of-range values
// yield a models.RangeError.
type Constraints struct {
	Year   *int
	Month  *int
	Day    *int
	Gender Gender
}

// Result is a generated identifier and the birth date embedded in it,
// formatted YYYY-MM-DD.
type Result struct {
	ID        string
	BirthDate string
}

// Generator produces identifiers for one locale variant.
type Generator interface {
	Generate(c Constraints) (Result, error)
}

// ForLocale returns the generator registered for a dataset locale tag, or
// false when the locale has no identifier scheme. Callers without a
// generator are expected to fall back to placeholder ids.
func ForLocale(tag string, rng *rand.Rand) (Generator, bool) {
	switch tag {
	case "pl":
		return NewPESEL(rng), true
	case "de":
		return NewPKZ(rng), true
	case "de-modern":
		return NewDEModern(rng), true
	default:
		return nil, false
	}
}

// resolveYear validates a pinned year against [min, max] or draws one.
func resolveYear(rng *rand.Rand, year *int, min, max int) (int, error) {
	if year == nil {
		return min + rng.IntN(max-min+1), nil
	}
	if *year < min || *year > max {
		return 0, models.NewRangeError("year must be between %d and %d, got %d", min, max, *year)
	}
	return *year, nil
}

// resolveMonth validates a pinned month against [1, 12] or draws one.
func resolveMonth(rng *rand.Rand, month *int) (int, error) {
	if month == nil {
		return 1 + rng.IntN(12), nil
	}
	if *month < 1 || *month > 12 {
		return 0, models.NewRangeError("month must be between 1 and 12, got %d", *month)
	}
	return *month, nil
}

// resolveDay validates a pinned day against the month's length or draws one.
func resolveDay(rng *rand.Rand, day *int, year, month int) (int, error) {
	max := daysInMonth(year, month)
	if day == nil {
		return 1 + rng.IntN(max), nil
	}
	if *day < 1 || *day > max {
		return 0, models.NewRangeError("invalid day %d for month %d and year %d", *day, month, year)
	}
	return *day, nil
}

// genderDigit draws the parity digit: odd for male, even for female,
// uniform 0-9 when unconstrained.
func genderDigit(rng *rand.Rand, g Gender) int {
	switch g {
	case GenderMale:
		return 1 + 2*rng.IntN(5)
	case GenderFemale:
		return 2 * rng.IntN(5)
	default:
		return rng.IntN(10)
	}
}
