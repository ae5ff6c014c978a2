package natid

import (
	"fmt"
	"math/rand/v2"

	"datagen-api/internal/models"
)

const (
	peselMinYear = 1800
	peselMaxYear = 2299
)

// peselWeights are applied to the 10-digit base when computing the control
// digit.
var peselWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// PESEL generates Polish PESEL numbers: YYMMDD (month carries a century
// offset) + 3-digit serial + gender parity digit + control digit.
type PESEL struct {
	rng *rand.Rand
}

// NewPESEL creates a PESEL generator drawing from rng.
func NewPESEL(rng *rand.Rand) *PESEL {
	return &PESEL{rng: rng}
}

// Generate produces a PESEL and its embedded birth date.
func (g *PESEL) Generate(c Constraints) (Result, error) {
	year, err := resolveYear(g.rng, c.Year, peselMinYear, peselMaxYear)
	if err != nil {
		return Result{}, err
	}

	offset, err := peselMonthOffset(year)
	if err != nil {
		return Result{}, err
	}

	month, err := resolveMonth(g.rng, c.Month)
	if err != nil {
		return Result{}, err
	}

	day, err := resolveDay(g.rng, c.Day, year, month)
	if err != nil {
		return Result{}, err
	}

	serial := g.rng.IntN(1000)
	base := fmt.Sprintf("%02d%02d%02d%03d%d",
		year%100, month+offset, day, serial, genderDigit(g.rng, c.Gender))

	sum := 0
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * peselWeights[i]
	}
	control := (10 - sum%10) % 10

	return Result{
		ID:        fmt.Sprintf("%s%d", base, control),
		BirthDate: formatBirthDate(year, month, day),
	}, nil
}

// peselMonthOffset maps the birth century to the offset added to the month
// field: 1800s use 80, 1900s 0, 2000s 20, 2100s 40, 2200s 60.
func peselMonthOffset(year int) (int, error) {
	switch {
	case year >= 1800 && year <= 1899:
		return 80, nil
	case year >= 1900 && year <= 1999:
		return 0, nil
	case year >= 2000 && year <= 2099:
		return 20, nil
	case year >= 2100 && year <= 2199:
		return 40, nil
	case year >= 2200 && year <= 2299:
		return 60, nil
	}
	return 0, models.NewRangeError("year %d outside supported centuries", year)
}
