package natid

import (
	"fmt"
	"math/rand/v2"
)

const (
	deModernMinYear = 1900
	deModernMaxYear = 2099
)

// DEModern generates modern German-style test ids: YYMMDD + 3-digit serial
// + digit-sum control digit, 10 digits total. The scheme does not encode
// gender; the Gender constraint is accepted and ignored.
type DEModern struct {
	rng *rand.Rand
}

// NewDEModern creates a modern German id generator drawing from rng.
func NewDEModern(rng *rand.Rand) *DEModern {
	return &DEModern{rng: rng}
}

// Generate produces an identifier and its embedded birth date.
func (g *DEModern) Generate(c Constraints) (Result, error) {
	year, err := resolveYear(g.rng, c.Year, deModernMinYear, deModernMaxYear)
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
	base := fmt.Sprintf("%02d%02d%02d%03d", year%100, month, day, serial)

	sum := 0
	for i := 0; i < len(base); i++ {
		sum += int(base[i] - '0')
	}

	return Result{
		ID:        fmt.Sprintf("%s%d", base, sum%10),
		BirthDate: formatBirthDate(year, month, day),
	}, nil
}
