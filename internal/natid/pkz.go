package natid

import (
	"fmt"
	"math/rand/v2"
)

const (
	pkzMinYear = 1900
	pkzMaxYear = 1999
)

// PKZ generates historical East German Personenkennzahl-style numbers:
// YYMMDD + 3-digit serial + gender parity digit + control digit. The
// control digit weights the base with alternating 2,1 and folds any
// two-digit product into its digit sum before accumulating.
type PKZ struct {
	rng *rand.Rand
}

// NewPKZ creates a PKZ generator drawing from rng.
func NewPKZ(rng *rand.Rand) *PKZ {
	return &PKZ{rng: rng}
}

// Generate produces a PKZ and its embedded birth date.
func (g *PKZ) Generate(c Constraints) (Result, error) {
	year, err := resolveYear(g.rng, c.Year, pkzMinYear, pkzMaxYear)
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
		year%100, month, day, serial, genderDigit(g.rng, c.Gender))

	sum := 0
	for i := 0; i < len(base); i++ {
		weight := 2
		if i%2 == 1 {
			weight = 1
		}
		product := int(base[i]-'0') * weight
		if product >= 10 {
			product = product/10 + product%10
		}
		sum += product
	}
	control := (10 - sum%10) % 10

	return Result{
		ID:        fmt.Sprintf("%s%d", base, control),
		BirthDate: formatBirthDate(year, month, day),
	}, nil
}
