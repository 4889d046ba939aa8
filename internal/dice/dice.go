package dice

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Roller produces dice rolls from its own random source, so game code and
// tests can control determinism independently of the global generator.
type Roller struct {
	rng *rand.Rand
}

func NewRoller() *Roller {
	return &Roller{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRoller returns a roller with a fixed seed for reproducible rolls.
func NewSeededRoller(seed uint64) *Roller {
	return &Roller{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Result holds the outcome of a roll, keeping the individual dice so the UI
// can show them the way a table DM would.
type Result struct {
	Sides int
	Rolls []int
	Total int
}

func (res Result) String() string {
	parts := make([]string, len(res.Rolls))
	for i, r := range res.Rolls {
		parts[i] = fmt.Sprintf("%d", r)
	}
	return fmt.Sprintf("%dd%d: [%s] = %d", len(res.Rolls), res.Sides, strings.Join(parts, " "), res.Total)
}

// Roll rolls count dice with the given number of sides and sums them.
func (r *Roller) Roll(sides, count int) Result {
	res := Result{Sides: sides, Rolls: make([]int, 0, count)}
	for i := 0; i < count; i++ {
		v := r.rng.IntN(sides) + 1
		res.Rolls = append(res.Rolls, v)
		res.Total += v
	}
	return res
}

// WithAdvantage rolls a single die twice and keeps the higher result.
func (r *Roller) WithAdvantage(sides int) int {
	a := r.Roll(sides, 1).Total
	b := r.Roll(sides, 1).Total
	return max(a, b)
}

// WithDisadvantage rolls a single die twice and keeps the lower result.
func (r *Roller) WithDisadvantage(sides int) int {
	a := r.Roll(sides, 1).Total
	b := r.Roll(sides, 1).Total
	return min(a, b)
}
