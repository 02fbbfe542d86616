// Package dice provides seedable dice rolling primitives for the combat
// engine. The Seeded roller satisfies the rpg-toolkit dice.Roller contract so
// the same roller can be handed to toolkit code, while the seed makes every
// combat sequence reproducible in tests.
package dice

import (
	"math/rand"
	"regexp"
	"strconv"
	"sync"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/combat-api/internal/errors"
)

// Regex for dice expressions like "2d6", "1d20+5", "4d8-1"
var expressionRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Seeded is a deterministic dice roller. The same seed string produces the
// same roll sequence. Safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ toolkitdice.Roller = (*Seeded)(nil)

// NewSeeded creates a roller seeded from an arbitrary string. The seed is
// hashed to a 64-bit value; empty string is a valid seed.
func NewSeeded(seed string) *Seeded {
	h := xxhash.Sum64String(seed)
	return &Seeded{
		rng: rand.New(rand.NewSource(int64(h))), // #nosec G404 // determinism is the point
	}
}

// Roll returns a single die result in [1, size]
func (s *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(size) + 1, nil
}

// RollN returns times independent die results in [1, size]
func (s *Seeded) RollN(times, size int) ([]int, error) {
	if times <= 0 {
		return nil, errors.InvalidArgumentf("roll count must be positive, got %d", times)
	}
	if size <= 0 {
		return nil, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]int, times)
	for i := range results {
		results[i] = s.rng.Intn(size) + 1
	}
	return results, nil
}

// D20Roll is the result of a d20 roll, keeping the discarded die for display
// when advantage or disadvantage was in play.
type D20Roll struct {
	Result       int
	Discarded    int // 0 when only one die was rolled
	Advantage    bool
	Disadvantage bool
}

// D20Options controls advantage state for RollD20
type D20Options struct {
	Advantage    bool
	Disadvantage bool
}

// RollD20 rolls a d20 with optional advantage or disadvantage. Advantage
// keeps the higher of two dice, disadvantage the lower. Both flags together
// cancel out and a single die is rolled (standard 5e rule).
func RollD20(roller toolkitdice.Roller, opts D20Options) (*D20Roll, error) {
	adv := opts.Advantage && !opts.Disadvantage
	dis := opts.Disadvantage && !opts.Advantage

	first, err := roller.Roll(20)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll d20")
	}

	if !adv && !dis {
		return &D20Roll{Result: first}, nil
	}

	second, err := roller.Roll(20)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll second d20")
	}

	kept, discarded := first, second
	if (adv && second > first) || (dis && second < first) {
		kept, discarded = second, first
	}

	return &D20Roll{
		Result:       kept,
		Discarded:    discarded,
		Advantage:    adv,
		Disadvantage: dis,
	}, nil
}

// Expression is a parsed dice expression like "2d6+3"
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// ExpressionResult holds the outcome of rolling an expression
type ExpressionResult struct {
	Expression string
	Dice       []int
	Modifier   int
	Total      int
}

// ParseExpression parses "<count>d<sides>[+|-<modifier>]" notation.
// Returns an InvalidArgument error on malformed input.
func ParseExpression(expr string) (*Expression, error) {
	matches := expressionRegex.FindStringSubmatch(expr)
	if matches == nil {
		return nil, errors.InvalidArgumentf("invalid dice expression: %q (expected format: XdY or XdY+Z)", expr)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid dice count in expression: %q", expr)
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid die size in expression: %q", expr)
	}

	modifier := 0
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid modifier in expression: %q", expr)
		}
	}

	if count <= 0 || sides <= 0 {
		return nil, errors.InvalidArgumentf("dice count and size must be positive: %q", expr)
	}

	return &Expression{Count: count, Sides: sides, Modifier: modifier}, nil
}

// RollExpression parses and rolls a dice expression
func RollExpression(roller toolkitdice.Roller, expr string) (*ExpressionResult, error) {
	parsed, err := ParseExpression(expr)
	if err != nil {
		return nil, err
	}
	return RollParsed(roller, parsed, expr)
}

// RollParsed rolls an already-parsed expression. The expr string is carried
// through for audit display only.
func RollParsed(roller toolkitdice.Roller, parsed *Expression, expr string) (*ExpressionResult, error) {
	rolls, err := roller.RollN(parsed.Count, parsed.Sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", expr)
	}

	total := parsed.Modifier
	for _, r := range rolls {
		total += r
	}

	return &ExpressionResult{
		Expression: expr,
		Dice:       rolls,
		Modifier:   parsed.Modifier,
		Total:      total,
	}, nil
}

// Modifier returns the D&D 5e ability modifier for a score:
// floor((score-10)/2), so 10-11 is +0, 8-9 is -1, 20 is +5.
func Modifier(score int) int {
	// Go integer division truncates toward zero, which is wrong for
	// negative results. 7 should give -2, not -1.
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}
