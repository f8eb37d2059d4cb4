package spread

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/arcanaland/eventtarot/internal/card"
)

// Source provides the cards eligible for a category
type Source interface {
	Eligible(c card.Category) []card.Card
}

// Draw is the card selected for one position
type Draw struct {
	Card     card.Card
	Position Position
	Reversed bool
}

// Selector picks cards uniformly at random. Every call is independent: the
// same card may come up for several positions of one reading.
type Selector struct {
	source Source

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector over source. A nil rng uses the global
// random source.
func NewSelector(source Source, rng *rand.Rand) *Selector {
	return &Selector{source: source, rng: rng}
}

// Select picks one eligible card for the category and an independent
// orientation.
func (s *Selector) Select(c card.Category) (card.Card, bool, error) {
	eligible := s.source.Eligible(c)
	if len(eligible) == 0 {
		return nil, false, fmt.Errorf("no cards eligible for %s", c)
	}

	i, reversed := s.roll(len(eligible))
	return eligible[i], reversed, nil
}

// Draw selects a card for the position
func (s *Selector) Draw(p Position) (Draw, error) {
	c, reversed, err := s.Select(p.Suit)
	if err != nil {
		return Draw{Position: p}, err
	}
	return Draw{Card: c, Position: p, Reversed: reversed}, nil
}

func (s *Selector) roll(n int) (int, bool) {
	if s.rng == nil {
		return rand.IntN(n), rand.IntN(2) == 1
	}

	// *rand.Rand is not safe for concurrent use
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), s.rng.IntN(2) == 1
}
