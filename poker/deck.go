package poker

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-eval/internal/randutil"
)

// DefaultSeed is the deck's deterministic default seed, kept fixed so
// runs are reproducible unless a caller opts into another seed.
const DefaultSeed = 12345

// Deck deals cards from a 52-slot array. Shuffle only resets the draw
// pointer; the randomness comes from the draws themselves, which swap
// each dealt card out of the undealt prefix.
type Deck struct {
	cards     [NumCards]Card
	remaining int
	rng       *rand.Rand
}

// NewDeck creates a full deck seeded with DefaultSeed.
func NewDeck() *Deck {
	return NewDeckSeeded(DefaultSeed)
}

// NewDeckSeeded creates a full deck with its own deterministic
// generator. Decks with the same seed deal the same sequence.
func NewDeckSeeded(seed int64) *Deck {
	d := &Deck{
		remaining: NumCards,
		rng:       randutil.New(seed),
	}
	for v := range d.cards {
		d.cards[v] = Card(v)
	}
	return d
}

// Shuffle makes all 52 cards dealable again, retaining the current
// permutation.
func (d *Deck) Shuffle() {
	d.remaining = NumCards
}

// Deal draws a card from the undealt portion. The multiplicative index
// fold is very slightly non-uniform (some indices receive one more of
// the generator's 2^32 outputs than others, spread across the range),
// which is acceptable for simulation work. Dealing from an exhausted
// deck is a programmer error.
func (d *Deck) Deal() Card {
	if cardChecks && d.remaining == 0 {
		panic("poker: deal from exhausted deck")
	}
	idx := int(uint64(d.rng.Uint32()) * uint64(d.remaining) >> 32)
	card := d.cards[idx]
	d.remaining--
	d.cards[idx], d.cards[d.remaining] = d.cards[d.remaining], d.cards[idx]
	return card
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return d.remaining
}
