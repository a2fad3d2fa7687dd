// Package poker implements a high-throughput seven-card Texas Hold'em
// hand evaluator.
//
// The engine packs a whole card set into one 128-bit word that
// simultaneously answers "which cards?", "how many of each rank?" and
// "how many of each suit?". Inserting a card is a pair of 64-bit adds
// of a precomputed contribution; the ranking kernel then classifies
// the hand with a handful of mask-and-shift passes over the word:
//
//  1. Flush probe: a branch-free byte test over the suit counters; if
//     a suit holds five or more cards the suited rank bitmap decides
//     between straight flush and flush.
//  2. Quads: the counter MSB plane lights up exactly for count == 4.
//  3. Straight: five shifted copies of the colorless rank bitmap are
//     ANDed together, with the ace duplicated below the two so the
//     wheel falls out of the same cascade.
//  4. Trips, pairs and kickers from the counter planes, shared
//     erase-lowest-bits paths for the side cards.
//
// Scores come back as a single comparable integer (see HandRanking),
// so winner determination is ordinary integer comparison. The kernel
// allocates nothing and runs in constant time.
package poker

import (
	"fmt"
	"math/bits"
)

// Counter-plane masks; each octal digit covers one 3-bit rank
// counter, the bottom group (bits 0..2) is unused and stays clear.
const (
	counterMask = 0o77777777777770
	counterMSB  = 0o44444444444440
)

// RankTexasHoldem classifies a seven-card set and returns its score.
// The set must hold exactly seven cards.
func (cs CardSet) RankTexasHoldem() HandRanking {
	if cardChecks && cs.Size() != 7 {
		panic(fmt.Sprintf("poker: RankTexasHoldem on set of size %d", cs.Size()))
	}

	// Flush probe. Adding 3 to each suit-counter byte pushes any
	// count >= 5 into the byte's bit 3; no byte exceeds 7 so the adds
	// cannot carry across bytes.
	suitCounts := uint32(cs.hi >> 32)
	if over := (suitCounts + 0x03030303) & 0x08080808; over != 0 {
		suit := uint(bits.TrailingZeros32(over)) / 8
		suited := cs.suitRanks(Suit(suit))

		// The straight flush height comes from the suited straight
		// mask, not the colorless one.
		if top := straightTop(suited); top >= 0 {
			return newRanking(StraightFlush, 1<<uint(top), 0)
		}

		// Plain flush: only the top five suited cards play.
		for n := suitCounts >> (8 * suit) & 0xff; n > 5; n-- {
			suited &= suited - 1
		}
		return newRanking(Flush, suited, 0)
	}

	counters := cs.lo & counterMask
	quads := counters & counterMSB
	ones := (counters << 2) & counterMSB
	twos := (counters << 1) & counterMSB
	colorless := ones | twos // ranks present once, twice or three times

	if quads != 0 {
		// The kicker is the highest remaining rank; a quad excludes a
		// straight flush over the same cards, and plain straights
		// lose to it anyway.
		return newRanking(FourOfAKind, compact(quads), topRankBit(colorless))
	}

	if top := straightTop(compact(colorless)); top >= 0 {
		return newRanking(Straight, 1<<uint(top), 0)
	}

	trips := ones & twos
	if trips != 0 {
		twos ^= trips
		if trips&(trips-1) != 0 {
			// Two triples: the lower one is the full house pair.
			low := trips & -trips
			trips ^= low
			twos |= low
		}
		if twos != 0 {
			// There can still be two pair candidates; the highest
			// plays.
			return newRanking(FullHouse, compact(trips), topRankBit(twos))
		}
		side := eraseLowestTwo(colorless ^ trips)
		return newRanking(ThreeOfAKind, compact(trips), compact(side))
	}

	pairs := bits.OnesCount64(twos)
	if pairs == 3 {
		// Three pairs: keep the top two; the kicker is the better of
		// the unpaired card and the demoted pair's rank.
		low := twos & -twos
		kicker := colorless ^ twos
		if low > kicker {
			kicker = low
		}
		return newRanking(TwoPairs, compact(twos^low), compact(kicker))
	}

	// Zero to two pairs share a path: the side cards are whatever
	// singles survive dropping the lowest two.
	side := eraseLowestTwo(colorless ^ twos)
	return newRanking(Ranking(pairs), compact(twos), compact(side))
}

// straightTop returns the top rank of the best five-card run in a
// 13-bit rank bitmap, or -1 if there is none. The ace is duplicated
// below the two so the wheel is found by the same cascade.
func straightTop(ranks uint32) int {
	b := ranks<<1 | ranks>>12
	run := b & (b << 1)
	run &= run << 2
	run &= b << 4
	if run == 0 {
		return -1
	}
	return bits.Len32(run) - 2
}

// compact folds a counter-plane bitmap (one bit per 3-bit rank group)
// down to a 13-bit rank bitmap.
func compact(spaced uint64) uint32 {
	var ranks uint32
	for spaced != 0 {
		ranks |= 1 << uint(bits.TrailingZeros64(spaced)/3-1)
		spaced &= spaced - 1
	}
	return ranks
}

// topRankBit returns the 13-bit rank bit of the highest rank in a
// non-empty counter-plane bitmap.
func topRankBit(spaced uint64) uint32 {
	return 1 << uint((bits.Len64(spaced)-1)/3-1)
}

func eraseLowestTwo(v uint64) uint64 {
	v &= v - 1
	v &= v - 1
	return v
}
