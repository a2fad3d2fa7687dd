// Package stats surveys the seven-card category distribution by
// driving the ranking kernel over sampled or exhaustively enumerated
// hands. It fans the work across a worker pool; the evaluator itself
// stays single-threaded, each worker just holds its own values.
package stats

import (
	"context"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-eval/internal/randutil"
	"github.com/lox/holdem-eval/poker"
)

// TotalCombinations is C(52,7), the number of distinct seven-card
// hands.
const TotalCombinations = 133784560

// Expected holds the exact seven-card hand counts per category over
// all C(52,7) combinations.
var Expected = [9]uint64{
	poker.HighCard:      23294460,
	poker.OnePair:       58627800,
	poker.TwoPairs:      31433400,
	poker.ThreeOfAKind:  6461620,
	poker.Straight:      6180020,
	poker.Flush:         4047644,
	poker.FullHouse:     3473184,
	poker.FourOfAKind:   224848,
	poker.StraightFlush: 41584,
}

// Result is the outcome of a distribution run.
type Result struct {
	Counts  [9]uint64 // indexed by poker.Ranking
	Total   uint64
	Elapsed time.Duration
}

// Rate returns evaluated hands per second.
func (r Result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Total) / r.Elapsed.Seconds()
}

// Fraction returns the share of hands that landed in the category.
func (r Result) Fraction(c poker.Ranking) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Counts[c]) / float64(r.Total)
}

// ExpectedFraction returns the combinatorial share of the category.
func ExpectedFraction(c poker.Ranking) float64 {
	return float64(Expected[c]) / float64(TotalCombinations)
}

// Runner drives distribution runs. The zero value uses one worker per
// CPU and the real clock.
type Runner struct {
	// Workers caps the worker pool; zero means GOMAXPROCS.
	Workers int
	// Clock is swappable for tests.
	Clock quartz.Clock
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (r *Runner) clock() quartz.Clock {
	if r.Clock != nil {
		return r.Clock
	}
	return quartz.NewReal()
}

// Sample deals n random seven-card hands from deterministic decks and
// tallies their categories. The same (n, seed) pair always produces
// the same tallies for a given worker count.
func (r *Runner) Sample(ctx context.Context, n uint64, seed int64) (Result, error) {
	clock := r.clock()
	start := clock.Now()

	workers := r.workers()
	tallies := make([][9]uint64, workers)

	// Derive one deck seed per worker from the run seed.
	seeds := make([]int64, workers)
	rng := randutil.New(seed)
	for w := range seeds {
		seeds[w] = rng.Int64()
	}

	g, ctx := errgroup.WithContext(ctx)
	per := n / uint64(workers)
	for w := 0; w < workers; w++ {
		quota := per
		if w == 0 {
			quota += n % uint64(workers)
		}
		tally := &tallies[w]
		deckSeed := seeds[w]

		g.Go(func() error {
			deck := poker.NewDeckSeeded(deckSeed)
			for i := uint64(0); i < quota; i++ {
				if i%8192 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				deck.Shuffle()
				var cs poker.CardSet
				for j := 0; j < 7; j++ {
					cs.Add(deck.Deal())
				}
				tally[cs.RankTexasHoldem().Ranking()]++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return r.merge(tallies, clock.Since(start)), nil
}

// Enumerate classifies every C(52,7) combination exactly once,
// splitting the work by lowest card.
func (r *Runner) Enumerate(ctx context.Context) (Result, error) {
	clock := r.clock()
	start := clock.Now()

	workers := r.workers()
	tallies := make([][9]uint64, workers)

	// Lowest-card strata shrink steeply in size, so hand them out
	// round robin to even the load.
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		first := w
		tally := &tallies[w]

		g.Go(func() error {
			for c0 := first; c0 <= poker.NumCards-7; c0 += workers {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				enumerateFrom(poker.Card(c0), tally)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return r.merge(tallies, clock.Since(start)), nil
}

// enumerateFrom tallies every combination whose lowest card is c0.
// Card sets are values, so each nesting level extends a copy.
func enumerateFrom(c0 poker.Card, tally *[9]uint64) {
	var s0 poker.CardSet
	s0.Add(c0)
	for c1 := c0 + 1; c1 < poker.NumCards; c1++ {
		s1 := s0
		s1.Add(c1)
		for c2 := c1 + 1; c2 < poker.NumCards; c2++ {
			s2 := s1
			s2.Add(c2)
			for c3 := c2 + 1; c3 < poker.NumCards; c3++ {
				s3 := s2
				s3.Add(c3)
				for c4 := c3 + 1; c4 < poker.NumCards; c4++ {
					s4 := s3
					s4.Add(c4)
					for c5 := c4 + 1; c5 < poker.NumCards; c5++ {
						s5 := s4
						s5.Add(c5)
						for c6 := c5 + 1; c6 < poker.NumCards; c6++ {
							s6 := s5
							s6.Add(c6)
							tally[s6.RankTexasHoldem().Ranking()]++
						}
					}
				}
			}
		}
	}
}

func (r *Runner) merge(tallies [][9]uint64, elapsed time.Duration) Result {
	var res Result
	for _, tally := range tallies {
		for c, n := range tally {
			res.Counts[c] += n
			res.Total += n
		}
	}
	res.Elapsed = elapsed
	return res
}
