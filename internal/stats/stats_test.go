package stats

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-eval/poker"
)

func TestExpectedCountsSum(t *testing.T) {
	var sum uint64
	for _, n := range Expected {
		sum += n
	}
	require.Equal(t, uint64(TotalCombinations), sum)
}

func TestSampleTalliesEveryHand(t *testing.T) {
	r := &Runner{Workers: 2, Clock: quartz.NewMock(t)}

	res, err := r.Sample(context.Background(), 1000, 7)
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), res.Total)
	var sum uint64
	for _, n := range res.Counts {
		sum += n
	}
	assert.Equal(t, res.Total, sum)
}

func TestSampleDeterministic(t *testing.T) {
	r := &Runner{Workers: 2, Clock: quartz.NewMock(t)}

	a, err := r.Sample(context.Background(), 500, 42)
	require.NoError(t, err)
	b, err := r.Sample(context.Background(), 500, 42)
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
}

func TestSampleCancelled(t *testing.T) {
	r := &Runner{Workers: 1, Clock: quartz.NewMock(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Sample(ctx, 1<<20, 1)
	require.Error(t, err)
}

func TestEnumerateFromHighestStratum(t *testing.T) {
	// The lowest card 8S leaves exactly one combination: the seven
	// top spades, a straight flush.
	var tally [9]uint64
	enumerateFrom(poker.NewCard(poker.Eight, poker.Spades), &tally)

	var total uint64
	for _, n := range tally {
		total += n
	}
	require.Equal(t, uint64(1), total)
	assert.Equal(t, uint64(1), tally[poker.StraightFlush])
}

func TestResultRate(t *testing.T) {
	res := Result{Total: 1000, Elapsed: 2 * time.Second}
	assert.InDelta(t, 500.0, res.Rate(), 0.001)

	assert.Zero(t, Result{}.Rate())
}

func TestFractions(t *testing.T) {
	res := Result{Total: 100}
	res.Counts[poker.OnePair] = 44
	assert.InDelta(t, 0.44, res.Fraction(poker.OnePair), 1e-9)

	// One pair is about 43.8% of all seven-card hands.
	assert.InDelta(t, 0.438, ExpectedFraction(poker.OnePair), 0.001)
}
