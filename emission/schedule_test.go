package emission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Reference deployment: 21M tokens (1e6 atomic units each) over 22
// halvings of 3,024,000 ticks.
const (
	refSupply   = uint64(21_000_000_000000)
	refInterval = uint64(3_024_000)
	refHalvings = uint(22)
	refRate     = uint64(3_472_224)
)

func TestInitialRewardRate(t *testing.T) {
	require.Equal(t, refRate, InitialRewardRate(refSupply, refInterval, refHalvings))

	require.Equal(t, uint64(0), InitialRewardRate(refSupply, 0, refHalvings))
	require.Equal(t, uint64(0), InitialRewardRate(refSupply, refInterval, 1))
}

func TestRateAfterHalvings(t *testing.T) {
	require.Equal(t, refRate, RateAfterHalvings(refRate, 0))
	require.Equal(t, uint64(1_736_112), RateAfterHalvings(refRate, 1))
	require.Equal(t, uint64(868_056), RateAfterHalvings(refRate, 2))
	require.Equal(t, uint64(0), RateAfterHalvings(refRate, 64))
	require.Equal(t, uint64(0), RateAfterHalvings(refRate, 200))
}

func TestRatesNeverIncrease(t *testing.T) {
	prev := RateAfterHalvings(refRate, 0)
	for h := uint64(1); h <= 64; h++ {
		r := RateAfterHalvings(refRate, h)
		require.LessOrEqual(t, r, prev, "halving %d", h)
		prev = r
	}
	require.Equal(t, uint64(0), prev)
}

func TestHalvings(t *testing.T) {
	start := uint64(1000)
	require.Equal(t, uint64(0), Halvings(start, start, refInterval))
	require.Equal(t, uint64(0), Halvings(start+refInterval-1, start, refInterval))
	require.Equal(t, uint64(1), Halvings(start+refInterval, start, refInterval))
	require.Equal(t, uint64(3), Halvings(start+3*refInterval, start, refInterval))
	require.Equal(t, uint64(0), Halvings(start-1, start, refInterval))
	require.Equal(t, uint64(0), Halvings(start+refInterval, start, 0))
}

func TestMaxHalvingsClampsRatesAt(t *testing.T) {
	require.Equal(t, uint64(22), MaxHalvings(refRate))

	// Far past the end of the schedule the halving count pins at the max
	// and the rate is zero.
	h, r := RatesAt(1_000*refInterval, 0, refInterval, refRate)
	require.Equal(t, uint64(22), h)
	require.Equal(t, uint64(0), r)

	h, r = RatesAt(5*refInterval, 0, refInterval, refRate)
	require.Equal(t, uint64(5), h)
	require.Equal(t, refRate>>5, r)
}

func TestSummarize(t *testing.T) {
	s := Summarize(refSupply, refInterval, refHalvings)

	require.Equal(t, refRate, s.InitialRewardRate)
	require.Equal(t, uint64(10_500_005_376_000), s.HalvingRewards[0])
	require.Equal(t, uint64(5_250_002_688_000), s.HalvingRewards[1])
	require.Equal(t, uint64(2_625_001_344_000), s.HalvingRewards[2])

	// Flooring each halved rate leaves the emitted total just under the cap.
	require.Equal(t, uint64(20_999_974_464_000), s.EmittedSupply)
	require.LessOrEqual(t, s.EmittedSupply, refSupply)

	require.Equal(t, uint64(14), s.DaysPerHalving)
	require.Equal(t, uint64(308), s.TotalEmissionDays)
}
