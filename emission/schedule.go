// Package emission computes the halving schedule: which halving a tick
// falls in, the reward rate in force there, and the initial rate needed to
// distribute a capped supply over a fixed number of halvings.
package emission

import (
	"math/big"
	"math/bits"

	"github.com/begreatfulforreal/ponzimon-program/config"
)

// Halvings returns how many whole halving intervals have elapsed since the
// start tick.
func Halvings(tick, startTick, halvingInterval uint64) uint64 {
	if halvingInterval == 0 || tick <= startTick {
		return 0
	}
	return (tick - startTick) / halvingInterval
}

// MaxHalvings is the number of halvings after which the rate has shifted
// to zero; clamping here keeps the shift width meaningful.
func MaxHalvings(initialRewardRate uint64) uint64 {
	if initialRewardRate == 0 {
		return 0
	}
	return uint64(bits.Len64(initialRewardRate))
}

// RateAfterHalvings floor-halves the initial rate once per halving.
// Shifting past the bit width yields zero, the terminal state.
func RateAfterHalvings(initial, halvings uint64) uint64 {
	if halvings >= 64 {
		return 0
	}
	return initial >> halvings
}

// RatesAt resolves the halving count and reward rate in force at a tick.
// The rate is a pure function of elapsed ticks: a span crossing several
// boundaries is still priced at the single final rate, a discrete jump at
// the boundary rather than per-segment pricing.
func RatesAt(tick, startTick, halvingInterval, initialRewardRate uint64) (halvings, rate uint64) {
	halvings = Halvings(tick, startTick, halvingInterval)
	if max := MaxHalvings(initialRewardRate); halvings > max {
		halvings = max
	}
	return halvings, RateAfterHalvings(initialRewardRate, halvings)
}

// InitialRewardRate derives the per-tick rate that emits totalSupply over
// numberOfHalvings halving intervals:
//
//	rate = ceil(supply * 2^(n-1) / (interval * (2^n - 2)))
//
// i.e. the geometric series sum(interval * rate >> i) reaches the supply.
func InitialRewardRate(totalSupply, halvingInterval uint64, numberOfHalvings uint) uint64 {
	if halvingInterval == 0 || numberOfHalvings < 2 {
		return 0
	}
	num := new(big.Int).SetUint64(totalSupply)
	num.Lsh(num, numberOfHalvings-1)

	den := new(big.Int).Lsh(big.NewInt(1), numberOfHalvings)
	den.Sub(den, big.NewInt(2))
	den.Mul(den, new(big.Int).SetUint64(halvingInterval))

	rate, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 {
		rate.Add(rate, big.NewInt(1))
	}
	return rate.Uint64()
}

// Summary describes the full emission run implied by a parameter set.
type Summary struct {
	InitialRewardRate uint64
	RewardRates       []uint64
	HalvingRewards    []uint64
	EmittedSupply     uint64
	DaysPerHalving    uint64
	TotalEmissionDays uint64
}

// Summarize lays out the whole schedule for a proposed parameter set; the
// emitted total lands slightly under the cap because each rate is floored.
func Summarize(totalSupply, halvingInterval uint64, numberOfHalvings uint) Summary {
	rate := InitialRewardRate(totalSupply, halvingInterval, numberOfHalvings)
	s := Summary{
		InitialRewardRate: rate,
		RewardRates:       make([]uint64, numberOfHalvings),
		HalvingRewards:    make([]uint64, numberOfHalvings),
		DaysPerHalving:    halvingInterval * config.TickMillis / millisPerDay,
	}
	for i := uint(0); i < numberOfHalvings; i++ {
		r := RateAfterHalvings(rate, uint64(i))
		s.RewardRates[i] = r
		s.HalvingRewards[i] = r * halvingInterval
		s.EmittedSupply += r * halvingInterval
	}
	s.TotalEmissionDays = uint64(numberOfHalvings) * s.DaysPerHalving
	return s
}

const millisPerDay = 24 * 60 * 60 * 1000
