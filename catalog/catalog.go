// Package catalog holds the static facility and miner tier tables. Tier 0
// of each is the free starter tier granted at onboarding.
package catalog

import (
	"fmt"

	"github.com/begreatfulforreal/ponzimon-program/types"
)

// FacilityTier is one row of the facility table.
type FacilityTier struct {
	MinerCapacity uint8
	PowerOutput   uint64
	Cost          uint64
}

// MinerTier is one row of the miner table.
type MinerTier struct {
	Hashrate         uint64
	PowerConsumption uint64
	Cost             uint64
}

// Facility tier indices.
const (
	CrampedBedroom uint8 = iota
	LowProfileStorage
	HiddenPowerhouse
	CustomGarage
	HighRiseApartment
)

// Miner tier indices.
const (
	Toaster uint8 = iota
	RaspberryPi
	Notebook
	GamerRig
	GPURack
	ASICSolo
	ASICRack
	HydroFarm
	TerraMachine
	QuantumCluster
)

// Costs are atomic units (1 token = 1e6).
var facilities = [...]FacilityTier{
	{2, 15, 80_000000},      // Cramped Bedroom
	{4, 60, 240_000000},     // Low Profile Storage
	{6, 200, 720_000000},    // Hidden Powerhouse
	{9, 600, 1800_000000},   // Custom Garage
	{12, 2000, 4800_000000}, // High-rise Apartment
}

var miners = [...]MinerTier{
	{1_500, 3, 40_000000},            // Toaster
	{6_000, 6, 120_000000},           // Raspberry Pi
	{25_000, 15, 350_000000},         // Notebook
	{60_000, 30, 700_000000},         // Gamer Rig
	{150_000, 60, 1_300_000000},      // GPU Rack
	{400_000, 120, 2_500_000000},     // ASIC Solo
	{800_000, 200, 5_000_000000},     // ASIC Rack
	{1_500_000, 400, 9_000_000000},   // Hydro Farm
	{3_500_000, 800, 18_000_000000},  // Terra Machine
	{6_000_000, 1500, 40_000_000000}, // Quantum Cluster
}

// Facility returns the tier row, or ErrInvalidFacilityType when the index
// is out of range.
func Facility(tier uint8) (FacilityTier, error) {
	if int(tier) >= len(facilities) {
		return FacilityTier{}, fmt.Errorf("facility tier %d: %w", tier, types.ErrInvalidFacilityType)
	}
	return facilities[tier], nil
}

// Miner returns the tier row, or ErrInvalidMinerType when the index is out
// of range.
func Miner(tier uint8) (MinerTier, error) {
	if int(tier) >= len(miners) {
		return MinerTier{}, fmt.Errorf("miner tier %d: %w", tier, types.ErrInvalidMinerType)
	}
	return miners[tier], nil
}

// MaxFacilityTier is the highest purchasable facility tier index.
func MaxFacilityTier() uint8 {
	return uint8(len(facilities) - 1)
}

// MinerTierCount is the number of miner tiers on sale.
func MinerTierCount() int {
	return len(miners)
}

// StarterFacility is the tier-0 grant every participant onboards with.
func StarterFacility() types.Facility {
	return types.Facility{
		FacilityType:       CrampedBedroom,
		TotalMinerCapacity: facilities[CrampedBedroom].MinerCapacity,
		PowerOutput:        facilities[CrampedBedroom].PowerOutput,
	}
}

// StarterMiner is the tier-0 miner racked at onboarding.
func StarterMiner() types.Miner {
	return types.Miner{
		MinerType:        Toaster,
		Hashrate:         miners[Toaster].Hashrate,
		PowerConsumption: miners[Toaster].PowerConsumption,
	}
}
