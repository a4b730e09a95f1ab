package config

const (
	// Default economic parameters seeded at initialization.
	DefaultBurnRatePercent      = 75
	DefaultReferralFeePermille  = 25 // 2.5%
	DefaultCooldownTicks        = 108_000
	DefaultDustThresholdDivisor = 1000 // remaining-supply floor of 0.1%

	// Range bounds enforced on parameter updates.
	MaxReferralFeePermille = 50 // 5.0%
	MaxBurnRatePercent     = 100

	// OnboardingFeeNative is charged in native units when a participant
	// purchases the initial facility, paid into the fees wallet.
	OnboardingFeeNative = 250_000_000

	// TickMillis converts ticks into wall time for schedule summaries.
	TickMillis = 400
)
