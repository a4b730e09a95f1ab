package utils

import "github.com/begreatfulforreal/ponzimon-program/amount"

func TokensToMicro(tokens float64) uint64 {
	return uint64(tokens * amount.MicroPerToken)
}

func MicroToTokens(micro uint64) float64 {
	return float64(micro) / amount.MicroPerToken
}
