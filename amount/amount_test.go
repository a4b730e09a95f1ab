package amount

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountToTokens(t *testing.T) {
	require.Equal(t, 1.0, Amount(MicroPerToken).ToTokens())
	require.Equal(t, 0.5, Amount(500_000).ToTokens())
	require.Equal(t, 21_000_000.0, Amount(21_000_000_000000).ToTokens())
}

func TestAmountFormat(t *testing.T) {
	a := Amount(1_500_000)
	require.Equal(t, "1.5 BITS", a.String())
	require.Equal(t, "0.0015 kBITS", a.Format(KiloToken))
	require.Equal(t, "1500000 μBITS", a.Format(MicroToken))
}

func TestUnitString(t *testing.T) {
	require.Equal(t, "MBITS", MegaToken.String())
	require.Equal(t, "BITS", Token.String())
	require.Equal(t, "1e2 BITS", Unit(2).String())
}
