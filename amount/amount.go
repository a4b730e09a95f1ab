package amount

import (
	"math"
	"strconv"
)

const (
	// MicroPerToken is the number of atomic units in one token.
	// All accounting is done in atomic units; tokens only appear in output.
	MicroPerToken = 1_000_000

	// AccScale scales the global reward-per-hashpower accumulator.
	AccScale uint64 = 1_000_000_000_000 // 1e12
)

type Unit int

const (
	MegaToken  Unit = 6
	KiloToken  Unit = 3
	Token      Unit = 0
	MicroToken Unit = -6
)

func (u Unit) String() string {
	switch u {
	case MegaToken:
		return "MBITS"
	case KiloToken:
		return "kBITS"
	case Token:
		return "BITS"
	case MicroToken:
		return "μBITS"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " BITS"
	}
}

// Amount is the atomic unit of the emitted token, 1e-6 of a whole token.
type Amount uint64

func (a Amount) ToUnit(u Unit) float64 {
	return float64(a) / math.Pow10(int(u+6))
}

func (a Amount) ToTokens() float64 {
	return a.ToUnit(Token)
}

func (a Amount) Format(u Unit) string {
	return strconv.FormatFloat(a.ToUnit(u), 'f', -1, 64) + " " + u.String()
}

// String is the equivalent of calling Format with Token.
func (a Amount) String() string {
	return a.Format(Token)
}
