package amount

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer. The reward-per-hashpower
// accumulator outgrows 64 bits: it carries reward * AccScale.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

func U128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0 or 1 depending on whether u is less than, equal to,
// or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Add returns u+v, saturating at the 128-bit maximum on overflow.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, carry := bits.Add64(u.Hi, v.Hi, carry)
	if carry != 0 {
		return Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	}
	return Uint128{Hi: hi, Lo: lo}
}

// SatSub returns u-v, saturating at zero when v > u.
func (u Uint128) SatSub(v Uint128) Uint128 {
	if u.Cmp(v) < 0 {
		return Uint128{}
	}
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul64 returns u*v, saturating at the 128-bit maximum on overflow.
func (u Uint128) Mul64(v uint64) Uint128 {
	hi1, lo := bits.Mul64(u.Lo, v)
	hi2, overflow := bits.Mul64(u.Hi, v)
	if hi2 != 0 {
		return Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	}
	hi, carry := bits.Add64(hi1, overflow, 0)
	if carry != 0 {
		return Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	}
	return Uint128{Hi: hi, Lo: lo}
}

// Div64 returns u/v. Division by zero returns zero rather than panicking;
// callers guard the divisor but stored state could carry a zero through.
func (u Uint128) Div64(v uint64) Uint128 {
	if v == 0 {
		return Uint128{}
	}
	qhi := u.Hi / v
	rem := u.Hi % v
	qlo, _ := bits.Div64(rem, u.Lo, v)
	return Uint128{Hi: qhi, Lo: qlo}
}

// Sat64 collapses u to uint64, saturating when the high word is set.
func (u Uint128) Sat64() uint64 {
	if u.Hi != 0 {
		return math.MaxUint64
	}
	return u.Lo
}

func (u Uint128) big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.big().String()
}

// MarshalJSON encodes the value as a decimal string, the same way the
// store serializes every other oversized counter.
func (u Uint128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("uint128: expected quoted decimal, got %s", s)
	}
	b, ok := new(big.Int).SetString(s[1:len(s)-1], 10)
	if !ok || b.Sign() < 0 || b.BitLen() > 128 {
		return fmt.Errorf("uint128: invalid value %s", s)
	}
	u.Lo = b.Uint64()
	u.Hi = new(big.Int).Rsh(b, 64).Uint64()
	return nil
}

// SatAdd returns a+b, saturating at the 64-bit maximum.
func SatAdd(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return s
}

// SatSub returns a-b, saturating at zero.
func SatSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// MulDiv returns a*b/den using full 128-bit intermediate precision,
// saturating at the 64-bit maximum. den must be non-zero.
func MulDiv(a, b, den uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if den == 0 {
		return 0
	}
	if hi >= den {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, den)
	return q
}
