package utils

import (
	"math/big"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/provlabs/vaultcore/types"
)

// RoundingMode selects how MulDivRound treats a fractional remainder.
//
// Amounts are non-negative throughout the module, so RoundTrunc behaves as
// RoundFloor and RoundExpand as RoundCeil; all four are exported for
// interface completeness.
type RoundingMode uint8

const (
	// RoundFloor rounds toward negative infinity (user-favorable).
	RoundFloor RoundingMode = iota
	// RoundCeil rounds toward positive infinity (protocol-favorable).
	RoundCeil
	// RoundTrunc rounds toward zero.
	RoundTrunc
	// RoundExpand rounds away from zero.
	RoundExpand
)

// MaxAmount is the largest representable amount, the top of math.Int's
// 256-bit range. Unbounded limits report this value.
var MaxAmount = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))

// MulDivRound computes a*b/c with the given rounding mode.
//
// The intermediate product is taken over big.Int, so a*b cannot overflow
// even when it exceeds 256 bits; only the final quotient must fit back into
// math.Int's range. Returns ErrDivisionByZero when c is zero and
// ErrInvalidRequest for negative inputs.
func MulDivRound(a, b, c math.Int, mode RoundingMode) (math.Int, error) {
	if a.IsNegative() || b.IsNegative() || c.IsNegative() {
		return math.Int{}, errors.Wrap(types.ErrInvalidRequest, "negative values not allowed")
	}
	if c.IsZero() {
		return math.Int{}, errors.Wrapf(types.ErrDivisionByZero, "%s * %s / 0", a, b)
	}

	num := new(big.Int).Mul(a.BigInt(), b.BigInt())
	quo, rem := new(big.Int).QuoRem(num, c.BigInt(), new(big.Int))

	if rem.Sign() != 0 && (mode == RoundCeil || mode == RoundExpand) {
		quo.Add(quo, big.NewInt(1))
	}

	if quo.BitLen() > math.MaxBitLen {
		return math.Int{}, errors.Wrapf(types.ErrAmountOverflow, "%s * %s / %s", a, b, c)
	}
	return math.NewIntFromBigInt(quo), nil
}
