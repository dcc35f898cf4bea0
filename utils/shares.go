package utils

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/provlabs/vaultcore/types"
)

// Virtual-offset parameters.
//
// VirtualAssets and VirtualShares are added to the totals in all conversions
// to harden against first-depositor inflation/rounding attacks: an attacker
// seeding a fresh vault with a dust deposit can no longer capture a
// disproportionate claim, because one virtual unit sits on each side of the
// ratio. In the steady state the offsets are rounding noise.
var (
	VirtualAssets = math.NewInt(1)
	VirtualShares = math.NewInt(1)
)

// SharesFromAssets returns the number of shares that correspond to a given
// amount of assets, at the exchange rate implied by the vault totals.
//
// Formula:
//
//	if totalAssets == 0:
//	    shares = assets                                   (1:1 bootstrap)
//	else:
//	    shares = round( assets * (totalShares + VirtualShares)
//	                           / (totalAssets + VirtualAssets), mode )
//
// The rounding mode is the anti-exploitation contract: Floor when the caller
// receives shares (deposit), Ceil when the caller burns them (withdraw).
func SharesFromAssets(assets, totalAssets, totalShares math.Int, mode RoundingMode) (math.Int, error) {
	if assets.IsNegative() || totalAssets.IsNegative() || totalShares.IsNegative() {
		return math.Int{}, errors.Wrap(types.ErrInvalidRequest, "negative values not allowed")
	}
	if totalAssets.IsZero() {
		return assets, nil
	}
	return MulDivRound(assets, totalShares.Add(VirtualShares), totalAssets.Add(VirtualAssets), mode)
}

// AssetsFromShares returns the amount of assets that correspond to a given
// number of shares, at the exchange rate implied by the vault totals.
//
// Formula:
//
//	if totalAssets == 0:
//	    assets = shares                                   (1:1 bootstrap)
//	else:
//	    assets = round( shares * (totalAssets + VirtualAssets)
//	                           / (totalShares + VirtualShares), mode )
//
// Floor when the caller receives assets (redeem), Ceil when the caller pays
// them (mint). The zero branch keys off totalAssets, the accounted counter,
// so the divisor totalShares+VirtualShares is never zero here.
func AssetsFromShares(shares, totalAssets, totalShares math.Int, mode RoundingMode) (math.Int, error) {
	if shares.IsNegative() || totalAssets.IsNegative() || totalShares.IsNegative() {
		return math.Int{}, errors.Wrap(types.ErrInvalidRequest, "negative values not allowed")
	}
	if totalAssets.IsZero() {
		return shares, nil
	}
	return MulDivRound(shares, totalAssets.Add(VirtualAssets), totalShares.Add(VirtualShares), mode)
}
