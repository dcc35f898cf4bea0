package types

import (
	fmt "fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VaultRecord is the authoritative accounting record for a single vault.
//
// TotalUnderlying is the accounted sum of all deposits and mints minus all
// withdrawals and redemptions. It is not re-derived from a live custody
// balance; the keeper mutates it exclusively inside the four operations.
type VaultRecord struct {
	// Admin is the bech32 address of the vault administrator.
	Admin string `json:"admin"`
	// ShareDenom is the denom of the vault's share token and doubles as the
	// vault's identity.
	ShareDenom string `json:"share_denom"`
	// UnderlyingAsset is the single denom the vault accepts. Immutable.
	UnderlyingAsset string `json:"underlying_asset"`
	// TotalUnderlying is the accounted total of underlying units held.
	TotalUnderlying sdkmath.Int `json:"total_underlying"`
	// Paused refuses all four operations while set.
	Paused bool `json:"paused"`
}

// NewVaultRecord creates a new vault record with a zero accounted total.
func NewVaultRecord(admin, shareDenom, underlyingAsset string) VaultRecord {
	return VaultRecord{
		Admin:           admin,
		ShareDenom:      shareDenom,
		UnderlyingAsset: underlyingAsset,
		TotalUnderlying: sdkmath.ZeroInt(),
	}
}

// Validate performs basic validation on the vault record fields.
func (v VaultRecord) Validate() error {
	if _, err := sdk.AccAddressFromBech32(v.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	if err := sdk.ValidateDenom(v.ShareDenom); err != nil {
		return fmt.Errorf("invalid share denom: %w", err)
	}
	if err := sdk.ValidateDenom(v.UnderlyingAsset); err != nil {
		return fmt.Errorf("invalid underlying asset denom: %s", v.UnderlyingAsset)
	}
	if v.ShareDenom == v.UnderlyingAsset {
		return fmt.Errorf("share denom and underlying asset must differ: %s", v.ShareDenom)
	}
	if v.TotalUnderlying.IsNil() || v.TotalUnderlying.IsNegative() {
		return fmt.Errorf("total underlying must be a non-negative integer")
	}
	return nil
}

// ValidateAcceptedCoin checks that a coin matches the vault's underlying asset.
func (v VaultRecord) ValidateAcceptedCoin(coin sdk.Coin) error {
	if coin.Denom != v.UnderlyingAsset {
		return fmt.Errorf("denom %q does not match vault underlying asset %q", coin.Denom, v.UnderlyingAsset)
	}
	return nil
}

// CustodyAddress returns the address holding the vault's underlying assets.
func (v VaultRecord) CustodyAddress() sdk.AccAddress {
	return GetVaultAddress(v.ShareDenom)
}
