package types

import "cosmossdk.io/errors"

// Stable error kinds for the vault accounting core. Integrators branch on
// these with errors.IsOf, so they must never be collapsed or renumbered.
var (
	ErrInvalidRequest     = errors.Register(ModuleName, 2, "invalid request")
	ErrAssetMismatch      = errors.Register(ModuleName, 3, "underlying asset mismatch")
	ErrExceedsMaxDeposit  = errors.Register(ModuleName, 4, "deposit exceeds max deposit limit")
	ErrExceedsMaxMint     = errors.Register(ModuleName, 5, "mint exceeds max mint limit")
	ErrExceedsMaxWithdraw = errors.Register(ModuleName, 6, "withdraw exceeds max withdraw limit")
	ErrExceedsMaxRedeem   = errors.Register(ModuleName, 7, "redeem exceeds max redeem limit")
	ErrInsufficientShares = errors.Register(ModuleName, 8, "insufficient share balance")
	ErrDivisionByZero     = errors.Register(ModuleName, 9, "division by zero")
	ErrNotOwner           = errors.Register(ModuleName, 10, "caller does not own account")
	ErrAmountOverflow     = errors.Register(ModuleName, 11, "amount out of range")
	ErrVaultNotFound      = errors.Register(ModuleName, 12, "vault not found")
	ErrVaultPaused        = errors.Register(ModuleName, 13, "vault is paused")
	ErrBalanceMismatch    = errors.Register(ModuleName, 14, "accounted total diverges from custody balance")
)
