package types

import (
	context "context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper defines the asset-custody functionality needed by the vault
// module: moving underlying assets between accounts and reading balances.
// Transfers must be atomic with respect to the caller's transaction.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// ShareKeeper defines the share-token functionality needed by the vault
// module. The vault never mutates share supply directly; it instructs the
// collaborator to mint or burn and trusts the resulting totals.
type ShareKeeper interface {
	MintTo(ctx context.Context, owner sdk.AccAddress, shares sdk.Coin) error
	BurnFrom(ctx context.Context, owner sdk.AccAddress, shares sdk.Coin) error
	GetSupply(ctx context.Context, denom string) sdk.Coin
	GetBalance(ctx context.Context, owner sdk.AccAddress, denom string) sdk.Coin
}

// OwnershipKeeper resolves and verifies caller ownership before
// custody-sensitive paths (burn, withdraw) are allowed against an account.
// Implementations return ErrNotOwner when the caller does not control the
// account for the given vault.
type OwnershipKeeper interface {
	VerifyOwnership(ctx context.Context, owner sdk.AccAddress, shareDenom string) error
}
