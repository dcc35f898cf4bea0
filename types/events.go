package types

import (
	"cosmossdk.io/core/event"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Event types emitted by the vault module. Events are append-only and
// consumed by external indexers.
const (
	EventTypeVaultCreated = "vault_created"
	EventTypeDeposit      = "vault_deposit"
	EventTypeMint         = "vault_mint"
	EventTypeWithdraw     = "vault_withdraw"
	EventTypeRedeem       = "vault_redeem"
	EventTypePauseToggled = "vault_pause_toggled"

	AttributeKeyVault      = "vault"
	AttributeKeyAdmin      = "admin"
	AttributeKeyUnderlying = "underlying_asset"
	AttributeKeyCaller     = "caller"
	AttributeKeyReceiver   = "receiver"
	AttributeKeyAssets     = "assets"
	AttributeKeyShares     = "shares"
	AttributeKeyPaused     = "paused"
)

// NewVaultCreatedAttrs builds the attributes for an EventTypeVaultCreated event.
func NewVaultCreatedAttrs(vault VaultRecord) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyVault, Value: vault.ShareDenom},
		{Key: AttributeKeyAdmin, Value: vault.Admin},
		{Key: AttributeKeyUnderlying, Value: vault.UnderlyingAsset},
	}
}

// NewDepositAttrs builds the attributes for an EventTypeDeposit or
// EventTypeMint event.
func NewDepositAttrs(vaultID, caller string, assets, shares sdk.Coin) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyVault, Value: vaultID},
		{Key: AttributeKeyCaller, Value: caller},
		{Key: AttributeKeyAssets, Value: assets.String()},
		{Key: AttributeKeyShares, Value: shares.String()},
	}
}

// NewWithdrawAttrs builds the attributes for an EventTypeWithdraw or
// EventTypeRedeem event.
func NewWithdrawAttrs(vaultID, caller, receiver string, assets, shares sdk.Coin) []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyVault, Value: vaultID},
		{Key: AttributeKeyCaller, Value: caller},
		{Key: AttributeKeyReceiver, Value: receiver},
		{Key: AttributeKeyAssets, Value: assets.String()},
		{Key: AttributeKeyShares, Value: shares.String()},
	}
}

// NewPauseToggledAttrs builds the attributes for an EventTypePauseToggled event.
func NewPauseToggledAttrs(vaultID, admin string, paused bool) []event.Attribute {
	value := "false"
	if paused {
		value = "true"
	}
	return []event.Attribute{
		{Key: AttributeKeyVault, Value: vaultID},
		{Key: AttributeKeyAdmin, Value: admin},
		{Key: AttributeKeyPaused, Value: value},
	}
}
