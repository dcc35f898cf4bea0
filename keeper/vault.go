package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/vaultcore/types"
)

// CreateVault creates a vault bound to a single underlying asset, freezes
// its strategy table, and emits a vault_created event. The ledger record and
// the table are created atomically: a failure on either side leaves no
// partial vault behind.
func (k *Keeper) CreateVault(ctx context.Context, admin sdk.AccAddress, shareDenom, underlyingAsset string, overrides StrategyOverrides) (types.VaultRecord, error) {
	vault := types.NewVaultRecord(admin.String(), shareDenom, underlyingAsset)
	if err := vault.Validate(); err != nil {
		return types.VaultRecord{}, sdkerrors.Wrap(types.ErrInvalidRequest, err.Error())
	}

	found, err := k.HasVault(ctx, shareDenom)
	if err != nil {
		return types.VaultRecord{}, err
	}
	if found {
		return types.VaultRecord{}, sdkerrors.Wrapf(types.ErrInvalidRequest, "vault %s already exists", shareDenom)
	}

	if err := k.registerStrategies(shareDenom, NewStrategyTable(overrides)); err != nil {
		return types.VaultRecord{}, err
	}
	if err := k.Vaults.Set(ctx, shareDenom, vault); err != nil {
		return types.VaultRecord{}, err
	}

	k.logger.Info("created vault", "vault", shareDenom, "underlying", underlyingAsset, "admin", vault.Admin)
	k.emitEvent(ctx, types.EventTypeVaultCreated, types.NewVaultCreatedAttrs(vault)...)
	return vault, nil
}

// Deposit exchanges a caller's underlying assets for newly minted shares.
//
// All guards and the share computation run against pre-operation state; the
// custody move, ledger update, mint, and event apply only after every guard
// passes, so a failure never leaves partial state.
func (k *Keeper) Deposit(ctx context.Context, vaultID string, caller sdk.AccAddress, assets sdk.Coin) (sdk.Coin, error) {
	vault, table, err := k.operableVault(ctx, vaultID)
	if err != nil {
		return sdk.Coin{}, err
	}
	if err := vault.ValidateAcceptedCoin(assets); err != nil {
		return sdk.Coin{}, sdkerrors.Wrap(types.ErrAssetMismatch, err.Error())
	}

	view := k.view(vault)
	max, err := table.MaxDeposit(ctx, view, caller)
	if err != nil {
		return sdk.Coin{}, err
	}
	if assets.Amount.GT(max) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrExceedsMaxDeposit, "deposit %s, max %s", assets.Amount, max)
	}

	sharesAmt, err := table.PreviewDeposit(ctx, view, assets.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}
	shares := sdk.NewCoin(vault.ShareDenom, sharesAmt)

	if err := k.BankKeeper.SendCoins(ctx, caller, vault.CustodyAddress(), sdk.NewCoins(assets)); err != nil {
		return sdk.Coin{}, err
	}
	if err := k.ShareKeeper.MintTo(ctx, caller, shares); err != nil {
		return sdk.Coin{}, err
	}
	vault.TotalUnderlying = vault.TotalUnderlying.Add(assets.Amount)
	if err := k.SetVault(ctx, vault); err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.EventTypeDeposit, types.NewDepositAttrs(vaultID, caller.String(), assets, shares)...)
	return shares, nil
}

// Mint exchanges the assets required at the current rate for an exact number
// of newly minted shares. The asset cost rounds up, so the caller pays at
// least fair value.
func (k *Keeper) Mint(ctx context.Context, vaultID string, caller sdk.AccAddress, shares sdk.Coin) (sdk.Coin, error) {
	vault, table, err := k.operableVault(ctx, vaultID)
	if err != nil {
		return sdk.Coin{}, err
	}
	if shares.Denom != vault.ShareDenom {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrAssetMismatch, "denom %q does not match vault share denom %q", shares.Denom, vault.ShareDenom)
	}

	view := k.view(vault)
	max, err := table.MaxMint(ctx, view, caller)
	if err != nil {
		return sdk.Coin{}, err
	}
	if shares.Amount.GT(max) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrExceedsMaxMint, "mint %s, max %s", shares.Amount, max)
	}

	assetsAmt, err := table.PreviewMint(ctx, view, shares.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}
	assets := sdk.NewCoin(vault.UnderlyingAsset, assetsAmt)

	if err := k.BankKeeper.SendCoins(ctx, caller, vault.CustodyAddress(), sdk.NewCoins(assets)); err != nil {
		return sdk.Coin{}, err
	}
	if err := k.ShareKeeper.MintTo(ctx, caller, shares); err != nil {
		return sdk.Coin{}, err
	}
	vault.TotalUnderlying = vault.TotalUnderlying.Add(assets.Amount)
	if err := k.SetVault(ctx, vault); err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.EventTypeMint, types.NewDepositAttrs(vaultID, caller.String(), assets, shares)...)
	return assets, nil
}

// Withdraw burns the shares required at the current rate to release an exact
// amount of underlying to the receiver. The share cost rounds up, so the
// caller burns at least fair value.
func (k *Keeper) Withdraw(ctx context.Context, vaultID string, caller, receiver sdk.AccAddress, assets sdk.Coin) (sdk.Coin, error) {
	vault, table, err := k.operableVault(ctx, vaultID)
	if err != nil {
		return sdk.Coin{}, err
	}
	if err := vault.ValidateAcceptedCoin(assets); err != nil {
		return sdk.Coin{}, sdkerrors.Wrap(types.ErrAssetMismatch, err.Error())
	}

	view := k.view(vault)
	max, err := table.MaxWithdraw(ctx, view, caller)
	if err != nil {
		return sdk.Coin{}, err
	}
	if assets.Amount.GT(max) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrExceedsMaxWithdraw, "withdraw %s, max %s", assets.Amount, max)
	}
	if assets.Amount.GT(vault.TotalUnderlying) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrExceedsMaxWithdraw, "withdraw %s exceeds accounted total %s", assets.Amount, vault.TotalUnderlying)
	}

	sharesAmt, err := table.PreviewWithdraw(ctx, view, assets.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}
	shares := sdk.NewCoin(vault.ShareDenom, sharesAmt)

	if view.ShareBalance(ctx, caller).LT(sharesAmt) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrInsufficientShares, "need %s %s", sharesAmt, vault.ShareDenom)
	}
	if err := k.OwnershipKeeper.VerifyOwnership(ctx, caller, vault.ShareDenom); err != nil {
		return sdk.Coin{}, err
	}

	if err := k.ShareKeeper.BurnFrom(ctx, caller, shares); err != nil {
		return sdk.Coin{}, err
	}
	vault.TotalUnderlying = vault.TotalUnderlying.Sub(assets.Amount)
	if err := k.SetVault(ctx, vault); err != nil {
		return sdk.Coin{}, err
	}
	if err := k.BankKeeper.SendCoins(ctx, vault.CustodyAddress(), receiver, sdk.NewCoins(assets)); err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.EventTypeWithdraw, types.NewWithdrawAttrs(vaultID, caller.String(), receiver.String(), assets, shares)...)
	return shares, nil
}

// Redeem burns an exact number of the caller's shares and releases the
// corresponding underlying to the receiver. The asset payout rounds down, so
// the caller receives at most fair value.
func (k *Keeper) Redeem(ctx context.Context, vaultID string, caller, receiver sdk.AccAddress, shares sdk.Coin) (sdk.Coin, error) {
	vault, table, err := k.operableVault(ctx, vaultID)
	if err != nil {
		return sdk.Coin{}, err
	}
	if shares.Denom != vault.ShareDenom {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrAssetMismatch, "denom %q does not match vault share denom %q", shares.Denom, vault.ShareDenom)
	}

	view := k.view(vault)
	max, err := table.MaxRedeem(ctx, view, caller)
	if err != nil {
		return sdk.Coin{}, err
	}
	if shares.Amount.GT(max) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrExceedsMaxRedeem, "redeem %s, max %s", shares.Amount, max)
	}
	if view.ShareBalance(ctx, caller).LT(shares.Amount) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrInsufficientShares, "need %s %s", shares.Amount, vault.ShareDenom)
	}
	if err := k.OwnershipKeeper.VerifyOwnership(ctx, caller, vault.ShareDenom); err != nil {
		return sdk.Coin{}, err
	}

	assetsAmt, err := table.PreviewRedeem(ctx, view, shares.Amount)
	if err != nil {
		return sdk.Coin{}, err
	}
	if assetsAmt.GT(vault.TotalUnderlying) {
		return sdk.Coin{}, sdkerrors.Wrapf(types.ErrExceedsMaxRedeem, "payout %s exceeds accounted total %s", assetsAmt, vault.TotalUnderlying)
	}
	assets := sdk.NewCoin(vault.UnderlyingAsset, assetsAmt)

	if err := k.ShareKeeper.BurnFrom(ctx, caller, shares); err != nil {
		return sdk.Coin{}, err
	}
	vault.TotalUnderlying = vault.TotalUnderlying.Sub(assets.Amount)
	if err := k.SetVault(ctx, vault); err != nil {
		return sdk.Coin{}, err
	}
	if err := k.BankKeeper.SendCoins(ctx, vault.CustodyAddress(), receiver, sdk.NewCoins(assets)); err != nil {
		return sdk.Coin{}, err
	}

	k.emitEvent(ctx, types.EventTypeRedeem, types.NewWithdrawAttrs(vaultID, caller.String(), receiver.String(), assets, shares)...)
	return assets, nil
}

// SetPaused toggles the vault's pause flag. Only the vault admin may call it.
func (k *Keeper) SetPaused(ctx context.Context, vaultID string, admin sdk.AccAddress, paused bool) error {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if vault.Admin != admin.String() {
		return sdkerrors.Wrapf(types.ErrNotOwner, "%s is not the admin of vault %s", admin, vaultID)
	}
	if vault.Paused == paused {
		return nil
	}

	vault.Paused = paused
	if err := k.SetVault(ctx, vault); err != nil {
		return err
	}

	k.logger.Info("vault pause toggled", "vault", vaultID, "paused", paused)
	k.emitEvent(ctx, types.EventTypePauseToggled, types.NewPauseToggledAttrs(vaultID, vault.Admin, paused)...)
	return nil
}

// CheckVaultBalance compares the accounted total against the custody balance
// reported by the bank collaborator. The accounted counter is authoritative
// for conversion math; direct transfers into custody that bypass deposit and
// mint make the two diverge, and hosts should run this as a periodic
// invariant check.
func (k *Keeper) CheckVaultBalance(ctx context.Context, vaultID string) error {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return err
	}
	custody := k.BankKeeper.GetBalance(ctx, vault.CustodyAddress(), vault.UnderlyingAsset)
	if !custody.Amount.Equal(vault.TotalUnderlying) {
		return sdkerrors.Wrapf(types.ErrBalanceMismatch, "vault %s accounted %s, custody %s", vaultID, vault.TotalUnderlying, custody.Amount)
	}
	return nil
}

// operableVault loads a vault and its strategy table, refusing paused vaults.
func (k *Keeper) operableVault(ctx context.Context, vaultID string) (types.VaultRecord, StrategyTable, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return types.VaultRecord{}, StrategyTable{}, err
	}
	if vault.Paused {
		return types.VaultRecord{}, StrategyTable{}, sdkerrors.Wrap(types.ErrVaultPaused, vaultID)
	}
	table, err := k.strategyTable(vaultID)
	if err != nil {
		return types.VaultRecord{}, StrategyTable{}, err
	}
	return vault, table, nil
}
