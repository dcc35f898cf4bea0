package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Read-only queries. None of these mutate state; they may be evaluated
// concurrently with each other.

// Asset returns the vault's underlying asset denom.
func (k *Keeper) Asset(ctx context.Context, vaultID string) (string, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return "", err
	}
	return vault.UnderlyingAsset, nil
}

// TotalAssets returns the vault's accounted total of underlying held.
func (k *Keeper) TotalAssets(ctx context.Context, vaultID string) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return vault.TotalUnderlying, nil
}

// TotalShares returns the vault's outstanding share supply.
func (k *Keeper) TotalShares(ctx context.Context, vaultID string) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return k.view(vault).TotalShares(ctx), nil
}

// ConvertToShares estimates the shares for a given amount of assets, rounding
// down. Not a deposit quote; use PreviewDeposit for that.
func (k *Keeper) ConvertToShares(ctx context.Context, vaultID string, assets sdkmath.Int) (sdkmath.Int, error) {
	return k.amountQuery(ctx, vaultID, assets, func(t StrategyTable) AmountStrategy { return t.ConvertToShares })
}

// ConvertToAssets estimates the assets for a given number of shares, rounding
// down. Not a redemption quote; use PreviewRedeem for that.
func (k *Keeper) ConvertToAssets(ctx context.Context, vaultID string, shares sdkmath.Int) (sdkmath.Int, error) {
	return k.amountQuery(ctx, vaultID, shares, func(t StrategyTable) AmountStrategy { return t.ConvertToAssets })
}

// PreviewDeposit quotes the shares a deposit of the given assets would mint.
func (k *Keeper) PreviewDeposit(ctx context.Context, vaultID string, assets sdkmath.Int) (sdkmath.Int, error) {
	return k.amountQuery(ctx, vaultID, assets, func(t StrategyTable) AmountStrategy { return t.PreviewDeposit })
}

// PreviewMint quotes the assets a mint of the given shares would cost.
func (k *Keeper) PreviewMint(ctx context.Context, vaultID string, shares sdkmath.Int) (sdkmath.Int, error) {
	return k.amountQuery(ctx, vaultID, shares, func(t StrategyTable) AmountStrategy { return t.PreviewMint })
}

// PreviewWithdraw quotes the shares a withdrawal of the given assets would burn.
func (k *Keeper) PreviewWithdraw(ctx context.Context, vaultID string, assets sdkmath.Int) (sdkmath.Int, error) {
	return k.amountQuery(ctx, vaultID, assets, func(t StrategyTable) AmountStrategy { return t.PreviewWithdraw })
}

// PreviewRedeem quotes the assets a redemption of the given shares would release.
func (k *Keeper) PreviewRedeem(ctx context.Context, vaultID string, shares sdkmath.Int) (sdkmath.Int, error) {
	return k.amountQuery(ctx, vaultID, shares, func(t StrategyTable) AmountStrategy { return t.PreviewRedeem })
}

// MaxDeposit returns the largest deposit the owner may make.
func (k *Keeper) MaxDeposit(ctx context.Context, vaultID string, owner sdk.AccAddress) (sdkmath.Int, error) {
	return k.limitQuery(ctx, vaultID, owner, func(t StrategyTable) LimitStrategy { return t.MaxDeposit })
}

// MaxMint returns the largest mint the owner may make.
func (k *Keeper) MaxMint(ctx context.Context, vaultID string, owner sdk.AccAddress) (sdkmath.Int, error) {
	return k.limitQuery(ctx, vaultID, owner, func(t StrategyTable) LimitStrategy { return t.MaxMint })
}

// MaxWithdraw returns the largest withdrawal the owner may make.
func (k *Keeper) MaxWithdraw(ctx context.Context, vaultID string, owner sdk.AccAddress) (sdkmath.Int, error) {
	return k.limitQuery(ctx, vaultID, owner, func(t StrategyTable) LimitStrategy { return t.MaxWithdraw })
}

// MaxRedeem returns the largest redemption the owner may make.
func (k *Keeper) MaxRedeem(ctx context.Context, vaultID string, owner sdk.AccAddress) (sdkmath.Int, error) {
	return k.limitQuery(ctx, vaultID, owner, func(t StrategyTable) LimitStrategy { return t.MaxRedeem })
}

func (k *Keeper) amountQuery(ctx context.Context, vaultID string, amount sdkmath.Int, slot func(StrategyTable) AmountStrategy) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	table, err := k.strategyTable(vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return slot(table)(ctx, k.view(vault), amount)
}

func (k *Keeper) limitQuery(ctx context.Context, vaultID string, owner sdk.AccAddress, slot func(StrategyTable) LimitStrategy) (sdkmath.Int, error) {
	vault, err := k.GetVault(ctx, vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	table, err := k.strategyTable(vaultID)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return slot(table)(ctx, k.view(vault), owner)
}
