package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/vaultcore/types"
	"github.com/provlabs/vaultcore/utils"
)

// VaultView is the read-only surface a strategy sees: the vault record and
// the totals behind the exchange rate. Strategies must not mutate state.
type VaultView struct {
	record types.VaultRecord
	keeper *Keeper
}

// Record returns the vault's accounting record.
func (v VaultView) Record() types.VaultRecord { return v.record }

// TotalAssets returns the accounted total of underlying held by the vault.
func (v VaultView) TotalAssets() sdkmath.Int { return v.record.TotalUnderlying }

// TotalShares returns the outstanding share supply reported by the share
// token collaborator.
func (v VaultView) TotalShares(ctx context.Context) sdkmath.Int {
	return v.keeper.ShareKeeper.GetSupply(ctx, v.record.ShareDenom).Amount
}

// ShareBalance returns the owner's share balance.
func (v VaultView) ShareBalance(ctx context.Context, owner sdk.AccAddress) sdkmath.Int {
	return v.keeper.ShareKeeper.GetBalance(ctx, owner, v.record.ShareDenom).Amount
}

// AmountStrategy converts one amount into its counter-amount (assets to
// shares or shares to assets) for a given vault.
type AmountStrategy func(ctx context.Context, view VaultView, amount sdkmath.Int) (sdkmath.Int, error)

// LimitStrategy reports the largest amount an owner may pass to the
// corresponding operation.
type LimitStrategy func(ctx context.Context, view VaultView, owner sdk.AccAddress) (sdkmath.Int, error)

// StrategyTable holds the ten per-vault behaviors. Every slot is populated;
// a table is built once at vault creation and never swapped out.
//
// Overrides are stored verbatim. The core does not validate their internal
// behavior; a buggy or malicious override is the vault creator's liability.
// Custom slots must keep the vault-favorable rounding contract.
type StrategyTable struct {
	ConvertToShares AmountStrategy
	ConvertToAssets AmountStrategy
	PreviewDeposit  AmountStrategy
	PreviewMint     AmountStrategy
	PreviewWithdraw AmountStrategy
	PreviewRedeem   AmountStrategy
	MaxDeposit      LimitStrategy
	MaxMint         LimitStrategy
	MaxWithdraw     LimitStrategy
	MaxRedeem       LimitStrategy
}

// StrategyOverrides carries optional replacements for any slot; nil slots
// take the engine default.
type StrategyOverrides struct {
	ConvertToShares AmountStrategy
	ConvertToAssets AmountStrategy
	PreviewDeposit  AmountStrategy
	PreviewMint     AmountStrategy
	PreviewWithdraw AmountStrategy
	PreviewRedeem   AmountStrategy
	MaxDeposit      LimitStrategy
	MaxMint         LimitStrategy
	MaxWithdraw     LimitStrategy
	MaxRedeem       LimitStrategy
}

// NewStrategyTable builds a fully populated table from the given overrides.
func NewStrategyTable(overrides StrategyOverrides) StrategyTable {
	table := StrategyTable{
		ConvertToShares: overrides.ConvertToShares,
		ConvertToAssets: overrides.ConvertToAssets,
		PreviewDeposit:  overrides.PreviewDeposit,
		PreviewMint:     overrides.PreviewMint,
		PreviewWithdraw: overrides.PreviewWithdraw,
		PreviewRedeem:   overrides.PreviewRedeem,
		MaxDeposit:      overrides.MaxDeposit,
		MaxMint:         overrides.MaxMint,
		MaxWithdraw:     overrides.MaxWithdraw,
		MaxRedeem:       overrides.MaxRedeem,
	}
	if table.ConvertToShares == nil {
		table.ConvertToShares = DefaultConvertToShares
	}
	if table.ConvertToAssets == nil {
		table.ConvertToAssets = DefaultConvertToAssets
	}
	if table.PreviewDeposit == nil {
		table.PreviewDeposit = DefaultPreviewDeposit
	}
	if table.PreviewMint == nil {
		table.PreviewMint = DefaultPreviewMint
	}
	if table.PreviewWithdraw == nil {
		table.PreviewWithdraw = DefaultPreviewWithdraw
	}
	if table.PreviewRedeem == nil {
		table.PreviewRedeem = DefaultPreviewRedeem
	}
	if table.MaxDeposit == nil {
		table.MaxDeposit = DefaultMaxDeposit
	}
	if table.MaxMint == nil {
		table.MaxMint = DefaultMaxMint
	}
	if table.MaxWithdraw == nil {
		table.MaxWithdraw = DefaultMaxWithdraw
	}
	if table.MaxRedeem == nil {
		table.MaxRedeem = DefaultMaxRedeem
	}
	return table
}

// Default strategies. The rounding direction per slot is the
// anti-exploitation contract: fractional remainders always favor the vault.

// DefaultConvertToShares floors assets into shares at the current rate.
func DefaultConvertToShares(ctx context.Context, view VaultView, assets sdkmath.Int) (sdkmath.Int, error) {
	return utils.SharesFromAssets(assets, view.TotalAssets(), view.TotalShares(ctx), utils.RoundFloor)
}

// DefaultConvertToAssets floors shares into assets at the current rate.
func DefaultConvertToAssets(ctx context.Context, view VaultView, shares sdkmath.Int) (sdkmath.Int, error) {
	return utils.AssetsFromShares(shares, view.TotalAssets(), view.TotalShares(ctx), utils.RoundFloor)
}

// DefaultPreviewDeposit floors: the depositor receives at most fair shares.
func DefaultPreviewDeposit(ctx context.Context, view VaultView, assets sdkmath.Int) (sdkmath.Int, error) {
	return utils.SharesFromAssets(assets, view.TotalAssets(), view.TotalShares(ctx), utils.RoundFloor)
}

// DefaultPreviewMint ceils: the minter pays at least fair assets.
func DefaultPreviewMint(ctx context.Context, view VaultView, shares sdkmath.Int) (sdkmath.Int, error) {
	return utils.AssetsFromShares(shares, view.TotalAssets(), view.TotalShares(ctx), utils.RoundCeil)
}

// DefaultPreviewWithdraw ceils: the withdrawer burns at least fair shares.
func DefaultPreviewWithdraw(ctx context.Context, view VaultView, assets sdkmath.Int) (sdkmath.Int, error) {
	return utils.SharesFromAssets(assets, view.TotalAssets(), view.TotalShares(ctx), utils.RoundCeil)
}

// DefaultPreviewRedeem floors: the redeemer receives at most fair assets.
func DefaultPreviewRedeem(ctx context.Context, view VaultView, shares sdkmath.Int) (sdkmath.Int, error) {
	return utils.AssetsFromShares(shares, view.TotalAssets(), view.TotalShares(ctx), utils.RoundFloor)
}

// DefaultMaxDeposit is unbounded.
func DefaultMaxDeposit(_ context.Context, _ VaultView, _ sdk.AccAddress) (sdkmath.Int, error) {
	return utils.MaxAmount, nil
}

// DefaultMaxMint is unbounded.
func DefaultMaxMint(_ context.Context, _ VaultView, _ sdk.AccAddress) (sdkmath.Int, error) {
	return utils.MaxAmount, nil
}

// DefaultMaxWithdraw is the floor-converted value of the owner's shares.
func DefaultMaxWithdraw(ctx context.Context, view VaultView, owner sdk.AccAddress) (sdkmath.Int, error) {
	balance := view.ShareBalance(ctx, owner)
	return utils.AssetsFromShares(balance, view.TotalAssets(), view.TotalShares(ctx), utils.RoundFloor)
}

// DefaultMaxRedeem is the owner's raw share balance.
func DefaultMaxRedeem(ctx context.Context, view VaultView, owner sdk.AccAddress) (sdkmath.Int, error) {
	return view.ShareBalance(ctx, owner), nil
}

// view builds the read-only strategy view over a record.
func (k *Keeper) view(record types.VaultRecord) VaultView {
	return VaultView{record: record, keeper: k}
}

// registerStrategies attaches a table to a newly created vault.
func (k *Keeper) registerStrategies(vaultID string, table StrategyTable) error {
	k.strategyMu.Lock()
	defer k.strategyMu.Unlock()
	if _, exists := k.strategies[vaultID]; exists && !k.restorable[vaultID] {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "strategies already registered for vault %s", vaultID)
	}
	k.strategies[vaultID] = table
	delete(k.restorable, vaultID)
	return nil
}

// strategyTable returns the table attached to a vault.
func (k *Keeper) strategyTable(vaultID string) (StrategyTable, error) {
	k.strategyMu.RLock()
	defer k.strategyMu.RUnlock()
	table, ok := k.strategies[vaultID]
	if !ok {
		return StrategyTable{}, sdkerrors.Wrapf(types.ErrVaultNotFound, "no strategies registered for vault %s", vaultID)
	}
	return table, nil
}

// RestoreVaultStrategies re-attaches a vault's override table after state was
// imported through genesis. Tables hold function values and cannot be
// persisted, so InitGenesis installs defaults and hosts that created the
// vault with overrides call this once, before serving operations. It fails
// for unknown vaults and for vaults whose table was already finalized.
func (k *Keeper) RestoreVaultStrategies(ctx context.Context, vaultID string, overrides StrategyOverrides) error {
	found, err := k.HasVault(ctx, vaultID)
	if err != nil {
		return err
	}
	if !found {
		return sdkerrors.Wrap(types.ErrVaultNotFound, vaultID)
	}

	k.strategyMu.Lock()
	defer k.strategyMu.Unlock()
	if !k.restorable[vaultID] {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "strategies for vault %s are final", vaultID)
	}
	k.strategies[vaultID] = NewStrategyTable(overrides)
	delete(k.restorable, vaultID)
	return nil
}
