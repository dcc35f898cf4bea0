package keeper

import (
	"context"
	"fmt"

	"github.com/provlabs/vaultcore/types"
)

// InitGenesis imports vault records and installs a default strategy table
// for each. Vaults created with overrides need RestoreVaultStrategies before
// serving operations; until then their tables remain restorable.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	for _, vault := range data.Vaults {
		if err := k.Vaults.Set(ctx, vault.ShareDenom, vault); err != nil {
			return fmt.Errorf("failed to import vault %s: %w", vault.ShareDenom, err)
		}

		k.strategyMu.Lock()
		k.strategies[vault.ShareDenom] = NewStrategyTable(StrategyOverrides{})
		k.restorable[vault.ShareDenom] = true
		k.strategyMu.Unlock()
	}
	return nil
}

// ExportGenesis exports all vault records. Strategy tables are process-local
// function values and are not part of exported state.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	vaults, err := k.GetVaults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export vaults: %w", err)
	}
	return types.NewGenesisState(vaults), nil
}
