package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"github.com/provlabs/vaultcore/types"
)

// GetVault retrieves a vault record by its identity (share denom).
func (k *Keeper) GetVault(ctx context.Context, vaultID string) (types.VaultRecord, error) {
	vault, err := k.Vaults.Get(ctx, vaultID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultRecord{}, sdkerrors.Wrap(types.ErrVaultNotFound, vaultID)
		}
		return types.VaultRecord{}, err
	}
	return vault, nil
}

// HasVault reports whether a vault with the given identity exists.
func (k *Keeper) HasVault(ctx context.Context, vaultID string) (bool, error) {
	return k.Vaults.Has(ctx, vaultID)
}

// SetVault validates and persists a vault record.
func (k *Keeper) SetVault(ctx context.Context, vault types.VaultRecord) error {
	if err := vault.Validate(); err != nil {
		return sdkerrors.Wrap(types.ErrInvalidRequest, err.Error())
	}
	return k.Vaults.Set(ctx, vault.ShareDenom, vault)
}

// GetVaults retrieves all vault records from state.
func (k *Keeper) GetVaults(ctx context.Context) ([]types.VaultRecord, error) {
	vaults := []types.VaultRecord{}

	err := k.Vaults.Walk(ctx, nil, func(key string, val types.VaultRecord) (stop bool, err error) {
		vaults = append(vaults, val)
		return false, nil
	})

	return vaults, err
}
