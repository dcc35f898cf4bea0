package keeper_test

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/vaultcore/keeper"
	"github.com/provlabs/vaultcore/types"
)

func (s *TestSuite) TestNewStrategyTablePopulatesEverySlot() {
	table := keeper.NewStrategyTable(keeper.StrategyOverrides{})

	s.Assert().NotNil(table.ConvertToShares)
	s.Assert().NotNil(table.ConvertToAssets)
	s.Assert().NotNil(table.PreviewDeposit)
	s.Assert().NotNil(table.PreviewMint)
	s.Assert().NotNil(table.PreviewWithdraw)
	s.Assert().NotNil(table.PreviewRedeem)
	s.Assert().NotNil(table.MaxDeposit)
	s.Assert().NotNil(table.MaxMint)
	s.Assert().NotNil(table.MaxWithdraw)
	s.Assert().NotNil(table.MaxRedeem)
}

func (s *TestSuite) TestOverrideDispatch() {
	called := false
	_, err := s.k.CreateVault(s.ctx, s.adminAddr, shareDenom, underlyingDenom, keeper.StrategyOverrides{
		PreviewDeposit: func(_ context.Context, _ keeper.VaultView, assets sdkmath.Int) (sdkmath.Int, error) {
			called = true
			// Half the default grant; still vault-favorable.
			return assets.QuoRaw(2), nil
		},
	})
	s.Require().NoError(err)

	depositor := s.createAndFundAccount(1_000)
	shares, err := s.k.Deposit(s.ctx, shareDenom, depositor, sdk.NewInt64Coin(underlyingDenom, 100))
	s.Require().NoError(err)
	s.Assert().True(called, "override must be dispatched instead of the default")
	s.Assert().Equal("50", shares.Amount.String())

	// Non-overridden slots keep their defaults.
	max, err := s.k.MaxDeposit(s.ctx, shareDenom, depositor)
	s.Require().NoError(err)
	s.Assert().True(max.GT(sdkmath.NewInt(1_000_000)), "default maxDeposit should be unbounded")
}

func (s *TestSuite) TestDefaultLimits() {
	s.setupBaseVault()
	depositor := s.createAndFundAccount(1_000)

	_, err := s.k.Deposit(s.ctx, shareDenom, depositor, sdk.NewInt64Coin(underlyingDenom, 100))
	s.Require().NoError(err)

	maxWithdraw, err := s.k.MaxWithdraw(s.ctx, shareDenom, depositor)
	s.Require().NoError(err)
	s.Assert().Equal("100", maxWithdraw.String(), "maxWithdraw is the floor value of the owner's shares")

	maxRedeem, err := s.k.MaxRedeem(s.ctx, shareDenom, depositor)
	s.Require().NoError(err)
	s.Assert().Equal("100", maxRedeem.String(), "maxRedeem is the owner's raw share balance")

	stranger := s.createAndFundAccount(0)
	maxWithdraw, err = s.k.MaxWithdraw(s.ctx, shareDenom, stranger)
	s.Require().NoError(err)
	s.Assert().Equal("0", maxWithdraw.String())
}

func (s *TestSuite) TestRestoreVaultStrategies() {
	err := s.k.RestoreVaultStrategies(s.ctx, "missing", keeper.StrategyOverrides{})
	s.Require().ErrorIs(err, types.ErrVaultNotFound)

	// Tables created through CreateVault are final.
	s.setupBaseVault()
	err = s.k.RestoreVaultStrategies(s.ctx, shareDenom, keeper.StrategyOverrides{})
	s.Require().ErrorIs(err, types.ErrInvalidRequest)

	// Genesis-imported vaults accept exactly one restore.
	genesis := types.NewGenesisState([]types.VaultRecord{
		types.NewVaultRecord(s.adminAddr.String(), "restoredshare", underlyingDenom),
	})
	s.Require().NoError(s.k.InitGenesis(s.ctx, genesis))

	called := false
	err = s.k.RestoreVaultStrategies(s.ctx, "restoredshare", keeper.StrategyOverrides{
		MaxDeposit: func(_ context.Context, _ keeper.VaultView, _ sdk.AccAddress) (sdkmath.Int, error) {
			called = true
			return sdkmath.NewInt(10), nil
		},
	})
	s.Require().NoError(err)

	max, err := s.k.MaxDeposit(s.ctx, "restoredshare", s.adminAddr)
	s.Require().NoError(err)
	s.Assert().True(called)
	s.Assert().Equal("10", max.String())

	err = s.k.RestoreVaultStrategies(s.ctx, "restoredshare", keeper.StrategyOverrides{})
	s.Require().ErrorIs(err, types.ErrInvalidRequest, "second restore must be rejected")
}
