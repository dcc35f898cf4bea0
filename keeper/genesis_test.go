package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/vaultcore/keeper"
	"github.com/provlabs/vaultcore/types"
)

func (s *TestSuite) TestInitGenesis() {
	first := types.NewVaultRecord(s.adminAddr.String(), shareDenom, underlyingDenom)
	second := types.NewVaultRecord(s.adminAddr.String(), "othershare", underlyingDenom)
	second.TotalUnderlying = sdkmath.NewInt(250)
	second.Paused = true

	err := s.k.InitGenesis(s.ctx, types.NewGenesisState([]types.VaultRecord{first, second}))
	s.Require().NoError(err)

	got, err := s.k.GetVault(s.ctx, "othershare")
	s.Require().NoError(err)
	s.Assert().Equal("250", got.TotalUnderlying.String())
	s.Assert().True(got.Paused)

	// Imported vaults serve operations through a default strategy table.
	depositor := s.createAndFundAccount(100)
	shares, err := s.k.Deposit(s.ctx, shareDenom, depositor, sdk.NewInt64Coin(underlyingDenom, 100))
	s.Require().NoError(err)
	s.Assert().Equal("100", shares.Amount.String())
}

func (s *TestSuite) TestInitGenesisRejectsInvalidState() {
	record := types.NewVaultRecord(s.adminAddr.String(), shareDenom, underlyingDenom)

	err := s.k.InitGenesis(s.ctx, types.NewGenesisState([]types.VaultRecord{record, record}))
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "duplicate vault")

	bad := types.NewVaultRecord("not-an-address", shareDenom, underlyingDenom)
	err = s.k.InitGenesis(s.ctx, types.NewGenesisState([]types.VaultRecord{bad}))
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "invalid admin address")

	// Nothing may land in state after a rejected import.
	has, err := s.k.HasVault(s.ctx, shareDenom)
	s.Require().NoError(err)
	s.Assert().False(has)
}

func (s *TestSuite) TestExportGenesisRoundTrip() {
	s.setupBaseVault()
	_, err := s.k.CreateVault(s.ctx, s.adminAddr, "othershare", underlyingDenom, keeper.StrategyOverrides{})
	s.Require().NoError(err)

	depositor := s.createAndFundAccount(500)
	_, err = s.k.Deposit(s.ctx, shareDenom, depositor, sdk.NewInt64Coin(underlyingDenom, 123))
	s.Require().NoError(err)

	exported, err := s.k.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(exported.Validate())
	s.Require().Len(exported.Vaults, 2)

	// A fresh keeper seeded with the export reproduces the accounting state.
	fresh := s.newKeeper()
	s.Require().NoError(fresh.InitGenesis(s.ctx, exported))

	for _, want := range exported.Vaults {
		got, err := fresh.GetVault(s.ctx, want.ShareDenom)
		s.Require().NoError(err)
		s.Assert().Equal(want, got)
	}
}

func (s *TestSuite) TestExportGenesisEmpty() {
	exported, err := s.k.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Assert().Empty(exported.Vaults)
}
