// Package mocks provides in-memory asset-custody, share-token, and
// ownership collaborators for exercising the vault keeper in tests.
package mocks

import (
	"context"
	"fmt"
	"sync"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/vaultcore/types"
)

// Ledger is an in-memory bank and share token. It satisfies both the
// BankKeeper and ShareKeeper expected interfaces so a single instance can
// play custody and share-token collaborator in tests.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]sdk.Coins
	supply   map[string]sdkmath.Int
}

var (
	_ types.BankKeeper  = (*Ledger)(nil)
	_ types.ShareKeeper = (*Ledger)(nil)
)

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances: map[string]sdk.Coins{},
		supply:   map[string]sdkmath.Int{},
	}
}

// Fund credits coins to an account and adds them to supply.
func (l *Ledger) Fund(addr sdk.AccAddress, coins ...sdk.Coin) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := addr.String()
	l.balances[key] = l.balances[key].Add(coins...)
	for _, coin := range coins {
		l.addSupply(coin.Denom, coin.Amount)
	}
}

// SendCoins implements types.BankKeeper.
func (l *Ledger) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	from := fromAddr.String()
	if !l.balances[from].IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, l.balances[from], amt)
	}
	l.balances[from] = l.balances[from].Sub(amt...)
	to := toAddr.String()
	l.balances[to] = l.balances[to].Add(amt...)
	return nil
}

// GetBalance implements types.BankKeeper and types.ShareKeeper.
func (l *Ledger) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return sdk.NewCoin(denom, l.balances[addr.String()].AmountOf(denom))
}

// MintTo implements types.ShareKeeper.
func (l *Ledger) MintTo(_ context.Context, owner sdk.AccAddress, shares sdk.Coin) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := owner.String()
	l.balances[key] = l.balances[key].Add(shares)
	l.addSupply(shares.Denom, shares.Amount)
	return nil
}

// BurnFrom implements types.ShareKeeper.
func (l *Ledger) BurnFrom(_ context.Context, owner sdk.AccAddress, shares sdk.Coin) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := owner.String()
	if !l.balances[key].IsAllGTE(sdk.NewCoins(shares)) {
		return fmt.Errorf("insufficient balance to burn %s from %s", shares, key)
	}
	l.balances[key] = l.balances[key].Sub(shares)
	l.addSupply(shares.Denom, shares.Amount.Neg())
	return nil
}

// GetSupply implements types.ShareKeeper.
func (l *Ledger) GetSupply(_ context.Context, denom string) sdk.Coin {
	l.mu.Lock()
	defer l.mu.Unlock()
	supply, ok := l.supply[denom]
	if !ok {
		supply = sdkmath.ZeroInt()
	}
	return sdk.NewCoin(denom, supply)
}

func (l *Ledger) addSupply(denom string, amt sdkmath.Int) {
	supply, ok := l.supply[denom]
	if !ok {
		supply = sdkmath.ZeroInt()
	}
	l.supply[denom] = supply.Add(amt)
}

// Ownership is an allow-by-default ownership verifier with an explicit
// denylist for exercising NotOwner paths.
type Ownership struct {
	mu     sync.Mutex
	denied map[string]bool
}

var _ types.OwnershipKeeper = (*Ownership)(nil)

// NewOwnership creates a verifier that accepts every owner.
func NewOwnership() *Ownership {
	return &Ownership{denied: map[string]bool{}}
}

// Deny makes future VerifyOwnership calls fail for the owner on the vault.
func (o *Ownership) Deny(owner sdk.AccAddress, shareDenom string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.denied[owner.String()+"/"+shareDenom] = true
}

// VerifyOwnership implements types.OwnershipKeeper.
func (o *Ownership) VerifyOwnership(_ context.Context, owner sdk.AccAddress, shareDenom string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.denied[owner.String()+"/"+shareDenom] {
		return types.ErrNotOwner.Wrapf("%s does not own shares of %s", owner, shareDenom)
	}
	return nil
}
