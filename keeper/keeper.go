package keeper

import (
	"context"
	"sync"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/provlabs/vaultcore/types"
)

// Keeper owns the vault ledgers and drives the four-operation protocol.
//
// Mutating operations on a single vault must be serialized by the host (one
// transaction at a time); the keeper does not lock per vault. Read-only
// queries are safe to run concurrently, and operations on distinct vaults
// are independent.
type Keeper struct {
	schema       collections.Schema
	eventService event.Service
	logger       log.Logger

	BankKeeper      types.BankKeeper
	ShareKeeper     types.ShareKeeper
	OwnershipKeeper types.OwnershipKeeper

	// Vaults holds the accounting record of every vault, keyed by share denom.
	Vaults collections.Map[string, types.VaultRecord]

	// Strategy tables are process-local: they hold function values and are
	// attached at vault creation (or restored after a restart).
	strategyMu sync.RWMutex
	strategies map[string]StrategyTable
	restorable map[string]bool
}

// NewKeeper creates a vault keeper over the given store and event services.
func NewKeeper(
	storeService store.KVStoreService,
	eventService event.Service,
	logger log.Logger,
	bankKeeper types.BankKeeper,
	shareKeeper types.ShareKeeper,
	ownershipKeeper types.OwnershipKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		eventService:    eventService,
		logger:          logger.With("module", "x/"+types.ModuleName),
		BankKeeper:      bankKeeper,
		ShareKeeper:     shareKeeper,
		OwnershipKeeper: ownershipKeeper,
		Vaults:          collections.NewMap(builder, types.VaultsKeyPrefix, types.VaultsName, collections.StringKey, types.VaultRecordValue),
		strategies:      map[string]StrategyTable{},
		restorable:      map[string]bool{},
	}

	schema, err := builder.Build()
	if err != nil {
		panic(err)
	}

	keeper.schema = schema
	return keeper
}

// Logger returns the keeper's logger with vault module context.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// emitEvent emits a KV event, logging instead of failing the operation if
// the event service rejects it.
func (k *Keeper) emitEvent(ctx context.Context, eventType string, attrs ...event.Attribute) {
	if err := k.eventService.EventManager(ctx).EmitKV(ctx, eventType, attrs...); err != nil {
		k.logger.Error("failed to emit event", "type", eventType, "err", err)
	}
}
