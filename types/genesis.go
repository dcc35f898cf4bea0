package types

import fmt "fmt"

// GenesisState holds the exported state of the vault module.
type GenesisState struct {
	Vaults []VaultRecord `json:"vaults"`
}

// NewGenesisState creates a new genesis state from vault records.
func NewGenesisState(vaults []VaultRecord) *GenesisState {
	return &GenesisState{Vaults: vaults}
}

// DefaultGenesisState returns the module's default genesis state.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(nil)
}

// Validate checks every record and rejects duplicate vault identities.
func (gs GenesisState) Validate() error {
	seen := make(map[string]bool, len(gs.Vaults))
	for i, vault := range gs.Vaults {
		if err := vault.Validate(); err != nil {
			return fmt.Errorf("invalid vault record at index %d: %w", i, err)
		}
		if seen[vault.ShareDenom] {
			return fmt.Errorf("duplicate vault %q at index %d", vault.ShareDenom, i)
		}
		seen[vault.ShareDenom] = true
	}
	return nil
}
