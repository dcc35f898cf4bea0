package types

import (
	"encoding/json"
	fmt "fmt"

	"cosmossdk.io/collections/codec"
)

// VaultRecordValue is the collections value codec for VaultRecord. Records
// are plain structs, so the same JSON encoding serves both the binary and
// genesis representations.
var VaultRecordValue codec.ValueCodec[VaultRecord] = vaultRecordCodec{}

type vaultRecordCodec struct{}

func (vaultRecordCodec) Encode(value VaultRecord) ([]byte, error) {
	return json.Marshal(value)
}

func (vaultRecordCodec) Decode(b []byte) (VaultRecord, error) {
	var v VaultRecord
	if err := json.Unmarshal(b, &v); err != nil {
		return VaultRecord{}, fmt.Errorf("failed to decode vault record: %w", err)
	}
	return v, nil
}

func (c vaultRecordCodec) EncodeJSON(value VaultRecord) ([]byte, error) {
	return c.Encode(value)
}

func (c vaultRecordCodec) DecodeJSON(b []byte) (VaultRecord, error) {
	return c.Decode(b)
}

func (vaultRecordCodec) Stringify(value VaultRecord) string {
	return fmt.Sprintf("VaultRecord(%s/%s)", value.ShareDenom, value.UnderlyingAsset)
}

func (vaultRecordCodec) ValueType() string {
	return "vaultcore.VaultRecord"
}
