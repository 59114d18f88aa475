package codec

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// EIP-712 struct hashing for the contract's state tuples. The hash is
// keccak256(typeHash || encodeData(fields)), with every field widened to a
// 32-byte word, so two states hash equal iff they are field-wise equal.

var eip712Types = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
	},
	"LightClientState": {
		{Name: "viewNum", Type: "uint64"},
		{Name: "blockHeight", Type: "uint64"},
		{Name: "blockCommRoot", Type: "uint256"},
	},
	"StakeTableState": {
		{Name: "threshold", Type: "uint256"},
		{Name: "blsKeyComm", Type: "uint256"},
		{Name: "schnorrKeyComm", Type: "uint256"},
		{Name: "amountComm", Type: "uint256"},
	},
}

// The domain never enters a non-domain struct hash, but EncodeData refuses to
// run against an undefined one, so the TypedData carries a nominal domain.
var eip712 = apitypes.TypedData{
	Types: eip712Types,
	Domain: apitypes.TypedDataDomain{
		Name:    InterfaceName,
		Version: "1",
	},
}

// LightClientStateHash returns the EIP-712 struct hash of a light client state.
func LightClientStateHash(s bindings.LightClientLightClientState) (common.Hash, error) {
	enc, err := eip712.HashStruct("LightClientState", apitypes.TypedDataMessage{
		"viewNum":       new(big.Int).SetUint64(s.ViewNum),
		"blockHeight":   new(big.Int).SetUint64(s.BlockHeight),
		"blockCommRoot": (*math.HexOrDecimal256)(zeroIfNil(s.BlockCommRoot)),
	})
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(enc), nil
}

// StakeTableStateHash returns the EIP-712 struct hash of a stake table state.
func StakeTableStateHash(s bindings.LightClientStakeTableState) (common.Hash, error) {
	enc, err := eip712.HashStruct("StakeTableState", apitypes.TypedDataMessage{
		"threshold":      (*math.HexOrDecimal256)(zeroIfNil(s.Threshold)),
		"blsKeyComm":     (*math.HexOrDecimal256)(zeroIfNil(s.BlsKeyComm)),
		"schnorrKeyComm": (*math.HexOrDecimal256)(zeroIfNil(s.SchnorrKeyComm)),
		"amountComm":     (*math.HexOrDecimal256)(zeroIfNil(s.AmountComm)),
	})
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(enc), nil
}

// TypeHash returns keccak256 of the EIP-712 type string for the named tuple.
func TypeHash(name string) common.Hash {
	return common.BytesToHash(eip712.TypeHash(name))
}
