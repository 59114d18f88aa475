package codec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

func TestTypeHashesPinned(t *testing.T) {
	assert.Equal(t,
		"0xbbc55ff16d1287ea849cf9730dc907dd526040e7eef404d4855fae4f00906d7f",
		TypeHash("LightClientState").Hex())
	assert.Equal(t,
		"0x1ae95196efce1a101b70c0754a74aa74bad315df1b5066c1ffe0f89bd8b7fe5f",
		TypeHash("StakeTableState").Hex())
}

// The struct hash is keccak256(typeHash || field words).
func TestLightClientStateHashConstruction(t *testing.T) {
	state := sampleState()
	got, err := LightClientStateHash(state)
	require.NoError(t, err)

	typeHash := TypeHash("LightClientState")
	var preimage []byte
	preimage = append(preimage, typeHash[:]...)
	preimage = append(preimage, new(big.Int).SetUint64(state.ViewNum).FillBytes(make([]byte, 32))...)
	preimage = append(preimage, new(big.Int).SetUint64(state.BlockHeight).FillBytes(make([]byte, 32))...)
	preimage = append(preimage, state.BlockCommRoot.FillBytes(make([]byte, 32))...)
	assert.Equal(t, crypto.Keccak256Hash(preimage), got)
}

func TestStakeTableStateHashDistinguishesFields(t *testing.T) {
	a := sampleStakeTable()
	b := sampleStakeTable()
	b.SchnorrKeyComm = new(big.Int).Add(b.SchnorrKeyComm, big.NewInt(1))

	ha, err := StakeTableStateHash(a)
	require.NoError(t, err)
	hb, err := StakeTableStateHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)

	again, err := StakeTableStateHash(sampleStakeTable())
	require.NoError(t, err)
	assert.Equal(t, ha, again)
}

func TestStateHashZeroValue(t *testing.T) {
	_, err := LightClientStateHash(bindings.LightClientLightClientState{})
	require.NoError(t, err)
}

// Hashing a state tuple only commits to the type hash and the field words;
// the signing domain carried by the codec must not leak into it.
func TestStateHashIgnoresDomain(t *testing.T) {
	got, err := LightClientStateHash(sampleState())
	require.NoError(t, err)

	other := eip712
	other.Domain.Name = "SomeOtherContract"
	other.Domain.Version = "99"
	enc, err := other.HashStruct("LightClientState", apitypes.TypedDataMessage{
		"viewNum":       new(big.Int).SetUint64(sampleState().ViewNum),
		"blockHeight":   new(big.Int).SetUint64(sampleState().BlockHeight),
		"blockCommRoot": (*math.HexOrDecimal256)(sampleState().BlockCommRoot),
	})
	require.NoError(t, err)
	assert.Equal(t, got, common.BytesToHash(enc))
}
