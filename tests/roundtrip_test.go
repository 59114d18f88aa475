// Cross-package tests: drive the public codec API against the generated
// bindings the way an external consumer would.
package tests

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
	"github.com/EspressoSystems/lightclient-go/codec"
)

func genesisState() bindings.LightClientLightClientState {
	return bindings.LightClientLightClientState{
		ViewNum:       0,
		BlockHeight:   0,
		BlockCommRoot: big.NewInt(0x5a5a),
	}
}

func genesisStakeTable() bindings.LightClientStakeTableState {
	return bindings.LightClientStakeTableState{
		Threshold:      big.NewInt(2),
		BlsKeyComm:     big.NewInt(3),
		SchnorrKeyComm: big.NewInt(5),
		AmountComm:     big.NewInt(7),
	}
}

// Calldata produced through the generated transactor ABI must decode to the
// codec's typed calls, and vice versa.
func TestBindingsAndCodecAgree(t *testing.T) {
	parsed, err := bindings.LightClientArbitrumV2MetaData.GetAbi()
	require.NoError(t, err)

	owner := common.HexToAddress("0x00000000000000000000000000000000000000ee")
	raw, err := parsed.Pack("initialize", genesisState(), genesisStakeTable(), uint32(3600), owner)
	require.NoError(t, err)

	call, err := codec.ParseCall(raw)
	require.NoError(t, err)
	init, ok := call.(*codec.InitializeCall)
	require.True(t, ok)
	assert.Equal(t, owner, init.Owner)
	assert.EqualValues(t, 3600, init.StateHistoryRetentionPeriod)

	repacked, err := init.Pack()
	require.NoError(t, err)
	assert.Equal(t, raw, repacked)
}

func TestPinnedSelectorsAgainstKeccak(t *testing.T) {
	assert.Equal(t,
		[]byte{0x9b, 0xaa, 0x3c, 0xc9},
		crypto.Keccak256([]byte("initialize((uint64,uint64,uint256),(uint256,uint256,uint256,uint256),uint32,address)"))[:4])
	assert.Equal(t,
		[]byte{0xb3, 0x3b, 0xc4, 0x91},
		crypto.Keccak256([]byte("initializeV2(uint64,uint64)"))[:4])
	assert.Equal(t,
		common.HexToHash("0xa04a773924505a418564363725f56832f5772e6b8d0dbd6efce724dfe803dae6"),
		crypto.Keccak256Hash([]byte("NewState(uint64,uint64,uint256)")))
}

// Every function selector the codec knows must be unique.
func TestSelectorSpaceHasNoCollisions(t *testing.T) {
	seen := make(map[codec.Selector]bool)
	for _, sel := range codec.Selectors() {
		require.False(t, seen[sel], "duplicate selector %s", sel)
		seen[sel] = true
	}
	parsed, err := bindings.LightClientArbitrumV2MetaData.GetAbi()
	require.NoError(t, err)
	assert.Len(t, seen, len(parsed.Methods))
}

// A revert produced by packing an ABI error decodes back to the matching
// typed error through the public API.
func TestRevertRoundTrip(t *testing.T) {
	parsed, err := bindings.LightClientArbitrumV2MetaData.GetAbi()
	require.NoError(t, err)

	for name := range parsed.Errors {
		abiErr := parsed.Errors[name]
		if len(abiErr.Inputs) > 0 {
			continue // argument-carrying errors are covered in the codec package
		}
		decoded, decErr := codec.DecodeRevert(abiErr.ID[:4])
		require.NoError(t, decErr, name)
		assert.Equal(t, name, decoded.ErrorName())
	}
}
