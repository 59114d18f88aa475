package codec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

func TestNewStateTopicPinned(t *testing.T) {
	id, err := EventID("NewState")
	require.NoError(t, err)
	assert.Equal(t,
		"0xa04a773924505a418564363725f56832f5772e6b8d0dbd6efce724dfe803dae6",
		id.Hex())
}

func TestParseLogNewState(t *testing.T) {
	state := sampleState()
	id, err := EventID("NewState")
	require.NoError(t, err)

	data, err := contractABI.Events["NewState"].Inputs.NonIndexed().Pack(state.BlockCommRoot)
	require.NoError(t, err)

	lg := types.Log{
		Topics: []common.Hash{
			id,
			common.BigToHash(new(big.Int).SetUint64(state.ViewNum)),
			common.BigToHash(new(big.Int).SetUint64(state.BlockHeight)),
		},
		Data: data,
	}
	parsed, err := ParseLog(lg)
	require.NoError(t, err)
	event, ok := parsed.(*bindings.LightClientArbitrumV2NewState)
	require.True(t, ok)
	assert.Equal(t, state.ViewNum, event.ViewNum)
	assert.Equal(t, state.BlockHeight, event.BlockHeight)
	assert.Zero(t, state.BlockCommRoot.Cmp(event.BlockCommRoot))
}

func TestParseLogPermissionedProverRequired(t *testing.T) {
	prover := common.HexToAddress("0x0102030405060708090a0b0c0d0e0f1011121314")
	id, err := EventID("PermissionedProverRequired")
	require.NoError(t, err)

	data, err := contractABI.Events["PermissionedProverRequired"].Inputs.NonIndexed().Pack(prover)
	require.NoError(t, err)

	parsed, err := ParseLog(types.Log{Topics: []common.Hash{id}, Data: data})
	require.NoError(t, err)
	event, ok := parsed.(*bindings.LightClientArbitrumV2PermissionedProverRequired)
	require.True(t, ok)
	assert.Equal(t, prover, event.PermissionedProver)
}

func TestParseLogOwnershipTransferred(t *testing.T) {
	previous := common.HexToAddress("0x1111111111111111111111111111111111111111")
	next := common.HexToAddress("0x2222222222222222222222222222222222222222")
	id, err := EventID("OwnershipTransferred")
	require.NoError(t, err)

	parsed, err := ParseLog(types.Log{Topics: []common.Hash{
		id,
		common.BytesToHash(previous.Bytes()),
		common.BytesToHash(next.Bytes()),
	}})
	require.NoError(t, err)
	event, ok := parsed.(*bindings.LightClientArbitrumV2OwnershipTransferred)
	require.True(t, ok)
	assert.Equal(t, previous, event.PreviousOwner)
	assert.Equal(t, next, event.NewOwner)
}

func TestParseLogUnknownTopic(t *testing.T) {
	_, err := ParseLog(types.Log{Topics: []common.Hash{common.HexToHash("0xff")}})
	var invalid *InvalidLogError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, InterfaceName, invalid.Interface)
}

func TestParseLogNoTopics(t *testing.T) {
	_, err := ParseLog(types.Log{})
	var invalid *InvalidLogError
	require.ErrorAs(t, err, &invalid)
}

func TestEventIDUnknownName(t *testing.T) {
	_, err := EventID("NoSuchEvent")
	require.Error(t, err)
}
