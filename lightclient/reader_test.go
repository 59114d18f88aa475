package lightclient

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
	"github.com/EspressoSystems/lightclient-go/codec"
)

var contractAddr = common.HexToAddress("0x00000000000000000000000000000000000000cc")

// stubCaller answers eth_call by selector from canned return data.
type stubCaller struct {
	t       *testing.T
	abi     *abi.ABI
	returns map[string][]byte // selector hex -> packed outputs
}

func newStubCaller(t *testing.T) *stubCaller {
	parsed, err := bindings.LightClientArbitrumV2MetaData.GetAbi()
	require.NoError(t, err)
	return &stubCaller{t: t, abi: parsed, returns: make(map[string][]byte)}
}

// on packs the method's outputs and registers them for its selector.
func (s *stubCaller) on(method string, outputs ...any) {
	m, ok := s.abi.Methods[method]
	require.True(s.t, ok, "no such method %s", method)
	packed, err := m.Outputs.Pack(outputs...)
	require.NoError(s.t, err)
	s.returns[hex.EncodeToString(m.ID)] = packed
}

func (s *stubCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (s *stubCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	require.GreaterOrEqual(s.t, len(call.Data), 4)
	out, ok := s.returns[hex.EncodeToString(call.Data[:4])]
	if !ok {
		s.t.Fatalf("unexpected call %x", call.Data[:4])
	}
	return out, nil
}

func TestReaderFinalizedState(t *testing.T) {
	backend := newStubCaller(t)
	backend.on("finalizedState", uint64(42), uint64(512), big.NewInt(777))

	reader, err := NewReader(contractAddr, backend)
	require.NoError(t, err)
	assert.Equal(t, contractAddr, reader.Address())

	state, err := reader.FinalizedState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bindings.LightClientLightClientState{
		ViewNum:       42,
		BlockHeight:   512,
		BlockCommRoot: big.NewInt(777),
	}, state)
}

func TestReaderStakeTables(t *testing.T) {
	backend := newStubCaller(t)
	backend.on("genesisStakeTableState", big.NewInt(10), big.NewInt(11), big.NewInt(12), big.NewInt(13))
	backend.on("votingStakeTableState", big.NewInt(20), big.NewInt(21), big.NewInt(22), big.NewInt(23))

	reader, err := NewReader(contractAddr, backend)
	require.NoError(t, err)

	genesis, err := reader.GenesisStakeTable(context.Background())
	require.NoError(t, err)
	assert.Zero(t, genesis.Threshold.Cmp(big.NewInt(10)))

	voting, err := reader.VotingStakeTable(context.Background())
	require.NoError(t, err)
	assert.Zero(t, voting.AmountComm.Cmp(big.NewInt(23)))
}

func TestReaderStateHistoryWalk(t *testing.T) {
	backend := newStubCaller(t)
	backend.on("getStateHistoryCount", big.NewInt(3))
	backend.on("stateHistoryFirstIndex", uint64(1))
	// pruned entries below firstIndex are never requested; the stub returns
	// the same row for indices 1 and 2
	backend.on("stateHistoryCommitments", uint64(100), uint64(1700000000), uint64(5000), big.NewInt(999))

	reader, err := NewReader(contractAddr, backend)
	require.NoError(t, err)

	history, err := reader.StateHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.EqualValues(t, 100, history[0].L1BlockHeight)
	assert.EqualValues(t, 5000, history[1].HotShotBlockHeight)
}

func TestReaderPermissionedProver(t *testing.T) {
	backend := newStubCaller(t)
	backend.on("isPermissionedProverEnabled", true)
	prover := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	backend.on("permissionedProver", prover)

	reader, err := NewReader(contractAddr, backend)
	require.NoError(t, err)

	addr, enabled, err := reader.PermissionedProver(context.Background())
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Equal(t, prover, addr)
}

// revertingError mimics a go-ethereum RPC error carrying revert data.
type revertingError struct{ data string }

func (e *revertingError) Error() string          { return "execution reverted" }
func (e *revertingError) ErrorData() interface{} { return e.data }

func TestTranslateRevertDecodesContractError(t *testing.T) {
	sel := errorSelectorBytes(t, "InvalidHotShotBlockForCommitmentCheck()")
	err := translateRevert("getHotShotCommitment", &revertingError{data: hexutil.Encode(sel)})

	var contractErr codec.ContractError
	require.ErrorAs(t, err, &contractErr)
	assert.Equal(t, "InvalidHotShotBlockForCommitmentCheck", contractErr.ErrorName())
	assert.Contains(t, err.Error(), "getHotShotCommitment reverted")
}

func TestTranslateRevertPassesThroughPlainErrors(t *testing.T) {
	plain := errors.New("connection refused")
	err := translateRevert("finalizedState", plain)
	require.ErrorIs(t, err, plain)
}

func errorSelectorBytes(t *testing.T, sig string) []byte {
	parsed, err := bindings.LightClientArbitrumV2MetaData.GetAbi()
	require.NoError(t, err)
	for _, e := range parsed.Errors {
		if e.Sig == sig {
			return e.ID[:4]
		}
	}
	t.Fatalf("no error with signature %s", sig)
	return nil
}
