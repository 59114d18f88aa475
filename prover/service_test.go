package prover

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
	"github.com/EspressoSystems/lightclient-go/lightclient"
)

// fakeCaller answers the reader's eth_call requests from canned outputs,
// keyed by method selector.
type fakeCaller struct {
	t       *testing.T
	abi     *abi.ABI
	returns map[string][]byte
}

func newFakeCaller(t *testing.T) *fakeCaller {
	parsed, err := bindings.LightClientArbitrumV2MetaData.GetAbi()
	require.NoError(t, err)
	return &fakeCaller{t: t, abi: parsed, returns: make(map[string][]byte)}
}

func (f *fakeCaller) on(method string, outputs ...any) {
	m := f.abi.Methods[method]
	packed, err := m.Outputs.Pack(outputs...)
	require.NoError(f.t, err)
	f.returns[hex.EncodeToString(m.ID)] = packed
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x01}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	out, ok := f.returns[hex.EncodeToString(call.Data[:4])]
	if !ok {
		f.t.Fatalf("unexpected call %x", call.Data[:4])
	}
	return out, nil
}

// fixedGas is a GasOracle with a constant answer.
type fixedGas struct{ price *big.Int }

func (g *fixedGas) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return g.price, nil
}

// recordingSubmitter captures the submitted state instead of sending a tx.
type recordingSubmitter struct {
	calls    int
	state    bindings.LightClientLightClientState
	stake    bindings.LightClientStakeTableState
	failWith error
}

func (s *recordingSubmitter) SubmitState(ctx context.Context,
	newState bindings.LightClientLightClientState,
	nextStakeTable bindings.LightClientStakeTableState,
	proof bindings.IPlonkVerifierPlonkProof) (common.Hash, error) {
	s.calls++
	if s.failWith != nil {
		return common.Hash{}, s.failWith
	}
	s.state = newState
	s.stake = nextStakeTable
	return common.HexToHash("0x01"), nil
}

func proofServer(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testProofResponse())
	}))
}

func relayServer(t *testing.T, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
}

func newTestService(t *testing.T, backend *fakeCaller, relayURL, proverURL string, gas GasOracle, sub StateSubmitter, maxGas *big.Int) *Service {
	reader, err := lightclient.NewReader(common.HexToAddress("0xcc"), backend)
	require.NoError(t, err)
	svc, err := NewService(Config{
		RPCURL:             "http://localhost:8545",
		LightClientAddress: common.HexToAddress("0xcc"),
		RelayServerURL:     relayURL,
		ProverAPIURL:       proverURL,
		MaxGasPrice:        maxGas,
	}, reader, NewRelayClient(relayURL), NewProofClient(proverURL), gas, sub)
	require.NoError(t, err)
	return svc
}

func TestSyncOnceSubmitsNewState(t *testing.T) {
	relay := relayServer(t, bundleBody) // bundle height 0x1000, weight 0xc8
	defer relay.Close()
	prover := proofServer(t)
	defer prover.Close()

	backend := newFakeCaller(t)
	backend.on("finalizedState", uint64(1), uint64(0x800), big.NewInt(1)) // behind the bundle
	backend.on("votingStakeTableState", big.NewInt(0x64), big.NewInt(1), big.NewInt(2), big.NewInt(3))

	sub := &recordingSubmitter{}
	svc := newTestService(t, backend, relay.URL, prover.URL, &fixedGas{big.NewInt(1)}, sub, nil)

	require.NoError(t, svc.SyncOnce(context.Background()))
	require.Equal(t, 1, sub.calls)
	assert.EqualValues(t, 0x1000, sub.state.BlockHeight)
	assert.EqualValues(t, 0x64, sub.stake.Threshold.Int64())

	last := svc.LastSynced()
	require.NotNil(t, last)
	assert.EqualValues(t, 0x1000, last.BlockHeight)
}

func TestSyncOnceSkipsWhenContractAhead(t *testing.T) {
	relay := relayServer(t, bundleBody)
	defer relay.Close()
	prover := proofServer(t)
	defer prover.Close()

	backend := newFakeCaller(t)
	backend.on("finalizedState", uint64(9), uint64(0x2000), big.NewInt(1)) // ahead of the bundle
	backend.on("votingStakeTableState", big.NewInt(0x64), big.NewInt(1), big.NewInt(2), big.NewInt(3))

	sub := &recordingSubmitter{}
	svc := newTestService(t, backend, relay.URL, prover.URL, &fixedGas{big.NewInt(1)}, sub, nil)

	require.NoError(t, svc.SyncOnce(context.Background()))
	assert.Zero(t, sub.calls)
	assert.Nil(t, svc.LastSynced())
}

func TestSyncOnceRejectsWeakBundle(t *testing.T) {
	// accumulated weight 0xc8 below an 0x1000 threshold
	relay := relayServer(t, bundleBody)
	defer relay.Close()
	prover := proofServer(t)
	defer prover.Close()

	backend := newFakeCaller(t)
	backend.on("finalizedState", uint64(1), uint64(0x800), big.NewInt(1))
	backend.on("votingStakeTableState", big.NewInt(0x1000), big.NewInt(1), big.NewInt(2), big.NewInt(3))

	sub := &recordingSubmitter{}
	svc := newTestService(t, backend, relay.URL, prover.URL, &fixedGas{big.NewInt(1)}, sub, nil)

	err := svc.SyncOnce(context.Background())
	require.ErrorIs(t, err, ErrInsufficientWeight)
	assert.Zero(t, sub.calls)
}

func TestSyncOnceGasGuard(t *testing.T) {
	backend := newFakeCaller(t) // no contract calls expected
	sub := &recordingSubmitter{}
	svc := newTestService(t, backend, "http://unused", "http://unused",
		&fixedGas{big.NewInt(50e9)}, sub, big.NewInt(10e9))

	err := svc.SyncOnce(context.Background())
	var gasErr *GasPriceTooHighError
	require.ErrorAs(t, err, &gasErr)
	assert.Zero(t, sub.calls)
	assert.Contains(t, err.Error(), "50.00 gwei")
}

func TestRunOnceStopsOnGasPrice(t *testing.T) {
	backend := newFakeCaller(t)
	svc := newTestService(t, backend, "http://unused", "http://unused",
		&fixedGas{big.NewInt(50e9)}, &recordingSubmitter{}, big.NewInt(10e9))

	err := svc.RunOnce(context.Background())
	var gasErr *GasPriceTooHighError
	require.ErrorAs(t, err, &gasErr)
}
