package codec

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

func sampleState() bindings.LightClientLightClientState {
	return bindings.LightClientLightClientState{
		ViewNum:       142,
		BlockHeight:   99907,
		BlockCommRoot: big.NewInt(0).SetBytes(common.Hex2Bytes("1f3a9b2c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7")),
	}
}

func sampleStakeTable() bindings.LightClientStakeTableState {
	return bindings.LightClientStakeTableState{
		Threshold:      big.NewInt(667),
		BlsKeyComm:     big.NewInt(1001),
		SchnorrKeyComm: big.NewInt(1002),
		AmountComm:     big.NewInt(1003),
	}
}

// g1Gen is the BN254 generator; it satisfies y^2 = x^3 + 3.
func g1Gen() bindings.BN254G1Point {
	return bindings.BN254G1Point{X: big.NewInt(1), Y: big.NewInt(2)}
}

func sampleProof() bindings.IPlonkVerifierPlonkProof {
	return bindings.IPlonkVerifierPlonkProof{
		Wire0: g1Gen(), Wire1: g1Gen(), Wire2: g1Gen(), Wire3: g1Gen(), Wire4: g1Gen(),
		ProdPerm: g1Gen(),
		Split0:   g1Gen(), Split1: g1Gen(), Split2: g1Gen(), Split3: g1Gen(), Split4: g1Gen(),
		Zeta: g1Gen(), ZetaOmega: g1Gen(),
		WireEval0: big.NewInt(11), WireEval1: big.NewInt(12), WireEval2: big.NewInt(13),
		WireEval3: big.NewInt(14), WireEval4: big.NewInt(15),
		SigmaEval0: big.NewInt(21), SigmaEval1: big.NewInt(22),
		SigmaEval2: big.NewInt(23), SigmaEval3: big.NewInt(24),
		ProdPermZetaOmegaEval: big.NewInt(31),
	}
}

// Every selector in the dispatch table must equal the leading 4 bytes of
// keccak256 of the method's canonical signature.
func TestSelectorsMatchSignatureHashes(t *testing.T) {
	require.Len(t, callSelectors, len(contractABI.Methods))
	for name, method := range contractABI.Methods {
		var want Selector
		copy(want[:], crypto.Keccak256([]byte(method.Sig))[:4])
		assert.Equal(t, want, methodSelector(name), "method %s (%s)", name, method.Sig)
		assert.GreaterOrEqual(t, lookup(callSelectors, want), 0, "method %s missing from dispatch table", name)
	}
}

func TestPinnedSelectors(t *testing.T) {
	pinned := map[string]string{
		"initialize":         "0x9baa3cc9",
		"initializeV2":       "0xb33bc491",
		"newFinalizedState":  "0x2063d4f7",
		"newFinalizedState0": "0x757c37ad",
		"finalizedState":     "0x9fdb54a7",
	}
	for name, want := range pinned {
		assert.Equal(t, want, methodSelector(name).String(), name)
	}
}

func TestParseCallRoundTrip(t *testing.T) {
	calls := []Call{
		&FinalizedStateCall{},
		&BlocksPerEpochCall{},
		&DisablePermissionedProverModeCall{},
		&InitializeCall{
			Genesis:                     sampleState(),
			GenesisStakeTableState:      sampleStakeTable(),
			StateHistoryRetentionPeriod: 86400,
			Owner:                       common.HexToAddress("0x77700b1b97adbfd3a344b9a8b1ecb3de43f10e31"),
		},
		&InitializeV2Call{BlocksPerEpoch: 3000, EpochStartBlock: 9000},
		&NewFinalizedStateCall{NewState: sampleState(), Proof: sampleProof()},
		&NewFinalizedStateV2Call{NewState: sampleState(), NextStakeTable: sampleTable2(), Proof: sampleProof()},
		&SetPermissionedProverCall{Prover: common.HexToAddress("0x0102030405060708090a0b0c0d0e0f1011121314")},
		&SetStateHistoryRetentionPeriodCall{HistorySeconds: 7200},
		&SetstateHistoryRetentionPeriodCall{HistorySeconds: 7300},
		&GetHotShotCommitmentCall{HotShotBlockHeight: big.NewInt(424242)},
		&UpgradeToAndCallCall{
			NewImplementation: common.HexToAddress("0xfeedface00000000000000000000000000000001"),
			Data:              []byte{0xb3, 0x3b, 0xc4, 0x91},
		},
	}
	for _, call := range calls {
		data, err := call.Pack()
		require.NoError(t, err, call.Name())
		require.GreaterOrEqual(t, len(data), 4)
		sel := call.Selector()
		assert.Equal(t, sel[:], data[:4], call.Name())

		decoded, err := ParseCall(data)
		require.NoError(t, err, call.Name())
		require.IsType(t, call, decoded, call.Name())
		assert.Equal(t, call, decoded, call.Name())

		again, err := decoded.Pack()
		require.NoError(t, err, call.Name())
		assert.Equal(t, data, again, call.Name())
	}
}

func sampleTable2() bindings.LightClientStakeTableState {
	st := sampleStakeTable()
	st.Threshold = big.NewInt(700)
	return st
}

// The two newFinalizedState overloads carry the same raw Solidity name but
// different selectors; each must decode to its own type.
func TestOverloadDisambiguation(t *testing.T) {
	v1 := &NewFinalizedStateCall{NewState: sampleState(), Proof: sampleProof()}
	v2 := &NewFinalizedStateV2Call{NewState: sampleState(), NextStakeTable: sampleStakeTable(), Proof: sampleProof()}

	require.NotEqual(t, v1.Selector(), v2.Selector())

	d1, err := v1.Pack()
	require.NoError(t, err)
	d2, err := v2.Pack()
	require.NoError(t, err)

	p1, err := ParseCall(d1)
	require.NoError(t, err)
	p2, err := ParseCall(d2)
	require.NoError(t, err)
	assert.IsType(t, &NewFinalizedStateCall{}, p1)
	assert.IsType(t, &NewFinalizedStateV2Call{}, p2)
}

// The camelCase cousin of setStateHistoryRetentionPeriod is a distinct
// function with its own selector, not an alias.
func TestRetentionPeriodCaseTypoPair(t *testing.T) {
	upper := &SetStateHistoryRetentionPeriodCall{HistorySeconds: 60}
	lower := &SetstateHistoryRetentionPeriodCall{HistorySeconds: 60}
	require.NotEqual(t, upper.Selector(), lower.Selector())

	du, err := upper.Pack()
	require.NoError(t, err)
	dl, err := lower.Pack()
	require.NoError(t, err)
	assert.Equal(t, du[4:], dl[4:], "argument encodings must agree, only selectors differ")

	pu, err := ParseCall(du)
	require.NoError(t, err)
	pl, err := ParseCall(dl)
	require.NoError(t, err)
	assert.IsType(t, upper, pu)
	assert.IsType(t, lower, pl)
}

func TestParseCallUnknownSelector(t *testing.T) {
	_, err := ParseCall([]byte{0xde, 0xad, 0xbe, 0xef})
	var unknown *UnknownSelectorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, InterfaceName, unknown.Interface)
	assert.Equal(t, "0xdeadbeef", unknown.Selector.String())
}

func TestParseCallShortData(t *testing.T) {
	_, err := ParseCall([]byte{0x9b, 0xaa})
	require.Error(t, err)
}

func TestParseCallTrailingBytes(t *testing.T) {
	data, err := (&FinalizedStateCall{}).Pack()
	require.NoError(t, err)
	_, err = ParseCall(append(data, 0x00))
	require.Error(t, err)
}

func TestSelectorsSortedAndUnique(t *testing.T) {
	sels := Selectors()
	require.Len(t, sels, len(contractABI.Methods))
	for i := 1; i < len(sels); i++ {
		assert.True(t, sels[i-1].String() < sels[i].String(), "selectors must be sorted and unique")
	}
}

func TestUnpackReturns(t *testing.T) {
	state := sampleState()
	enc, err := EncodeLightClientState(state)
	require.NoError(t, err)
	require.Len(t, enc, 96)

	ret, err := (&FinalizedStateCall{}).UnpackReturns(enc)
	require.NoError(t, err)
	assert.Equal(t, state.ViewNum, ret.ViewNum)
	assert.Equal(t, state.BlockHeight, ret.BlockHeight)
	assert.Zero(t, state.BlockCommRoot.Cmp(ret.BlockCommRoot))
}
