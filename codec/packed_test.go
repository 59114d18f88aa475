package codec

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

func TestPackedLightClientStateLayout(t *testing.T) {
	state := sampleState()
	packed := PackedLightClientState(state)
	require.Len(t, packed, 48)

	// 8-byte viewNum, 8-byte blockHeight, 32-byte root, no padding
	assert.Equal(t, packedUint64(nil, state.ViewNum), packed[:8])
	assert.Equal(t, packedUint64(nil, state.BlockHeight), packed[8:16])
	assert.Equal(t, state.BlockCommRoot.FillBytes(make([]byte, 32)), packed[16:])
}

func TestPackedZeroState(t *testing.T) {
	packed := PackedLightClientState(bindings.LightClientLightClientState{BlockCommRoot: new(big.Int)})
	assert.Equal(t, make([]byte, 48), packed)
}

// The standard head/tail encoding of a zero state is three zero words.
func TestStandardZeroStateEncoding(t *testing.T) {
	enc, err := EncodeLightClientState(bindings.LightClientLightClientState{BlockCommRoot: new(big.Int)})
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 96), enc)
}

// Packed and standard encodings of the same non-zero state must differ: the
// packed form drops the 24 padding bytes in front of each uint64.
func TestPackedDiffersFromStandard(t *testing.T) {
	state := sampleState()
	packed := PackedLightClientState(state)
	standard, err := EncodeLightClientState(state)
	require.NoError(t, err)
	assert.Len(t, packed, 48)
	assert.Len(t, standard, 96)
	assert.False(t, bytes.Equal(packed, standard[:48]))
}

func TestPackedStakeTableState(t *testing.T) {
	st := sampleStakeTable()
	packed := PackedStakeTableState(st)
	require.Len(t, packed, 128)

	standard, err := EncodeStakeTableState(st)
	require.NoError(t, err)
	// every field is a full word, so here the packed and standard forms agree
	assert.Equal(t, standard, packed)
}

func TestPackedProofLayout(t *testing.T) {
	proof := sampleProof()
	packed := PackedPlonkProof(proof)
	require.Len(t, packed, 13*64+10*32)

	// concatenation law: the proof encoding is the point encodings followed
	// by the evaluation words, in declaration order
	var manual []byte
	for _, pt := range proofPoints(proof) {
		manual = append(manual, PackedG1Point(pt)...)
	}
	for _, ev := range proofEvals(proof) {
		manual = append(manual, ev.FillBytes(make([]byte, 32))...)
	}
	assert.Equal(t, manual, packed)
}

func TestPackedG1Point(t *testing.T) {
	packed := PackedG1Point(g1Gen())
	require.Len(t, packed, 64)
	assert.EqualValues(t, 1, packed[31])
	assert.EqualValues(t, 2, packed[63])
}

func TestPackedVerifyingKeyLayout(t *testing.T) {
	vk := bindings.IPlonkVerifierVerifyingKey{
		DomainSize: big.NewInt(1 << 20),
		NumInputs:  big.NewInt(8),
		Sigma0:     g1Gen(), Sigma1: g1Gen(), Sigma2: g1Gen(), Sigma3: g1Gen(), Sigma4: g1Gen(),
		Q1: g1Gen(), Q2: g1Gen(), Q3: g1Gen(), Q4: g1Gen(),
		QM12: g1Gen(), QM34: g1Gen(), QO: g1Gen(), QC: g1Gen(),
		QH1: g1Gen(), QH2: g1Gen(), QH3: g1Gen(), QH4: g1Gen(), QEcc: g1Gen(),
	}
	vk.G2LSB[0] = 0xaa
	vk.G2MSB[31] = 0xbb

	packed := PackedVerifyingKey(vk)
	require.Len(t, packed, 2*32+18*64+2*32)
	assert.EqualValues(t, 8, packed[63])
	assert.EqualValues(t, 0xaa, packed[64+18*64])
	assert.EqualValues(t, 0xbb, packed[len(packed)-1])
}

func TestPackedHotShotCommitment(t *testing.T) {
	packed := PackedHotShotCommitment(bindings.LightClientHotShotCommitment{
		BlockHeight:   7,
		BlockCommRoot: big.NewInt(9),
	})
	require.Len(t, packed, 40)
	assert.EqualValues(t, 7, packed[7])
	assert.EqualValues(t, 9, packed[39])
}
