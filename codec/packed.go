package codec

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// Packed (abi.encodePacked) encodings: every field is written big-endian at
// its minimal width, concatenated with no padding, no selector, no offsets.
// This intentionally differs from the standard head/tail encoding, where
// every field occupies a full 32-byte word.

func packedUint64(b []byte, v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return append(b, buf[:]...)
}

func packedUint256(b []byte, v *big.Int) []byte {
	if v == nil {
		v = new(big.Int)
	}
	word := common.BigToHash(v)
	return append(b, word[:]...)
}

// PackedG1Point is the packed encoding of a BN254 G1 point: x then y, each a
// 32-byte word (uint256 packs to its full width even when packed).
func PackedG1Point(p bindings.BN254G1Point) []byte {
	b := make([]byte, 0, 64)
	b = packedUint256(b, p.X)
	b = packedUint256(b, p.Y)
	return b
}

// PackedLightClientState is the packed encoding of a light client state:
// 8-byte viewNum, 8-byte blockHeight, 32-byte blockCommRoot (48 bytes).
func PackedLightClientState(s bindings.LightClientLightClientState) []byte {
	b := make([]byte, 0, 48)
	b = packedUint64(b, s.ViewNum)
	b = packedUint64(b, s.BlockHeight)
	b = packedUint256(b, s.BlockCommRoot)
	return b
}

// PackedStakeTableState is the packed encoding of a stake table state: four
// 32-byte words (128 bytes).
func PackedStakeTableState(s bindings.LightClientStakeTableState) []byte {
	b := make([]byte, 0, 128)
	b = packedUint256(b, s.Threshold)
	b = packedUint256(b, s.BlsKeyComm)
	b = packedUint256(b, s.SchnorrKeyComm)
	b = packedUint256(b, s.AmountComm)
	return b
}

// PackedHotShotCommitment is the packed encoding of a hotshot commitment:
// 8-byte blockHeight, 32-byte blockCommRoot (40 bytes).
func PackedHotShotCommitment(c bindings.LightClientHotShotCommitment) []byte {
	b := make([]byte, 0, 40)
	b = packedUint64(b, c.BlockHeight)
	b = packedUint256(b, c.BlockCommRoot)
	return b
}

// PackedPlonkProof is the packed encoding of a PLONK proof: the 13 G1 points
// followed by the 10 evaluations, in declaration order (1152 bytes).
func PackedPlonkProof(p bindings.IPlonkVerifierPlonkProof) []byte {
	b := make([]byte, 0, 13*64+10*32)
	for _, pt := range proofPoints(p) {
		b = append(b, PackedG1Point(pt)...)
	}
	for _, ev := range proofEvals(p) {
		b = packedUint256(b, ev)
	}
	return b
}

// PackedVerifyingKey is the packed encoding of a verifying key: domainSize
// and numInputs words, the 18 G1 commitments, then the two packed G2 words.
func PackedVerifyingKey(vk bindings.IPlonkVerifierVerifyingKey) []byte {
	b := make([]byte, 0, 2*32+18*64+2*32)
	b = packedUint256(b, vk.DomainSize)
	b = packedUint256(b, vk.NumInputs)
	points := []bindings.BN254G1Point{
		vk.Sigma0, vk.Sigma1, vk.Sigma2, vk.Sigma3, vk.Sigma4,
		vk.Q1, vk.Q2, vk.Q3, vk.Q4,
		vk.QM12, vk.QM34,
		vk.QO, vk.QC,
		vk.QH1, vk.QH2, vk.QH3, vk.QH4,
		vk.QEcc,
	}
	for _, pt := range points {
		b = append(b, PackedG1Point(pt)...)
	}
	b = append(b, vk.G2LSB[:]...)
	b = append(b, vk.G2MSB[:]...)
	return b
}

// proofPoints lists the proof's G1 commitments in declaration order.
func proofPoints(p bindings.IPlonkVerifierPlonkProof) []bindings.BN254G1Point {
	return []bindings.BN254G1Point{
		p.Wire0, p.Wire1, p.Wire2, p.Wire3, p.Wire4,
		p.ProdPerm,
		p.Split0, p.Split1, p.Split2, p.Split3, p.Split4,
		p.Zeta, p.ZetaOmega,
	}
}

// proofEvals lists the proof's evaluations in declaration order.
func proofEvals(p bindings.IPlonkVerifierPlonkProof) []*big.Int {
	return []*big.Int{
		p.WireEval0, p.WireEval1, p.WireEval2, p.WireEval3, p.WireEval4,
		p.SigmaEval0, p.SigmaEval1, p.SigmaEval2, p.SigmaEval3,
		p.ProdPermZetaOmegaEval,
	}
}

// EncodeLightClientState is the standard head/tail encoding of a light client
// state: three 32-byte words.
func EncodeLightClientState(s bindings.LightClientLightClientState) ([]byte, error) {
	return contractABI.Methods["finalizedState"].Outputs.Pack(s.ViewNum, s.BlockHeight, zeroIfNil(s.BlockCommRoot))
}

// EncodeStakeTableState is the standard head/tail encoding of a stake table
// state: four 32-byte words.
func EncodeStakeTableState(s bindings.LightClientStakeTableState) ([]byte, error) {
	return contractABI.Methods["votingStakeTableState"].Outputs.Pack(
		zeroIfNil(s.Threshold), zeroIfNil(s.BlsKeyComm), zeroIfNil(s.SchnorrKeyComm), zeroIfNil(s.AmountComm))
}

func zeroIfNil(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
