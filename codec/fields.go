package codec

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// Semantic validation of BN254 material. The ABI layer transports every
// coordinate and evaluation as an unconstrained uint256; these helpers check
// the field bounds and curve membership the verifier contract assumes.

var (
	frModulus = fr.Modulus()
	fpModulus = fp.Modulus()
)

// FieldError reports a value that falls outside its BN254 field.
type FieldError struct {
	Name  string
	Value *big.Int
	Field string // "Fr" or "Fp"
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s = %s exceeds BN254 %s modulus", e.Name, e.Value, e.Field)
}

// PointError reports a G1 point whose coordinates do not satisfy the curve
// equation y^2 = x^3 + 3.
type PointError struct {
	Name  string
	Point bindings.BN254G1Point
}

func (e *PointError) Error() string {
	return fmt.Sprintf("%s = (%s, %s) is not on the BN254 curve", e.Name, e.Point.X, e.Point.Y)
}

// ValidateScalar checks that v is a canonical BN254 scalar, 0 <= v < r.
func ValidateScalar(name string, v *big.Int) error {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 || v.Cmp(frModulus) >= 0 {
		return &FieldError{Name: name, Value: v, Field: "Fr"}
	}
	return nil
}

// ValidateBaseField checks that v is a canonical BN254 base field element,
// 0 <= v < p.
func ValidateBaseField(name string, v *big.Int) error {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 || v.Cmp(fpModulus) >= 0 {
		return &FieldError{Name: name, Value: v, Field: "Fp"}
	}
	return nil
}

// ValidateG1Point checks that p's coordinates are canonical base field
// elements and that p lies on the curve. The contract's (0, 0) encoding of
// the point at infinity is accepted.
func ValidateG1Point(name string, p bindings.BN254G1Point) error {
	if err := ValidateBaseField(name+".x", p.X); err != nil {
		return err
	}
	if err := ValidateBaseField(name+".y", p.Y); err != nil {
		return err
	}
	x, y := zeroIfNil(p.X), zeroIfNil(p.Y)
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil
	}
	var aff bn254.G1Affine
	aff.X.SetBigInt(x)
	aff.Y.SetBigInt(y)
	if !aff.IsOnCurve() {
		return &PointError{Name: name, Point: p}
	}
	return nil
}

// ValidateLightClientState checks that the state's block commitment root is a
// canonical BN254 scalar.
func ValidateLightClientState(s bindings.LightClientLightClientState) error {
	return ValidateScalar("blockCommRoot", s.BlockCommRoot)
}

// ValidateStakeTableState checks that every commitment in the stake table
// state is a canonical BN254 scalar.
func ValidateStakeTableState(s bindings.LightClientStakeTableState) error {
	if err := ValidateScalar("threshold", s.Threshold); err != nil {
		return err
	}
	if err := ValidateScalar("blsKeyComm", s.BlsKeyComm); err != nil {
		return err
	}
	if err := ValidateScalar("schnorrKeyComm", s.SchnorrKeyComm); err != nil {
		return err
	}
	return ValidateScalar("amountComm", s.AmountComm)
}

// ValidateProof checks every commitment and evaluation inside a PLONK proof:
// the 13 G1 points must be on-curve with canonical coordinates and the 10
// evaluations must be canonical scalars.
func ValidateProof(p bindings.IPlonkVerifierPlonkProof) error {
	names := []string{
		"wire0", "wire1", "wire2", "wire3", "wire4",
		"prodPerm",
		"split0", "split1", "split2", "split3", "split4",
		"zeta", "zetaOmega",
	}
	for i, pt := range proofPoints(p) {
		if err := ValidateG1Point(names[i], pt); err != nil {
			return err
		}
	}
	evalNames := []string{
		"wireEval0", "wireEval1", "wireEval2", "wireEval3", "wireEval4",
		"sigmaEval0", "sigmaEval1", "sigmaEval2", "sigmaEval3",
		"prodPermZetaOmegaEval",
	}
	for i, ev := range proofEvals(p) {
		if err := ValidateScalar(evalNames[i], ev); err != nil {
			return err
		}
	}
	return nil
}
