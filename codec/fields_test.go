package codec

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

func TestValidateScalarBounds(t *testing.T) {
	require.NoError(t, ValidateScalar("x", big.NewInt(0)))
	require.NoError(t, ValidateScalar("x", nil))

	max := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	require.NoError(t, ValidateScalar("x", max))

	err := ValidateScalar("x", fr.Modulus())
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Fr", fieldErr.Field)
	assert.Equal(t, "x", fieldErr.Name)
}

func TestValidateBaseFieldBounds(t *testing.T) {
	max := new(big.Int).Sub(fp.Modulus(), big.NewInt(1))
	require.NoError(t, ValidateBaseField("y", max))

	err := ValidateBaseField("y", new(big.Int).Add(fp.Modulus(), big.NewInt(5)))
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Fp", fieldErr.Field)
}

func TestValidateG1Point(t *testing.T) {
	// generator
	require.NoError(t, ValidateG1Point("p", g1Gen()))
	// point at infinity encoded as (0, 0)
	require.NoError(t, ValidateG1Point("p", bindings.BN254G1Point{X: new(big.Int), Y: new(big.Int)}))

	// valid coordinates that miss the curve
	err := ValidateG1Point("p", bindings.BN254G1Point{X: big.NewInt(1), Y: big.NewInt(3)})
	var pointErr *PointError
	require.ErrorAs(t, err, &pointErr)
	assert.Equal(t, "p", pointErr.Name)

	// non-canonical coordinate fails before the curve check
	err = ValidateG1Point("p", bindings.BN254G1Point{X: fp.Modulus(), Y: big.NewInt(2)})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "p.x", fieldErr.Name)
}

func TestValidateLightClientState(t *testing.T) {
	require.NoError(t, ValidateLightClientState(sampleState()))

	bad := sampleState()
	bad.BlockCommRoot = fr.Modulus()
	err := ValidateLightClientState(bad)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "blockCommRoot", fieldErr.Name)
}

func TestValidateStakeTableState(t *testing.T) {
	require.NoError(t, ValidateStakeTableState(sampleStakeTable()))

	bad := sampleStakeTable()
	bad.SchnorrKeyComm = new(big.Int).Add(fr.Modulus(), big.NewInt(1))
	err := ValidateStakeTableState(bad)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "schnorrKeyComm", fieldErr.Name)
}

func TestValidateProof(t *testing.T) {
	require.NoError(t, ValidateProof(sampleProof()))

	bad := sampleProof()
	bad.Split2 = bindings.BN254G1Point{X: big.NewInt(5), Y: big.NewInt(5)}
	err := ValidateProof(bad)
	var pointErr *PointError
	require.ErrorAs(t, err, &pointErr)
	assert.Equal(t, "split2", pointErr.Name)

	bad = sampleProof()
	bad.SigmaEval3 = fr.Modulus()
	err = ValidateProof(bad)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "sigmaEval3", fieldErr.Name)
}
