package prover

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

func testProofResponse() proofResponseJSON {
	g1 := func(x, y int64) g1JSON {
		return g1JSON{X: hexBig(x), Y: hexBig(y)}
	}
	p := proofJSON{
		Wire0: g1(1, 2), Wire1: g1(1, 2), Wire2: g1(1, 2), Wire3: g1(1, 2), Wire4: g1(1, 2),
		ProdPerm: g1(1, 2),
		Split0:   g1(1, 2), Split1: g1(1, 2), Split2: g1(1, 2), Split3: g1(1, 2), Split4: g1(1, 2),
		Zeta: g1(1, 2), ZetaOmega: g1(1, 2),
		WireEval0: hexBig(11), WireEval1: hexBig(12), WireEval2: hexBig(13),
		WireEval3: hexBig(14), WireEval4: hexBig(15),
		SigmaEval0: hexBig(21), SigmaEval1: hexBig(22), SigmaEval2: hexBig(23), SigmaEval3: hexBig(24),
		ProdPermZetaOmegaEval: hexBig(31),
	}
	return proofResponseJSON{Proof: p}
}

func TestRequestProof(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/proof", r.URL.Path)

		var req proofRequestJSON
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 9, req.NewState.BlockHeight)

		json.NewEncoder(w).Encode(testProofResponse())
	}))
	defer srv.Close()

	proof, err := NewProofClient(srv.URL).RequestProof(context.Background(), ProofRequest{
		NewState: bindings.LightClientLightClientState{
			ViewNum: 3, BlockHeight: 9, BlockCommRoot: big.NewInt(77),
		},
		VotingStakeTable: testStakeTable(),
		NextStakeTable:   testStakeTable(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, proof.Zeta.X.Int64())
	assert.EqualValues(t, 2, proof.ZetaOmega.Y.Int64())
	assert.EqualValues(t, 31, proof.ProdPermZetaOmegaEval.Int64())
}

func TestRequestProofProverFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(proofResponseJSON{Error: "signature weight below threshold"})
	}))
	defer srv.Close()

	_, err := NewProofClient(srv.URL).RequestProof(context.Background(), ProofRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature weight below threshold")
}

func TestRequestProofHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "proof generation failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewProofClient(srv.URL).RequestProof(context.Background(), ProofRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proof generation failed")
}

func hexBig(v int64) *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(v))
}

func testStakeTable() bindings.LightClientStakeTableState {
	return bindings.LightClientStakeTableState{
		Threshold:      big.NewInt(100),
		BlsKeyComm:     big.NewInt(1),
		SchnorrKeyComm: big.NewInt(2),
		AmountComm:     big.NewInt(3),
	}
}
