package prover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// ProofClient requests PLONK proofs from the external prover API. The
// service ships the new state and both stake tables; the prover returns the
// proof the contract's verifier expects.
type ProofClient struct {
	baseURL string
	http    *http.Client
}

func NewProofClient(baseURL string) *ProofClient {
	return &ProofClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// proof generation is slow, allow several minutes
		http: &http.Client{Timeout: 10 * time.Minute},
	}
}

// ProofRequest is the prover API input: the state to prove and the stake
// tables the public inputs are built from.
type ProofRequest struct {
	NewState         bindings.LightClientLightClientState
	VotingStakeTable bindings.LightClientStakeTableState
	NextStakeTable   bindings.LightClientStakeTableState
}

type g1JSON struct {
	X *hexutil.Big `json:"x"`
	Y *hexutil.Big `json:"y"`
}

type proofRequestJSON struct {
	NewState         stateJSON      `json:"newState"`
	VotingStakeTable stakeTableJSON `json:"votingStakeTable"`
	NextStakeTable   stakeTableJSON `json:"nextStakeTable"`
}

type proofJSON struct {
	Wire0     g1JSON `json:"wire0"`
	Wire1     g1JSON `json:"wire1"`
	Wire2     g1JSON `json:"wire2"`
	Wire3     g1JSON `json:"wire3"`
	Wire4     g1JSON `json:"wire4"`
	ProdPerm  g1JSON `json:"prodPerm"`
	Split0    g1JSON `json:"split0"`
	Split1    g1JSON `json:"split1"`
	Split2    g1JSON `json:"split2"`
	Split3    g1JSON `json:"split3"`
	Split4    g1JSON `json:"split4"`
	Zeta      g1JSON `json:"zeta"`
	ZetaOmega g1JSON `json:"zetaOmega"`

	WireEval0             *hexutil.Big `json:"wireEval0"`
	WireEval1             *hexutil.Big `json:"wireEval1"`
	WireEval2             *hexutil.Big `json:"wireEval2"`
	WireEval3             *hexutil.Big `json:"wireEval3"`
	WireEval4             *hexutil.Big `json:"wireEval4"`
	SigmaEval0            *hexutil.Big `json:"sigmaEval0"`
	SigmaEval1            *hexutil.Big `json:"sigmaEval1"`
	SigmaEval2            *hexutil.Big `json:"sigmaEval2"`
	SigmaEval3            *hexutil.Big `json:"sigmaEval3"`
	ProdPermZetaOmegaEval *hexutil.Big `json:"prodPermZetaOmegaEval"`
}

type proofResponseJSON struct {
	Proof proofJSON `json:"proof"`
	Error string    `json:"error,omitempty"`
}

// RequestProof posts a proof request and decodes the returned proof.
func (c *ProofClient) RequestProof(ctx context.Context, pr ProofRequest) (bindings.IPlonkVerifierPlonkProof, error) {
	var zero bindings.IPlonkVerifierPlonkProof
	body, err := json.Marshal(proofRequestJSON{
		NewState:         encodeState(pr.NewState),
		VotingStakeTable: encodeStakeTable(pr.VotingStakeTable),
		NextStakeTable:   encodeStakeTable(pr.NextStakeTable),
	})
	if err != nil {
		return zero, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/proof", bytes.NewReader(body))
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("request proof: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return zero, fmt.Errorf("prover api returned %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	var wire proofResponseJSON
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return zero, fmt.Errorf("decode proof: %w", err)
	}
	if wire.Error != "" {
		return zero, fmt.Errorf("prover api: %s", wire.Error)
	}
	return decodeProof(wire.Proof), nil
}

func encodeState(s bindings.LightClientLightClientState) stateJSON {
	return stateJSON{
		ViewNum:       hexutil.Uint64(s.ViewNum),
		BlockHeight:   hexutil.Uint64(s.BlockHeight),
		BlockCommRoot: (*hexutil.Big)(s.BlockCommRoot),
	}
}

func encodeStakeTable(s bindings.LightClientStakeTableState) stakeTableJSON {
	return stakeTableJSON{
		Threshold:      (*hexutil.Big)(s.Threshold),
		BlsKeyComm:     (*hexutil.Big)(s.BlsKeyComm),
		SchnorrKeyComm: (*hexutil.Big)(s.SchnorrKeyComm),
		AmountComm:     (*hexutil.Big)(s.AmountComm),
	}
}

func decodeG1(p g1JSON) bindings.BN254G1Point {
	return bindings.BN254G1Point{X: bigOrZero(p.X), Y: bigOrZero(p.Y)}
}

func decodeProof(p proofJSON) bindings.IPlonkVerifierPlonkProof {
	return bindings.IPlonkVerifierPlonkProof{
		Wire0:     decodeG1(p.Wire0),
		Wire1:     decodeG1(p.Wire1),
		Wire2:     decodeG1(p.Wire2),
		Wire3:     decodeG1(p.Wire3),
		Wire4:     decodeG1(p.Wire4),
		ProdPerm:  decodeG1(p.ProdPerm),
		Split0:    decodeG1(p.Split0),
		Split1:    decodeG1(p.Split1),
		Split2:    decodeG1(p.Split2),
		Split3:    decodeG1(p.Split3),
		Split4:    decodeG1(p.Split4),
		Zeta:      decodeG1(p.Zeta),
		ZetaOmega: decodeG1(p.ZetaOmega),

		WireEval0:             bigOrZero(p.WireEval0),
		WireEval1:             bigOrZero(p.WireEval1),
		WireEval2:             bigOrZero(p.WireEval2),
		WireEval3:             bigOrZero(p.WireEval3),
		WireEval4:             bigOrZero(p.WireEval4),
		SigmaEval0:            bigOrZero(p.SigmaEval0),
		SigmaEval1:            bigOrZero(p.SigmaEval1),
		SigmaEval2:            bigOrZero(p.SigmaEval2),
		SigmaEval3:            bigOrZero(p.SigmaEval3),
		ProdPermZetaOmegaEval: bigOrZero(p.ProdPermZetaOmegaEval),
	}
}
