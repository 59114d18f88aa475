package prover

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// StateSignaturesBundle is the relay server's view of the latest HotShot
// state: the state itself, the stake table that takes effect after it, and
// the total stake weight behind the collected signatures.
type StateSignaturesBundle struct {
	State             bindings.LightClientLightClientState
	NextStakeTable    bindings.LightClientStakeTableState
	AccumulatedWeight *big.Int
}

// RelayClient fetches signature bundles from the state-relay server.
type RelayClient struct {
	baseURL string
	http    *http.Client
}

func NewRelayClient(baseURL string) *RelayClient {
	return &RelayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Field elements travel hex-encoded on the wire.
type stateJSON struct {
	ViewNum       hexutil.Uint64 `json:"viewNum"`
	BlockHeight   hexutil.Uint64 `json:"blockHeight"`
	BlockCommRoot *hexutil.Big   `json:"blockCommRoot"`
}

type stakeTableJSON struct {
	Threshold      *hexutil.Big `json:"threshold"`
	BlsKeyComm     *hexutil.Big `json:"blsKeyComm"`
	SchnorrKeyComm *hexutil.Big `json:"schnorrKeyComm"`
	AmountComm     *hexutil.Big `json:"amountComm"`
}

type bundleJSON struct {
	State             stateJSON      `json:"state"`
	NextStakeTable    stakeTableJSON `json:"nextStakeTable"`
	AccumulatedWeight *hexutil.Big   `json:"accumulatedWeight"`
}

// LatestBundle returns the most recent bundle the relay server has
// accumulated signatures for.
func (c *RelayClient) LatestBundle(ctx context.Context) (*StateSignaturesBundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/state", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest state bundle: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("relay server returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var wire bundleJSON
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode state bundle: %w", err)
	}
	return &StateSignaturesBundle{
		State: bindings.LightClientLightClientState{
			ViewNum:       uint64(wire.State.ViewNum),
			BlockHeight:   uint64(wire.State.BlockHeight),
			BlockCommRoot: bigOrZero(wire.State.BlockCommRoot),
		},
		NextStakeTable: bindings.LightClientStakeTableState{
			Threshold:      bigOrZero(wire.NextStakeTable.Threshold),
			BlsKeyComm:     bigOrZero(wire.NextStakeTable.BlsKeyComm),
			SchnorrKeyComm: bigOrZero(wire.NextStakeTable.SchnorrKeyComm),
			AmountComm:     bigOrZero(wire.NextStakeTable.AmountComm),
		},
		AccumulatedWeight: bigOrZero(wire.AccumulatedWeight),
	}, nil
}

func bigOrZero(v *hexutil.Big) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return (*big.Int)(v)
}
