// Package lightclient reads the on-chain state of the LightClientArbitrumV2
// contract. It wraps the generated bindings with context-aware accessors and
// translates revert payloads into the codec package's typed errors.
package lightclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/EspressoSystems/lightclient-go/bindings"
	"github.com/EspressoSystems/lightclient-go/codec"
)

// Reader exposes the contract's view functions over an injected caller
// backend (an ethclient.Client in production, a simulated backend in tests).
type Reader struct {
	address  common.Address
	contract *bindings.LightClientArbitrumV2Caller
}

// StateHistoryEntry is one snapshot from the contract's rolling state
// history buffer.
type StateHistoryEntry struct {
	L1BlockHeight        uint64   `json:"l1BlockHeight"`
	L1BlockTimestamp     uint64   `json:"l1BlockTimestamp"`
	HotShotBlockHeight   uint64   `json:"hotShotBlockHeight"`
	HotShotBlockCommRoot *big.Int `json:"hotShotBlockCommRoot"`
}

func NewReader(address common.Address, backend bind.ContractCaller) (*Reader, error) {
	contract, err := bindings.NewLightClientArbitrumV2Caller(address, backend)
	if err != nil {
		return nil, fmt.Errorf("bind light client contract: %w", err)
	}
	return &Reader{address: address, contract: contract}, nil
}

// Address returns the contract address the reader is bound to.
func (r *Reader) Address() common.Address {
	return r.address
}

func callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// FinalizedState returns the latest finalized HotShot state recorded on
// chain.
func (r *Reader) FinalizedState(ctx context.Context) (bindings.LightClientLightClientState, error) {
	out, err := r.contract.FinalizedState(callOpts(ctx))
	if err != nil {
		return bindings.LightClientLightClientState{}, translateRevert("finalizedState", err)
	}
	return bindings.LightClientLightClientState{
		ViewNum:       out.ViewNum,
		BlockHeight:   out.BlockHeight,
		BlockCommRoot: out.BlockCommRoot,
	}, nil
}

// GenesisState returns the state the contract was initialized with.
func (r *Reader) GenesisState(ctx context.Context) (bindings.LightClientLightClientState, error) {
	out, err := r.contract.GenesisState(callOpts(ctx))
	if err != nil {
		return bindings.LightClientLightClientState{}, translateRevert("genesisState", err)
	}
	return bindings.LightClientLightClientState{
		ViewNum:       out.ViewNum,
		BlockHeight:   out.BlockHeight,
		BlockCommRoot: out.BlockCommRoot,
	}, nil
}

// GenesisStakeTable returns the stake table committed at genesis.
func (r *Reader) GenesisStakeTable(ctx context.Context) (bindings.LightClientStakeTableState, error) {
	out, err := r.contract.GenesisStakeTableState(callOpts(ctx))
	if err != nil {
		return bindings.LightClientStakeTableState{}, translateRevert("genesisStakeTableState", err)
	}
	return bindings.LightClientStakeTableState{
		Threshold:      out.Threshold,
		BlsKeyComm:     out.BlsKeyComm,
		SchnorrKeyComm: out.SchnorrKeyComm,
		AmountComm:     out.AmountComm,
	}, nil
}

// VotingStakeTable returns the stake table the next state update must be
// signed against.
func (r *Reader) VotingStakeTable(ctx context.Context) (bindings.LightClientStakeTableState, error) {
	out, err := r.contract.VotingStakeTableState(callOpts(ctx))
	if err != nil {
		return bindings.LightClientStakeTableState{}, translateRevert("votingStakeTableState", err)
	}
	return bindings.LightClientStakeTableState{
		Threshold:      out.Threshold,
		BlsKeyComm:     out.BlsKeyComm,
		SchnorrKeyComm: out.SchnorrKeyComm,
		AmountComm:     out.AmountComm,
	}, nil
}

// HotShotCommitment returns the first recorded commitment whose HotShot
// height reaches hotShotBlockHeight. The contract reverts with
// InvalidHotShotBlockForCommitmentCheck when the height is not covered by
// the retained history.
func (r *Reader) HotShotCommitment(ctx context.Context, hotShotBlockHeight uint64) (bindings.LightClientHotShotCommitment, error) {
	out, err := r.contract.GetHotShotCommitment(callOpts(ctx), new(big.Int).SetUint64(hotShotBlockHeight))
	if err != nil {
		return bindings.LightClientHotShotCommitment{}, translateRevert("getHotShotCommitment", err)
	}
	return out, nil
}

// LagOverEscapeHatch reports whether HotShot consensus was lagging behind L1
// by more than threshold blocks at the given L1 block number.
func (r *Reader) LagOverEscapeHatch(ctx context.Context, l1BlockNumber, threshold uint64) (bool, error) {
	lagging, err := r.contract.LagOverEscapeHatchThreshold(callOpts(ctx),
		new(big.Int).SetUint64(l1BlockNumber), new(big.Int).SetUint64(threshold))
	if err != nil {
		return false, translateRevert("lagOverEscapeHatchThreshold", err)
	}
	return lagging, nil
}

// StateHistory returns the retained state history snapshots, oldest first.
// Entries before stateHistoryFirstIndex have been pruned by the retention
// period and are skipped.
func (r *Reader) StateHistory(ctx context.Context) ([]StateHistoryEntry, error) {
	opts := callOpts(ctx)
	count, err := r.contract.GetStateHistoryCount(opts)
	if err != nil {
		return nil, translateRevert("getStateHistoryCount", err)
	}
	first, err := r.contract.StateHistoryFirstIndex(opts)
	if err != nil {
		return nil, translateRevert("stateHistoryFirstIndex", err)
	}
	n := count.Uint64()
	if first > n {
		return nil, fmt.Errorf("state history first index %d beyond count %d", first, n)
	}
	entries := make([]StateHistoryEntry, 0, n-first)
	for i := first; i < n; i++ {
		out, err := r.contract.StateHistoryCommitments(opts, new(big.Int).SetUint64(i))
		if err != nil {
			return nil, translateRevert("stateHistoryCommitments", err)
		}
		entries = append(entries, StateHistoryEntry{
			L1BlockHeight:        out.L1BlockHeight,
			L1BlockTimestamp:     out.L1BlockTimestamp,
			HotShotBlockHeight:   out.HotShotBlockHeight,
			HotShotBlockCommRoot: out.HotShotBlockCommRoot,
		})
	}
	return entries, nil
}

// RetentionPeriod returns the state history retention period in seconds.
func (r *Reader) RetentionPeriod(ctx context.Context) (uint32, error) {
	period, err := r.contract.StateHistoryRetentionPeriod(callOpts(ctx))
	if err != nil {
		return 0, translateRevert("stateHistoryRetentionPeriod", err)
	}
	return period, nil
}

// PermissionedProver returns the prover address required for state updates
// and whether permissioned prover mode is enabled.
func (r *Reader) PermissionedProver(ctx context.Context) (common.Address, bool, error) {
	opts := callOpts(ctx)
	enabled, err := r.contract.IsPermissionedProverEnabled(opts)
	if err != nil {
		return common.Address{}, false, translateRevert("isPermissionedProverEnabled", err)
	}
	if !enabled {
		return common.Address{}, false, nil
	}
	prover, err := r.contract.PermissionedProver(opts)
	if err != nil {
		return common.Address{}, false, translateRevert("permissionedProver", err)
	}
	return prover, true, nil
}

// CurrentEpoch returns the epoch of the latest finalized HotShot block.
func (r *Reader) CurrentEpoch(ctx context.Context) (uint64, error) {
	epoch, err := r.contract.CurrentEpoch(callOpts(ctx))
	if err != nil {
		return 0, translateRevert("currentEpoch", err)
	}
	return epoch, nil
}

// dataError is the interface go-ethereum RPC errors expose revert payloads
// through.
type dataError interface {
	Error() string
	ErrorData() interface{}
}

// translateRevert unwraps an RPC error carrying revert data and decodes it
// into one of the contract's typed errors. Errors without revert data are
// wrapped as-is.
func translateRevert(method string, err error) error {
	de, ok := err.(dataError)
	if !ok {
		return fmt.Errorf("%s: %w", method, err)
	}
	hexData, ok := de.ErrorData().(string)
	if !ok {
		return fmt.Errorf("%s: %w", method, err)
	}
	data, decErr := hexutil.Decode(hexData)
	if decErr != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	contractErr, decErr := codec.DecodeRevert(data)
	if decErr != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return fmt.Errorf("%s reverted: %w", method, contractErr)
}
