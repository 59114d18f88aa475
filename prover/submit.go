package prover

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/EspressoSystems/lightclient-go/bindings"
)

// StateSubmitter pushes a finalized state update to the contract. The
// production implementation signs and mines a newFinalizedState transaction;
// tests substitute a stub.
type StateSubmitter interface {
	SubmitState(ctx context.Context,
		newState bindings.LightClientLightClientState,
		nextStakeTable bindings.LightClientStakeTableState,
		proof bindings.IPlonkVerifierPlonkProof) (common.Hash, error)
}

// GasOracle reports the current gas price. *ethclient.Client satisfies it.
type GasOracle interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// contractSubmitter submits through the generated transactor and waits for
// the receipt.
type contractSubmitter struct {
	contract *bindings.LightClientArbitrumV2Transactor
	backend  *ethclient.Client
	key      *ecdsa.PrivateKey
	chainID  *big.Int
}

func newContractSubmitter(address common.Address, backend *ethclient.Client, key *ecdsa.PrivateKey, chainID *big.Int) (*contractSubmitter, error) {
	contract, err := bindings.NewLightClientArbitrumV2Transactor(address, backend)
	if err != nil {
		return nil, fmt.Errorf("bind light client contract: %w", err)
	}
	return &contractSubmitter{contract: contract, backend: backend, key: key, chainID: chainID}, nil
}

func (s *contractSubmitter) SubmitState(ctx context.Context,
	newState bindings.LightClientLightClientState,
	nextStakeTable bindings.LightClientStakeTableState,
	proof bindings.IPlonkVerifierPlonkProof) (common.Hash, error) {

	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx

	tx, err := s.contract.NewFinalizedState0(opts, newState, nextStakeTable, proof)
	if err != nil {
		return common.Hash{}, fmt.Errorf("send newFinalizedState: %w", err)
	}
	receipt, err := bind.WaitMined(ctx, s.backend, tx)
	if err != nil {
		return tx.Hash(), fmt.Errorf("wait for newFinalizedState receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return tx.Hash(), fmt.Errorf("newFinalizedState tx %s reverted", tx.Hash())
	}
	return tx.Hash(), nil
}
