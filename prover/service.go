package prover

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog/log"

	"github.com/EspressoSystems/lightclient-go/bindings"
	"github.com/EspressoSystems/lightclient-go/codec"
	"github.com/EspressoSystems/lightclient-go/lightclient"
)

// GasPriceTooHighError aborts a sync round without burning the retry budget;
// the daemon just waits for the next tick.
type GasPriceTooHighError struct {
	Current *big.Int
	Max     *big.Int
}

func (e *GasPriceTooHighError) Error() string {
	return fmt.Sprintf("gas price too high: current %s gwei, max %s gwei",
		gwei(e.Current), gwei(e.Max))
}

func gwei(wei *big.Int) string {
	return new(big.Rat).SetFrac(wei, big.NewInt(params.GWei)).FloatString(2)
}

// ErrInsufficientWeight means the relay bundle's signatures do not reach the
// stake table threshold yet; retrying later is expected to succeed.
var ErrInsufficientWeight = errors.New("accumulated signature weight below stake table threshold")

// Service runs the state sync loop.
type Service struct {
	cfg       Config
	reader    *lightclient.Reader
	relay     *RelayClient
	proofs    *ProofClient
	gas       GasOracle
	submitter StateSubmitter

	mu         sync.Mutex
	lastSynced *bindings.LightClientLightClientState
}

// NewService wires a service from explicit dependencies. Tests use it with
// stubs; production code goes through Dial.
func NewService(cfg Config, reader *lightclient.Reader, relay *RelayClient, proofs *ProofClient, gas GasOracle, submitter StateSubmitter) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		cfg:       cfg,
		reader:    reader,
		relay:     relay,
		proofs:    proofs,
		gas:       gas,
		submitter: submitter,
	}, nil
}

// Dial connects to the RPC endpoint and builds a fully wired service.
func Dial(ctx context.Context, cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.PrivateKey == nil {
		return nil, errors.New("private key is required for state submission")
	}
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain id: %w", err)
	}
	reader, err := lightclient.NewReader(cfg.LightClientAddress, client)
	if err != nil {
		return nil, err
	}
	submitter, err := newContractSubmitter(cfg.LightClientAddress, client, cfg.PrivateKey, chainID)
	if err != nil {
		return nil, err
	}
	return NewService(cfg, reader, NewRelayClient(cfg.RelayServerURL), NewProofClient(cfg.ProverAPIURL), client, submitter)
}

// LastSynced returns the most recent state this service submitted, or nil.
func (s *Service) LastSynced() *bindings.LightClientLightClientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSynced == nil {
		return nil
	}
	state := *s.lastSynced
	return &state
}

// ContractAddress returns the light client contract the service targets.
func (s *Service) ContractAddress() string {
	return s.cfg.LightClientAddress.Hex()
}

// SyncOnce performs a single sync round: check gas, read the contract state,
// fetch the latest signed bundle, and submit a proof when the bundle is
// ahead of the contract.
func (s *Service) SyncOnce(ctx context.Context) error {
	if s.cfg.MaxGasPrice != nil {
		price, err := s.gas.SuggestGasPrice(ctx)
		if err != nil {
			return fmt.Errorf("query gas price: %w", err)
		}
		if price.Cmp(s.cfg.MaxGasPrice) > 0 {
			return &GasPriceTooHighError{Current: price, Max: s.cfg.MaxGasPrice}
		}
	}

	contractState, err := s.reader.FinalizedState(ctx)
	if err != nil {
		return fmt.Errorf("read finalized state: %w", err)
	}
	stakeTable, err := s.reader.VotingStakeTable(ctx)
	if err != nil {
		return fmt.Errorf("read voting stake table: %w", err)
	}
	log.Info().
		Uint64("contract_height", contractState.BlockHeight).
		Msg("Current HotShot block height on contract")

	bundle, err := s.relay.LatestBundle(ctx)
	if err != nil {
		return fmt.Errorf("fetch relay bundle: %w", err)
	}
	log.Info().
		Uint64("bundle_height", bundle.State.BlockHeight).
		Str("accumulated_weight", bundle.AccumulatedWeight.String()).
		Msg("Latest HotShot block height on relay")

	if contractState.BlockHeight >= bundle.State.BlockHeight {
		log.Info().Msg("No update needed")
		return nil
	}

	if bundle.AccumulatedWeight.Cmp(stakeTable.Threshold) < 0 {
		return ErrInsufficientWeight
	}
	if err := codec.ValidateLightClientState(bundle.State); err != nil {
		return fmt.Errorf("relay bundle state invalid: %w", err)
	}
	if err := codec.ValidateStakeTableState(bundle.NextStakeTable); err != nil {
		return fmt.Errorf("relay bundle stake table invalid: %w", err)
	}

	proof, err := s.proofs.RequestProof(ctx, ProofRequest{
		NewState:         bundle.State,
		VotingStakeTable: stakeTable,
		NextStakeTable:   bundle.NextStakeTable,
	})
	if err != nil {
		return fmt.Errorf("generate proof: %w", err)
	}
	if err := codec.ValidateProof(proof); err != nil {
		return fmt.Errorf("prover returned invalid proof: %w", err)
	}

	txHash, err := s.submitter.SubmitState(ctx, bundle.State, bundle.NextStakeTable, proof)
	if err != nil {
		return err
	}
	log.Info().
		Str("tx", txHash.Hex()).
		Uint64("new_height", bundle.State.BlockHeight).
		Msg("Successfully synced light client state")

	s.mu.Lock()
	state := bundle.State
	s.lastSynced = &state
	s.mu.Unlock()
	return nil
}

// Run is the daemon loop: sync, sleep UpdateInterval on success or
// RetryInterval on failure, until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	for {
		wait := s.cfg.UpdateInterval
		if err := s.SyncOnce(ctx); err != nil {
			var gasErr *GasPriceTooHighError
			if errors.As(err, &gasErr) {
				log.Error().Msg("Gas price too high, sync later")
			} else {
				log.Error().Err(err).Msg("Cannot sync the light client state, will retry")
				wait = s.cfg.RetryInterval
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// RunOnce tries to sync at most MaxRetries times and returns the first
// success. Gas price spikes abort immediately instead of retrying.
func (s *Service) RunOnce(ctx context.Context) error {
	var err error
	for i := 0; i < s.cfg.MaxRetries; i++ {
		err = s.SyncOnce(ctx)
		if err == nil {
			return nil
		}
		var gasErr *GasPriceTooHighError
		if errors.As(err, &gasErr) {
			return err
		}
		log.Error().Err(err).Msg("Cannot sync the light client state, will retry")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.RetryInterval):
		}
	}
	return fmt.Errorf("sync failed after %d attempts: %w", s.cfg.MaxRetries, err)
}
