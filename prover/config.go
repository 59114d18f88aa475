// Package prover implements the light client state relayer: it fetches
// signed HotShot states from the relay server, obtains PLONK proofs from an
// external prover API and submits newFinalizedState transactions to the
// LightClientArbitrumV2 contract.
package prover

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Config collects everything the prover service needs. The CLI fills it from
// flags; secrets come from the environment.
type Config struct {
	// RPCURL is the L1 (Arbitrum) JSON-RPC endpoint.
	RPCURL string
	// LightClientAddress is the deployed LightClientArbitrumV2 proxy.
	LightClientAddress common.Address
	// PrivateKey signs newFinalizedState transactions. May be nil for
	// read-only use (status server without submission).
	PrivateKey *ecdsa.PrivateKey
	// RelayServerURL is the state-relay server collecting HotShot state
	// signatures.
	RelayServerURL string
	// ProverAPIURL is the external proof generation service.
	ProverAPIURL string

	// UpdateInterval is the pause between successful sync rounds,
	// RetryInterval the pause after a failed one.
	UpdateInterval time.Duration
	RetryInterval  time.Duration
	// MaxRetries bounds run-once mode.
	MaxRetries int

	// MaxGasPrice skips the sync round when the suggested gas price exceeds
	// it (wei). Nil disables the guard.
	MaxGasPrice *big.Int

	// Port serves the status API when non-zero.
	Port int
}

func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return errors.New("rpc url is required")
	}
	if c.LightClientAddress == (common.Address{}) {
		return errors.New("light client contract address is required")
	}
	if c.RelayServerURL == "" {
		return errors.New("relay server url is required")
	}
	if c.ProverAPIURL == "" {
		return errors.New("prover api url is required")
	}
	if c.UpdateInterval <= 0 {
		c.UpdateInterval = time.Minute
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = c.UpdateInterval / 2
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 3
	}
	return nil
}
