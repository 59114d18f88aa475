package cmd

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/EspressoSystems/lightclient-go/prover"
)

// syncCmd runs the state prover service against the configured contract.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "run the state prover service: relay bundles in, proofs out, newFinalizedState on chain",
	RunE:  runSync,
}

var (
	fRelayURL       string
	fProverURL      string
	fUpdateInterval time.Duration
	fRetryInterval  time.Duration
	fMaxRetries     int
	fMaxGasGwei     int64
	fPort           int
	fOnce           bool
)

func runSync(cmd *cobra.Command, args []string) error {
	if !common.IsHexAddress(fContract) {
		return fmt.Errorf("--contract: %q is not a hex address", fContract)
	}
	keyHex := os.Getenv("LIGHTCLIENT_PRIVATE_KEY")
	if keyHex == "" {
		return fmt.Errorf("LIGHTCLIENT_PRIVATE_KEY must be set")
	}
	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		return fmt.Errorf("parse LIGHTCLIENT_PRIVATE_KEY: %w", err)
	}

	cfg := prover.Config{
		RPCURL:             fRPCURL,
		LightClientAddress: common.HexToAddress(fContract),
		PrivateKey:         key,
		RelayServerURL:     fRelayURL,
		ProverAPIURL:       fProverURL,
		UpdateInterval:     fUpdateInterval,
		RetryInterval:      fRetryInterval,
		MaxRetries:         fMaxRetries,
		Port:               fPort,
	}
	if fMaxGasGwei > 0 {
		cfg.MaxGasPrice = new(big.Int).Mul(big.NewInt(fMaxGasGwei), big.NewInt(1e9))
	}

	ctx := cmd.Context()
	service, err := prover.Dial(ctx, cfg)
	if err != nil {
		return err
	}

	if fOnce {
		return service.RunOnce(ctx)
	}
	go func() {
		if err := service.Serve(); err != nil {
			log.Error().Err(err).Msg("Status server stopped")
		}
	}()
	return service.Run(ctx)
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&fRelayURL, "relay-url", "", "state-relay server URL")
	syncCmd.Flags().StringVar(&fProverURL, "prover-url", "", "proof generation API URL")
	syncCmd.Flags().DurationVar(&fUpdateInterval, "update-interval", time.Minute, "pause between successful sync rounds")
	syncCmd.Flags().DurationVar(&fRetryInterval, "retry-interval", 30*time.Second, "pause after a failed sync round")
	syncCmd.Flags().IntVar(&fMaxRetries, "max-retries", 3, "attempts in --once mode")
	syncCmd.Flags().Int64Var(&fMaxGasGwei, "max-gas-price", 0, "skip sync rounds above this gas price (gwei, 0 = no limit)")
	syncCmd.Flags().IntVar(&fPort, "port", 0, "status API port (0 = disabled)")
	syncCmd.Flags().BoolVar(&fOnce, "once", false, "sync once and exit instead of running as a daemon")
	syncCmd.MarkFlagRequired("relay-url")
	syncCmd.MarkFlagRequired("prover-url")
}
