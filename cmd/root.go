package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	fRPCURL   string
	fContract string
	fLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "lightclient-go",
	Short: "tooling for the Espresso LightClientArbitrumV2 contract: state queries, calldata decoding and the state prover service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(fLogLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fRPCURL, "rpc-url", "", "L1 JSON-RPC endpoint")
	rootCmd.PersistentFlags().StringVar(&fContract, "contract", "", "LightClientArbitrumV2 proxy address")
	rootCmd.PersistentFlags().StringVar(&fLogLevel, "log-level", "info", "zerolog level: trace, debug, info, warn, error")
}
