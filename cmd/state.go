package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/EspressoSystems/lightclient-go/lightclient"
)

// stateCmd prints the contract's finalized and genesis state as JSON.
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "query the light client contract state and print it as JSON",
	RunE:  runState,
}

var fStateHistory bool

func runState(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	reader, err := dialReader(ctx)
	if err != nil {
		return err
	}

	finalized, err := reader.FinalizedState(ctx)
	if err != nil {
		return err
	}
	genesis, err := reader.GenesisState(ctx)
	if err != nil {
		return err
	}
	voting, err := reader.VotingStakeTable(ctx)
	if err != nil {
		return err
	}

	out := map[string]any{
		"finalizedState": map[string]any{
			"viewNum":       finalized.ViewNum,
			"blockHeight":   finalized.BlockHeight,
			"blockCommRoot": finalized.BlockCommRoot.String(),
		},
		"genesisState": map[string]any{
			"viewNum":       genesis.ViewNum,
			"blockHeight":   genesis.BlockHeight,
			"blockCommRoot": genesis.BlockCommRoot.String(),
		},
		"votingStakeTable": map[string]any{
			"threshold":      voting.Threshold.String(),
			"blsKeyComm":     voting.BlsKeyComm.String(),
			"schnorrKeyComm": voting.SchnorrKeyComm.String(),
			"amountComm":     voting.AmountComm.String(),
		},
	}
	if fStateHistory {
		history, err := reader.StateHistory(ctx)
		if err != nil {
			return err
		}
		out["stateHistory"] = history
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// dialReader connects the persistent-flag RPC endpoint and binds a reader to
// the persistent-flag contract address.
func dialReader(ctx context.Context) (*lightclient.Reader, error) {
	if fRPCURL == "" {
		return nil, fmt.Errorf("--rpc-url is required")
	}
	if !common.IsHexAddress(fContract) {
		return nil, fmt.Errorf("--contract: %q is not a hex address", fContract)
	}
	client, err := ethclient.DialContext(ctx, fRPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", fRPCURL, err)
	}
	return lightclient.NewReader(common.HexToAddress(fContract), client)
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&fStateHistory, "history", false, "include the retained state history")
}
